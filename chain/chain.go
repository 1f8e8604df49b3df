package chain

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/padchain/keypad"
)

// ErrNegativeLayers indicates a chain with fewer than zero directional robots.
var ErrNegativeLayers = errors.New("chain: layers must be non-negative")

// Chain is a numeric keypad behind Layers directional keypads. Build it with
// NewChain; a Chain is safe for concurrent use.
type Chain struct {
	Numeric     *keypad.Keypad
	Directional *keypad.Keypad
	Layers      int

	memo    *pressMemo
	metrics *Metrics
}

// NewChain returns a chain with layers intermediate directional robots.
func NewChain(layers int) (*Chain, error) {
	if layers < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLayers, layers)
	}
	dir := keypad.Directional()

	return &Chain{
		Numeric:     keypad.Numeric(),
		Directional: dir,
		Layers:      layers,
		memo:        newPressMemo(dir.Variant().Keys(), layers),
	}, nil
}

// Sequence returns the literal press sequence a human types on the
// outermost keypad to enter code. Its size grows exponentially with Layers.
func (c *Chain) Sequence(code keypad.Code) ([]keypad.Key, error) {
	seq, err := Expand(code, c.Numeric)
	if err != nil {
		return nil, err
	}
	for range c.Layers {
		if seq, err = Expand(seq, c.Directional); err != nil {
			return nil, err
		}
	}

	return seq, nil
}

// Length returns len(c.Sequence(code)) without materialising the sequence.
func (c *Chain) Length(code keypad.Code) (uint64, error) {
	routes, err := c.Numeric.ShortestPressSequence(code)
	if err != nil {
		return 0, err
	}

	var total uint64
	for _, r := range routes {
		n, err := c.presses(append(r.Keys(), keypad.KeySubmit), c.Layers)
		if err != nil {
			return 0, err
		}
		total += n
	}

	return total, nil
}

// Score returns code's numeric value times its sequence length.
func (c *Chain) Score(code keypad.Code) (uint64, error) {
	n, err := c.Length(code)
	if err != nil {
		return 0, err
	}

	return code.Numeric() * n, nil
}

// presses counts the outermost presses needed to type seq on a directional
// keypad that sits depth robots away from the human.
func (c *Chain) presses(seq []keypad.Key, depth int) (uint64, error) {
	if depth == 0 {
		return uint64(len(seq)), nil
	}

	var total uint64
	from := c.Directional.Home()
	for _, to := range seq {
		n, err := c.step(from, to, depth)
		if err != nil {
			return 0, err
		}
		total += n
		from = to
	}

	return total, nil
}

// step counts the presses that move the depth-th finger from from to to and
// press it.
func (c *Chain) step(from, to keypad.Key, depth int) (uint64, error) {
	if n, ok := c.memo.get(from, to, depth); ok {
		return n, nil
	}
	if c.metrics != nil {
		AddToMetric(c.metrics, MemoMissesCounter, 1)
	}

	r, err := c.Directional.Route(from, to)
	if err != nil {
		return 0, err
	}
	n, err := c.presses(append(r.Keys(), keypad.KeySubmit), depth-1)
	if err != nil {
		return 0, err
	}
	c.memo.put(from, to, depth, n)

	return n, nil
}
