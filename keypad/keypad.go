package keypad

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/padchain/core"
)

// Keypad is one keypad of a chain, tagged by its Variant. Numeric and
// directional keypads share the same routing code; only the graph differs.
//
// A Keypad memoises the shortest route of every key pair it has been asked
// for and is safe for concurrent use.
type Keypad struct {
	variant Variant
	graph   *core.Graph
	home    Key

	mu     sync.RWMutex
	routes map[[2]Key]Route
}

// New returns a Keypad of variant v backed by the shared graph of v.
// It panics if v is not a defined variant.
func New(v Variant) *Keypad {
	return &Keypad{
		variant: v,
		graph:   Graph(v),
		home:    v.Home(),
		routes:  make(map[[2]Key]Route),
	}
}

// Numeric returns a door keypad.
func Numeric() *Keypad { return New(VariantNumeric) }

// Directional returns a robot controller keypad.
func Directional() *Keypad { return New(VariantDirectional) }

// Variant returns the layout of kp.
func (kp *Keypad) Variant() Variant { return kp.variant }

// Home returns the key the controller rests on.
func (kp *Keypad) Home() Key { return kp.home }

// Graph returns the immutable adjacency graph of kp.
func (kp *Keypad) Graph() *core.Graph { return kp.graph }

// Route returns the shortest route between two keys of kp.
// Keys that are not on kp yield ErrInvalidKey.
func (kp *Keypad) Route(from, to Key) (Route, error) {
	if !kp.variant.Contains(from) {
		return nil, fmt.Errorf("%w: %s is not on the %s keypad", ErrInvalidKey, from, kp.variant)
	}
	if !kp.variant.Contains(to) {
		return nil, fmt.Errorf("%w: %s is not on the %s keypad", ErrInvalidKey, to, kp.variant)
	}

	pair := [2]Key{from, to}
	kp.mu.RLock()
	r, ok := kp.routes[pair]
	kp.mu.RUnlock()
	if ok {
		return r, nil
	}

	r, err := ShortestPath(kp.graph, from, to)
	if err != nil {
		// Both keys belong to a validated graph; a missing route is a bug.
		panic(fmt.Errorf("keypad: %s keypad: %w", kp.variant, err))
	}

	kp.mu.Lock()
	kp.routes[pair] = r
	kp.mu.Unlock()

	return r, nil
}

// ShortestPressSequence returns one route per consecutive pair of the
// chain (home, targets[0], ..., targets[n-1]).
func (kp *Keypad) ShortestPressSequence(targets []Key) ([]Route, error) {
	out := make([]Route, 0, len(targets))
	from := kp.home
	for _, to := range targets {
		r, err := kp.Route(from, to)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
		from = to
	}

	return out, nil
}

// Press executes directional presses against kp, starting with the finger
// on start, and returns the key under the finger at every Submit.
// A move into the gap or off the keypad yields ErrIllegalMove; a press
// that is neither a direction nor Submit yields ErrInvalidKey.
func (kp *Keypad) Press(start Key, presses []Key) ([]Key, error) {
	if !kp.variant.Contains(start) {
		return nil, fmt.Errorf("%w: %s is not on the %s keypad", ErrInvalidKey, start, kp.variant)
	}

	var out []Key
	at := start
	for i, p := range presses {
		if p == KeySubmit {
			out = append(out, at)
			continue
		}
		d, ok := DirectionOf(p)
		if !ok {
			return nil, fmt.Errorf("%w: press %d is %s", ErrInvalidKey, i, p)
		}
		next, ok := step(kp.graph, at, d)
		if !ok {
			return nil, fmt.Errorf("%w: %s from %s at press %d", ErrIllegalMove, d, at, i)
		}
		at = next
	}

	return out, nil
}
