package chain

import "github.com/katalvlaran/padchain/keypad"

// Expand returns the directional presses that make a controller of kp type
// targets, starting from kp's home key: each target's route followed by
// Submit. An empty targets yields an empty, non-nil sequence.
func Expand(targets []keypad.Key, kp *keypad.Keypad) ([]keypad.Key, error) {
	routes, err := kp.ShortestPressSequence(targets)
	if err != nil {
		return nil, err
	}

	out := make([]keypad.Key, 0, 2*len(targets))
	for _, r := range routes {
		out = append(out, r.Keys()...)
		out = append(out, keypad.KeySubmit)
	}

	return out, nil
}
