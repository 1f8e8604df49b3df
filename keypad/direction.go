package keypad

import (
	"fmt"

	"github.com/katalvlaran/padchain/gridgraph"
)

// Direction labels a move between adjacent keys. It doubles as a pressable
// key on the directional keypad (see Key).
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every Direction in declaration order.
var Directions = []Direction{Up, Down, Left, Right}

// String returns the arrow symbol printed on the directional keypad.
func (d Direction) String() string {
	switch d {
	case Up:
		return "^"
	case Down:
		return "v"
	case Left:
		return "<"
	case Right:
		return ">"
	}

	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Key reinterprets d as the matching button of the directional keypad.
func (d Direction) Key() Key {
	return Key(d.String()[0])
}

// Opposite returns the direction that undoes d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Offset returns the grid step of d; rows grow downward.
func (d Direction) Offset() gridgraph.Offset {
	switch d {
	case Up:
		return gridgraph.North
	case Down:
		return gridgraph.South
	case Left:
		return gridgraph.West
	default:
		return gridgraph.East
	}
}

// ParseDirection converts an arrow symbol back into a Direction.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if d.String() == s {
			return d, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// DirectionOf returns the Direction printed on key k, if any.
func DirectionOf(k Key) (Direction, bool) {
	d, err := ParseDirection(k.String())

	return d, err == nil
}

// directionLabels maps every grid offset to the label stored on graph edges.
func directionLabels() map[gridgraph.Offset]string {
	labels := make(map[gridgraph.Offset]string, len(Directions))
	for _, d := range Directions {
		labels[d.Offset()] = d.String()
	}

	return labels
}
