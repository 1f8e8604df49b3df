package keypad

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/padchain/bfs"
	"github.com/katalvlaran/padchain/core"
	"github.com/katalvlaran/padchain/dfs"
)

// ChangePenalty is charged for every pair of consecutive moves that differ.
// Turning at this layer forces the controller one layer out to leave its
// Submit button, which costs presses there.
const ChangePenalty = 100

// Route is the sequence of moves that walks a simple path between two keys.
type Route []Direction

// String renders the route as arrow symbols, e.g. "^^<".
func (r Route) String() string {
	var sb strings.Builder
	for _, d := range r {
		sb.WriteString(d.String())
	}

	return sb.String()
}

// Keys returns the route as directional keypad buttons.
func (r Route) Keys() []Key {
	out := make([]Key, len(r))
	for i, d := range r {
		out[i] = d.Key()
	}

	return out
}

// Replay walks r over g starting at from and returns the key it ends on.
// It fails with ErrIllegalMove if a move has no matching edge.
func (r Route) Replay(g *core.Graph, from Key) (Key, error) {
	if !g.HasVertex(from.String()) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidKey, from)
	}
	at := from
	for i, d := range r {
		next, ok := step(g, at, d)
		if !ok {
			return 0, fmt.Errorf("%w: %s from %s at move %d", ErrIllegalMove, d, at, i)
		}
		at = next
	}

	return at, nil
}

// step follows the edge leaving at with label d.
func step(g *core.Graph, at Key, d Direction) (Key, bool) {
	nbs, err := g.Neighbors(at.String())
	if err != nil {
		return 0, false
	}
	label := d.String()
	for _, e := range nbs {
		if e.Label == label {
			return Key([]rune(e.To)[0]), true
		}
	}

	return 0, false
}

// Cost scores a route; lower is better.
//
// Every change of direction between consecutive moves costs ChangePenalty.
// On top, each move at index i of an n-move route adds a positional term:
// Left adds i, Down adds 2i, Right and Up add n-i. Left and Down are the
// buttons farthest from Submit on the next keypad out, so they are cheapest
// early; Right and Up sit next to Submit and are cheapest last.
func Cost(r Route) int {
	cost := 0
	for i := 1; i < len(r); i++ {
		if r[i] != r[i-1] {
			cost += ChangePenalty
		}
	}

	n := len(r)
	for i, d := range r {
		switch d {
		case Left:
			cost += i
		case Down:
			cost += 2 * i
		case Right, Up:
			cost += n - i
		}
	}

	return cost
}

// EnumerateRoutes returns the move sequence of every simple path from
// from to to on g, in depth-first enumeration order. When from == to the
// single empty route is returned. ErrNoRoute is returned when the keys are
// disconnected.
func EnumerateRoutes(g *core.Graph, from, to Key) ([]Route, error) {
	paths, err := dfs.SimplePaths(g, from.String(), to.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %s→%s: %w", ErrInvalidKey, from, to, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %s→%s", ErrNoRoute, from, to)
	}

	routes := make([]Route, 0, len(paths))
	for _, p := range paths {
		r := make(Route, 0, len(p)-1)
		for i := 1; i < len(p); i++ {
			e, err := g.EdgeBetween(p[i-1], p[i])
			if err != nil {
				return nil, fmt.Errorf("keypad: edge %s→%s: %w", p[i-1], p[i], err)
			}
			d, err := ParseDirection(e.Label)
			if err != nil {
				return nil, err
			}
			r = append(r, d)
		}
		routes = append(routes, r)
	}

	return routes, nil
}

// ShortestPath returns the route from from to to with the lowest
// (Cost, length). Remaining ties go to the route enumerated first.
func ShortestPath(g *core.Graph, from, to Key) (Route, error) {
	if from == to {
		if !g.HasVertex(from.String()) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidKey, from)
		}
		return Route{}, nil
	}

	routes, err := EnumerateRoutes(g, from, to)
	if err != nil {
		return nil, err
	}

	best, bestCost := routes[0], Cost(routes[0])
	for _, r := range routes[1:] {
		c := Cost(r)
		if c < bestCost || (c == bestCost && len(r) < len(best)) {
			best, bestCost = r, c
		}
	}

	return best, nil
}

// Distance returns the fewest moves between two keys of g, ignoring cost.
func Distance(g *core.Graph, from, to Key) (int, error) {
	if !g.HasVertex(from.String()) || !g.HasVertex(to.String()) {
		return 0, fmt.Errorf("%w: %s→%s", ErrInvalidKey, from, to)
	}
	d, err := bfs.Distance(g, from.String(), to.String())
	if err != nil {
		return 0, fmt.Errorf("%w: %s→%s: %w", ErrNoRoute, from, to, err)
	}

	return d, nil
}
