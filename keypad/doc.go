// Package keypad models the physical keypads of a robot relay chain and
// finds the cheapest way to move a controller's finger between two keys.
//
// What:
//
//   - Key, Direction and the two fixed layouts (VariantNumeric,
//     VariantDirectional), each built once into an immutable core.Graph via
//     gridgraph and validated with dfs (every key present and reachable).
//   - Route enumeration over all simple paths (dfs.SimplePaths) and a cost
//     model that favours few turns, Left/Down first and Right/Up last.
//   - Distance: the plain hop count between two keys (bfs.Distance).
//   - Keypad: a variant-tagged handle exposing ShortestPressSequence and
//     Press, safe for concurrent use.
//   - Code parsing for the numeric door codes fed into the chain.
//
// Tie-break:
//
//	ShortestPath orders candidates by (Cost, length); any remaining tie
//	goes to the route found first. Enumeration follows neighbor order,
//	which gridgraph fixes as East, North, West, South, so a tie between
//	a Right move and an Up move resolves with Right first (2→9 is ">^^").
//
// Errors:
//
//   - ErrMalformedLayout, ErrUnknownVariant: broken constants (Graph panics).
//   - ErrNoRoute: disconnected keys.
//   - ErrInvalidKey, ErrInvalidCode: rejected input.
//   - ErrInvalidDirection, ErrIllegalMove: bad labels or moves into a gap.
package keypad
