// Package gridgraph treats a 2D table of symbols as a graph, so that
// physical layouts (keypads, boards, floor plans) can be queried with the
// generic graph algorithms of this module.
//
// What:
//
//   - GridGraph wraps rows of runes; one configurable rune marks a gap.
//   - Every non-gap cell is a vertex identified by its symbol.
//   - ToCoreGraph emits a directed *core.Graph with one labeled edge per
//     direction between neighboring cells (labels chosen by the caller per Offset).
//
// Why:
//
//   - Keypads: adjacency with a missing corner and a heading on each move.
//   - Board games: legal single-step moves between named squares.
//
// Complexity:
//
//   - NewGridGraph: O(W×H), Memory: O(W×H).
//   - ToCoreGraph:  O(W×H×d + E), Memory: O(W×H + E)   (d = 4 or 8).
//
// Options:
//
//   - GridOptions.Gap: rune marking cells without a symbol.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrDuplicateSymbol: a symbol labels more than one cell.
//   - ErrMissingLabel: ToCoreGraph lacks a label for a neighbor offset.
package gridgraph
