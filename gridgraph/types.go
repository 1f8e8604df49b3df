// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/padchain.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrDuplicateSymbol indicates two cells carry the same symbol.
	ErrDuplicateSymbol = errors.New("gridgraph: symbol appears in more than one cell")
	// ErrMissingLabel indicates ToCoreGraph was given no label for a neighbor offset.
	ErrMissingLabel = errors.New("gridgraph: no label for neighbor offset")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: E, N, W, S.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: E, NE, N, NW, W, SW, S, SE.
	Conn8
)

// Offset is a single grid step. DY grows downward (row index).
type Offset struct {
	DX, DY int
}

// Standard offsets. Row 0 is the top of the layout.
var (
	East  = Offset{DX: 1, DY: 0}
	North = Offset{DX: 0, DY: -1}
	West  = Offset{DX: -1, DY: 0}
	South = Offset{DX: 0, DY: 1}
)

// DefaultGap marks a cell with no button.
const DefaultGap = ' '

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Gap is the rune that marks an empty cell.
	Gap rune
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// Gap=' ', Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Gap:  DefaultGap,
		Conn: Conn4,
	}
}

// GridGraph treats a 2D table of symbols as a graph. It is immutable once built.
// Width and Height define dimensions; Cells[y][x] holds the symbol at (x,y).
// neighborOffsets is precomputed and fixes the edge insertion order.
type GridGraph struct {
	Width, Height   int
	Cells           [][]rune
	Gap             rune
	Conn            Connectivity
	neighborOffsets []Offset
	positions       map[rune][2]int
}
