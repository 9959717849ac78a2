package board

import "fmt"

// CellState is the mutable state of a single cell.
type CellState struct {
	Mine     bool
	Revealed bool
	Flagged  bool
	Adjacent int // mines among the up-to-8 neighbors; meaningless for mine cells
}

// Cell is one board square, addressed by column and row.
type Cell struct {
	Col   int
	Row   int
	State CellState
}

// Coord addresses a cell by column and row.
type Coord struct {
	Col int
	Row int
}

// Board holds the whole game state: the row-major cell grid plus the
// placement and outcome flags. Fields are exported so the presentation
// layer can draw from them directly; mutation goes through the methods.
type Board struct {
	Cols          int
	Rows          int
	NumMines      int
	Cells         []*Cell // row-major, Rows*Cols entries
	MinesPlaced   bool
	RevealedCount int
	GameOver      bool
	Win           bool

	rng randSource
}

// InvalidParamsError reports constructor parameters no board can be built
// from.
type InvalidParamsError struct {
	Cols  int
	Rows  int
	Mines int
}

func (e *InvalidParamsError) Error() string {
	switch {
	case e.Cols <= 0:
		return fmt.Sprintf("cannot create a board with %d columns", e.Cols)
	case e.Rows <= 0:
		return fmt.Sprintf("cannot create a board with %d rows", e.Rows)
	case e.Mines < 0:
		return fmt.Sprintf("cannot create a board with %d mines", e.Mines)
	default:
		return fmt.Sprintf("not enough space for %d mines on a %dx%d board", e.Mines, e.Cols, e.Rows)
	}
}
