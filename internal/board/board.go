package board

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// log is the package logger. The engine stays quiet unless a front end
// raises the level, e.g. via SetLogLevel.
var log = logrus.New()

func init() {
	log.SetLevel(logrus.WarnLevel)
}

// SetLogLevel adjusts the verbosity of the engine's package logger.
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// randSource is the part of *rand.Rand the engine needs. A nil source
// means the process-global generator.
type randSource interface {
	IntN(n int) int
}

// neighborDeltas is the fixed compass order NW, N, NE, W, E, SW, S, SE.
// Flood fill pushes neighbors in this order, which keeps traversal
// reproducible for a given board.
var neighborDeltas = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// New allocates a cols x rows board with the given mine count. All cells
// start hidden, unflagged and mine-free; mines are placed lazily by the
// first Reveal so that the first click is always safe.
func New(cols, rows, mines int) (*Board, error) {
	if cols <= 0 || rows <= 0 || mines < 0 || mines > cols*rows {
		return nil, &InvalidParamsError{Cols: cols, Rows: rows, Mines: mines}
	}
	cells := make([]*Cell, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cells[row*cols+col] = &Cell{Col: col, Row: row}
		}
	}
	return &Board{Cols: cols, Rows: rows, NumMines: mines, Cells: cells}, nil
}

// NewSeeded is New with a deterministic PRNG, for reproducible games and
// tests. The same seed and first click always yield the same mine layout.
func NewSeeded(cols, rows, mines int, seed uint64) (*Board, error) {
	b, err := New(cols, rows, mines)
	if err != nil {
		return nil, err
	}
	b.rng = rand.New(rand.NewPCG(seed, seed))
	return b, nil
}

// Index returns the row-major index of (col,row). Callers check bounds.
func (b *Board) Index(col, row int) int {
	return row*b.Cols + col
}

// InBounds reports whether (col,row) lies on the board.
func (b *Board) InBounds(col, row int) bool {
	return col >= 0 && col < b.Cols && row >= 0 && row < b.Rows
}

// CellAt returns the cell at (col,row), or nil when out of bounds.
func (b *Board) CellAt(col, row int) *Cell {
	if !b.InBounds(col, row) {
		return nil
	}
	return b.Cells[b.Index(col, row)]
}

// Neighbors returns the in-bounds coordinates at Chebyshev distance 1 from
// (col,row), in compass order.
func (b *Board) Neighbors(col, row int) []Coord {
	coords := make([]Coord, 0, 8)
	for _, d := range neighborDeltas {
		nc, nr := col+d[0], row+d[1]
		if b.InBounds(nc, nr) {
			coords = append(coords, Coord{Col: nc, Row: nr})
		}
	}
	return coords
}

func (b *Board) intN(n int) int {
	if b.rng != nil {
		return b.rng.IntN(n)
	}
	return rand.IntN(n)
}

// placeMines runs exactly once, triggered by the first Reveal. The clicked
// cell and its neighbors never receive a mine; if that exclusion zone
// leaves fewer free cells than NumMines, only as many mines as fit are
// placed.
func (b *Board) placeMines(safeCol, safeRow int) {
	forbidden := mapset.New[Coord]()
	forbidden.Put(Coord{Col: safeCol, Row: safeRow})
	for _, c := range b.Neighbors(safeCol, safeRow) {
		forbidden.Put(c)
	}

	pool := make([]Coord, 0, b.Cols*b.Rows)
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			if c := (Coord{Col: col, Row: row}); !forbidden.Has(c) {
				pool = append(pool, c)
			}
		}
	}

	// Partial Fisher-Yates: after count swaps the head of the pool holds a
	// uniform sample without replacement.
	count := min(b.NumMines, len(pool))
	for i := 0; i < count; i++ {
		j := i + b.intN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
		b.Cells[b.Index(pool[i].Col, pool[i].Row)].State.Mine = true
	}
	b.MinesPlaced = true
	b.computeAdjacency()

	log.WithFields(logrus.Fields{
		"cols":     b.Cols,
		"rows":     b.Rows,
		"mines":    count,
		"safe_col": safeCol,
		"safe_row": safeRow,
	}).Debug("mines placed")
}

// computeAdjacency fills in Adjacent for every non-mine cell. Runs once,
// right after placement; mine cells keep their zero value, which is never
// read as meaningful.
func (b *Board) computeAdjacency() {
	for _, cell := range b.Cells {
		if cell.State.Mine {
			continue
		}
		count := 0
		for _, c := range b.Neighbors(cell.Col, cell.Row) {
			if b.Cells[b.Index(c.Col, c.Row)].State.Mine {
				count++
			}
		}
		cell.State.Adjacent = count
	}
}

// markRevealed flips a cell to revealed and keeps RevealedCount in step.
// Every reveal path funnels through here so the counter never drifts from
// the number of revealed cells.
func (b *Board) markRevealed(cell *Cell) {
	if cell.State.Revealed {
		return
	}
	cell.State.Revealed = true
	b.RevealedCount++
}

// Reveal opens the cell at (col,row). Out-of-bounds coordinates, already
// revealed cells and flagged cells are silent no-ops. The first call places
// the mines with (col,row) as the safe origin. Revealing a mine ends the
// game and exposes every mine; revealing a zero-adjacency cell floods
// through its contiguous zero region and the one-cell numbered border
// around it.
func (b *Board) Reveal(col, row int) {
	if !b.InBounds(col, row) {
		return
	}
	if !b.MinesPlaced {
		b.placeMines(col, row)
	}
	cell := b.Cells[b.Index(col, row)]
	if cell.State.Revealed || cell.State.Flagged {
		return
	}
	b.markRevealed(cell)

	if cell.State.Mine {
		// GameOver and Win stay mutually exclusive: a reveal that slips in
		// after the board is decided cannot flip the outcome.
		if !b.GameOver && !b.Win {
			b.GameOver = true
			b.revealAllMines()
			log.WithFields(logrus.Fields{"col": col, "row": row}).Debug("mine revealed, game over")
		}
		return
	}
	if cell.State.Adjacent == 0 {
		b.flood(col, row)
	}
	b.checkWin()
}

// flood opens the contiguous zero-adjacency region around an already
// revealed zero cell, plus the numbered border that stops the spread. An
// explicit worklist keeps memory bounded on large grids; termination holds
// because each cell is revealed at most once and revealed cells are
// skipped.
func (b *Board) flood(col, row int) {
	stack := b.Neighbors(col, row)
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cell := b.Cells[b.Index(c.Col, c.Row)]
		if cell.State.Revealed || cell.State.Flagged {
			continue
		}
		b.markRevealed(cell)
		if cell.State.Adjacent == 0 {
			stack = append(stack, b.Neighbors(c.Col, c.Row)...)
		}
	}
}

// ToggleFlag flips the flag on a hidden cell. Revealed cells and
// out-of-bounds coordinates are ignored.
func (b *Board) ToggleFlag(col, row int) {
	cell := b.CellAt(col, row)
	if cell == nil || cell.State.Revealed {
		return
	}
	cell.State.Flagged = !cell.State.Flagged
}

// FlaggedCount returns the number of currently flagged cells.
func (b *Board) FlaggedCount() int {
	count := 0
	for _, cell := range b.Cells {
		if cell.State.Flagged {
			count++
		}
	}
	return count
}

// revealAllMines exposes every mine for the end-of-game screen.
func (b *Board) revealAllMines() {
	for _, cell := range b.Cells {
		if cell.State.Mine {
			b.markRevealed(cell)
		}
	}
}

// checkWin fires when every non-mine cell is revealed and the game is not
// lost. Any non-mine cell still hidden at that point is force-revealed so
// the board renders fully resolved.
func (b *Board) checkWin() {
	if b.GameOver || b.Win {
		return
	}
	if b.RevealedCount != b.Cols*b.Rows-b.NumMines {
		return
	}
	b.Win = true
	for _, cell := range b.Cells {
		if !cell.State.Mine {
			b.markRevealed(cell)
		}
	}
	log.WithField("revealed", b.RevealedCount).Debug("board cleared")
}
