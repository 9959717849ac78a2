package view

import (
	"strings"
	"testing"

	"minesweep/internal/board"
)

// testBoard is a 3x3 board with one injected mine at (2,2), one flag at
// (0,2) and (0,0) revealed (a numbered cell region, so no flood).
func testBoard(t *testing.T) *board.Board {
	t.Helper()
	b, err := board.New(3, 3, 1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	b.CellAt(2, 2).State.Mine = true
	b.MinesPlaced = true
	for _, cell := range b.Cells {
		if cell.State.Mine {
			continue
		}
		n := 0
		for _, c := range b.Neighbors(cell.Col, cell.Row) {
			if b.CellAt(c.Col, c.Row).State.Mine {
				n++
			}
		}
		cell.State.Adjacent = n
	}
	b.ToggleFlag(0, 2)
	b.Reveal(0, 0)
	return b
}

func TestTakeStates(t *testing.T) {
	b := testBoard(t)
	snap := Take(b)

	if len(snap.Cells) != 3 || len(snap.Cells[0]) != 3 {
		t.Fatalf("snapshot is %dx%d, want 3x3", len(snap.Cells), len(snap.Cells[0]))
	}

	// (0,0) revealed with zero adjacent mines: flood opened its neighbors
	// too, so spot-check the three distinct states.
	if got := snap.Cells[0][0]; got.State != StateOpened || got.Mine {
		t.Errorf("cell (0,0) = %+v, want opened non-mine", got)
	}
	if got := snap.Cells[2][0]; got.State != StateFlagged {
		t.Errorf("cell (0,2) = %+v, want flagged", got)
	}
	if got := snap.Cells[2][2]; got.State != StateHidden {
		t.Errorf("cell (2,2) = %+v, want hidden", got)
	}
}

func TestTakeCountsOnlyNonMines(t *testing.T) {
	b := testBoard(t)
	b.Reveal(2, 2) // lose; the mine is force-revealed

	snap := Take(b)
	if !snap.GameOver || snap.Win {
		t.Fatalf("snapshot outcome = %+v, want a loss", snap)
	}
	mine := snap.Cells[2][2]
	if mine.State != StateOpened || !mine.Mine {
		t.Errorf("lost mine cell = %+v, want opened mine", mine)
	}
	if mine.Count != 0 {
		t.Errorf("mine cell carries count %d, counts are for safe cells only", mine.Count)
	}
}

func TestTakeMinesRemaining(t *testing.T) {
	b := testBoard(t)
	if got := Take(b).MinesRemaining; got != 0 {
		t.Errorf("MinesRemaining = %d, want 0 (1 mine, 1 flag)", got)
	}
	b.ToggleFlag(2, 2) // the only other hidden cell
	if got := Take(b).MinesRemaining; got != -1 {
		t.Errorf("MinesRemaining = %d, want -1 after overflagging", got)
	}
}

func TestRenderGlyphs(t *testing.T) {
	b := testBoard(t)
	out := Render(b)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("render has %d lines, want ruler plus 3 rows", len(lines))
	}
	if !strings.HasPrefix(lines[0], "   0 1 2") {
		t.Errorf("column ruler missing: %q", lines[0])
	}

	// Row 0: (0,0) flooded open; its whole row is part of the zero region's
	// border or interior, so no '#' other than none expected here.
	if !strings.Contains(lines[1], ".") && !strings.Contains(lines[1], "1") {
		t.Errorf("row 0 shows no revealed cells: %q", lines[1])
	}
	if !strings.Contains(lines[3], "F") {
		t.Errorf("row 2 is missing the flag glyph: %q", lines[3])
	}
	if !strings.Contains(lines[3], "#") {
		t.Errorf("row 2 is missing a hidden cell: %q", lines[3])
	}

	b.ToggleFlag(0, 2)
	b.Reveal(2, 2)
	out = Render(b)
	if !strings.Contains(out, "*") {
		t.Errorf("lost board renders no mine glyph:\n%s", out)
	}
}
