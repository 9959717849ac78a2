// Package view projects engine state into shapes a front end can draw.
// It only reads the board's public surface and never mutates it.
package view

import (
	"fmt"
	"strconv"
	"strings"

	"minesweep/internal/board"
)

// Cell render states consumed by front ends.
const (
	StateHidden  = "hidden"
	StateFlagged = "flagged"
	StateOpened  = "opened"
)

// CellView is the drawable state of one cell.
type CellView struct {
	State string `json:"state"`
	Count int    `json:"count"`
	Mine  bool   `json:"is_mine"`
}

// Snapshot is a full read-only projection of a board.
type Snapshot struct {
	Cells          [][]CellView `json:"cells"`
	MinesRemaining int          `json:"mines_remaining"`
	GameOver       bool         `json:"is_game_over"`
	Win            bool         `json:"is_win"`
}

// Take builds a Snapshot of the board's current state. Cells are indexed
// [row][col].
func Take(b *board.Board) Snapshot {
	cells := make([][]CellView, b.Rows)
	for row := 0; row < b.Rows; row++ {
		cells[row] = make([]CellView, b.Cols)
		for col := 0; col < b.Cols; col++ {
			c := b.Cells[b.Index(col, row)]
			v := CellView{State: StateHidden}
			switch {
			case c.State.Revealed:
				v.State = StateOpened
				v.Mine = c.State.Mine
				if !c.State.Mine {
					v.Count = c.State.Adjacent
				}
			case c.State.Flagged:
				v.State = StateFlagged
			}
			cells[row][col] = v
		}
	}
	return Snapshot{
		Cells:          cells,
		MinesRemaining: b.NumMines - b.FlaggedCount(),
		GameOver:       b.GameOver,
		Win:            b.Win,
	}
}

// Render draws the board as fixed-width text with column and row rulers.
// Hidden cells print as '#', flags as 'F', revealed mines as '*', revealed
// zero cells as '.' and numbered cells as their digit.
func Render(b *board.Board) string {
	var sb strings.Builder
	sb.WriteString("   ")
	for col := 0; col < b.Cols; col++ {
		fmt.Fprintf(&sb, "%d ", col%10)
	}
	sb.WriteByte('\n')
	for row := 0; row < b.Rows; row++ {
		fmt.Fprintf(&sb, "%2d ", row%100)
		for col := 0; col < b.Cols; col++ {
			sb.WriteString(glyph(b.Cells[b.Index(col, row)]))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func glyph(c *board.Cell) string {
	switch {
	case !c.State.Revealed && c.State.Flagged:
		return "F"
	case !c.State.Revealed:
		return "#"
	case c.State.Mine:
		return "*"
	case c.State.Adjacent == 0:
		return "."
	default:
		return strconv.Itoa(c.State.Adjacent)
	}
}
