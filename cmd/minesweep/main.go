// Command minesweep plays Minesweeper in the terminal. It is a thin front
// end over internal/board: it translates text commands into reveal/flag
// calls and draws the resulting state, which is all the engine expects of
// a presentation layer.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"minesweep/internal/board"
	"minesweep/internal/config"
	"minesweep/internal/view"
)

var log = logrus.New()

func main() {
	var (
		level = flag.Int("level", config.Intermediate, "difficulty preset: 1 beginner, 2 intermediate, 3 expert")
		cols  = flag.Int("cols", 0, "board columns (overrides the preset)")
		rows  = flag.Int("rows", 0, "board rows (overrides the preset)")
		mines = flag.Int("mines", -1, "mine count (overrides the preset)")
		seed  = flag.Uint64("seed", 0, "PRNG seed for a reproducible game; 0 means random")
		debug = flag.Bool("debug", false, "log engine diagnostics")
	)
	flag.Parse()

	if *debug {
		log.SetLevel(logrus.DebugLevel)
		board.SetLogLevel(logrus.DebugLevel)
	}

	preset := config.ByLevel(*level)
	if *cols > 0 || *rows > 0 || *mines >= 0 {
		preset.Name = "Custom"
		if *cols > 0 {
			preset.Cols = *cols
		}
		if *rows > 0 {
			preset.Rows = *rows
		}
		if *mines >= 0 {
			preset.Mines = *mines
		}
	}

	in := bufio.NewScanner(os.Stdin)
	for {
		b, err := newGame(preset, *seed)
		if err != nil {
			log.WithError(err).Fatal("cannot build board")
		}
		if !play(b, in) {
			return
		}
	}
}

// newGame builds a board from the preset and logs the session identity.
func newGame(preset config.Preset, seed uint64) (*board.Board, error) {
	var (
		b   *board.Board
		err error
	)
	if seed != 0 {
		b, err = board.NewSeeded(preset.Cols, preset.Rows, preset.Mines, seed)
	} else {
		b, err = board.New(preset.Cols, preset.Rows, preset.Mines)
	}
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"game":   uuid.NewString(),
		"preset": preset.Name,
		"cols":   preset.Cols,
		"rows":   preset.Rows,
		"mines":  preset.Mines,
		"seed":   seed,
	}).Info("new game")
	return b, nil
}

// play runs one game to completion. It reports whether the player asked
// for another round.
func play(b *board.Board, in *bufio.Scanner) bool {
	for {
		fmt.Print(view.Render(b))

		if b.GameOver || b.Win {
			if b.Win {
				fmt.Println("Board cleared. You win!")
			} else {
				fmt.Println("Boom. You hit a mine.")
			}
			fmt.Printf("flags used: %d/%d\n", b.FlaggedCount(), b.NumMines)
			fmt.Print("(n)ew game or (q)uit? ")
			if !in.Scan() {
				return false
			}
			return strings.TrimSpace(in.Text()) == "n"
		}

		fmt.Printf("mines left: %d\n", b.NumMines-b.FlaggedCount())
		fmt.Print("> ")
		if !in.Scan() {
			return false
		}
		line := strings.TrimSpace(in.Text())
		switch line {
		case "":
			continue
		case "q":
			return false
		case "n":
			return true
		}
		if err := apply(b, line); err != nil {
			fmt.Println(err)
		}
	}
}

// apply parses and runs a single move: "r COL ROW" reveals, "f COL ROW"
// toggles a flag. Coordinates outside the board fall through to the
// engine's no-op guards.
func apply(b *board.Board, line string) error {
	var (
		op       rune
		col, row int
	)
	if n, _ := fmt.Sscanf(line, "%c %d %d", &op, &col, &row); n < 3 {
		return fmt.Errorf("bad command %q: want \"r COL ROW\", \"f COL ROW\", \"n\" or \"q\"", line)
	}
	switch op {
	case 'r':
		b.Reveal(col, row)
	case 'f':
		b.ToggleFlag(col, row)
	default:
		return fmt.Errorf("unknown command %q", op)
	}
	log.WithFields(logrus.Fields{
		"op":       string(op),
		"col":      col,
		"row":      row,
		"revealed": b.RevealedCount,
		"flags":    b.FlaggedCount(),
	}).Debug("move applied")
	return nil
}
