package config

import "testing"

func TestByLevel(t *testing.T) {
	tests := []struct {
		name  string
		level int
		want  Preset
	}{
		{name: "beginner", level: Beginner, want: Preset{Name: "Beginner", Cols: 10, Rows: 10, Mines: 10}},
		{name: "intermediate", level: Intermediate, want: Preset{Name: "Intermediate", Cols: 15, Rows: 15, Mines: 40}},
		{name: "expert", level: Expert, want: Preset{Name: "Expert", Cols: 20, Rows: 20, Mines: 80}},
		{name: "unknown falls back to intermediate", level: 99, want: Preset{Name: "Intermediate", Cols: 15, Rows: 15, Mines: 40}},
		{name: "zero falls back to intermediate", level: 0, want: Preset{Name: "Intermediate", Cols: 15, Rows: 15, Mines: 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ByLevel(tt.level); got != tt.want {
				t.Errorf("ByLevel(%d) = %+v, want %+v", tt.level, got, tt.want)
			}
		})
	}
}

func TestDefaultIsIntermediate(t *testing.T) {
	if got := Default(); got != ByLevel(Intermediate) {
		t.Errorf("Default() = %+v, want the intermediate preset", got)
	}
}

func TestLevelsAscending(t *testing.T) {
	levels := Levels()
	if len(levels) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(levels))
	}
	prev := ByLevel(levels[0])
	for _, level := range levels[1:] {
		p := ByLevel(level)
		if p.Mines <= prev.Mines {
			t.Errorf("level %d (%d mines) is not denser than the previous (%d mines)", level, p.Mines, prev.Mines)
		}
		prev = p
	}
}

func TestPresetsAreCopies(t *testing.T) {
	p := ByLevel(Beginner)
	p.Mines = 1000
	if again := ByLevel(Beginner); again.Mines != 10 {
		t.Errorf("mutating a returned preset leaked into the table: %+v", again)
	}
}
