// Package config carries the difficulty presets a front end feeds into the
// engine's constructor. The values are fixed at compile time and callers
// only ever receive copies; the engine itself never reads this package.
package config

// Preset is one difficulty level: board dimensions plus mine count.
type Preset struct {
	Name  string
	Cols  int
	Rows  int
	Mines int
}

// Difficulty levels, in ascending order of mine density.
const (
	Beginner     = 1
	Intermediate = 2
	Expert       = 3
)

var presets = map[int]Preset{
	Beginner:     {Name: "Beginner", Cols: 10, Rows: 10, Mines: 10},
	Intermediate: {Name: "Intermediate", Cols: 15, Rows: 15, Mines: 40},
	Expert:       {Name: "Expert", Cols: 20, Rows: 20, Mines: 80},
}

// ByLevel returns the preset for a difficulty level. Unknown levels fall
// back to the intermediate preset.
func ByLevel(level int) Preset {
	if p, ok := presets[level]; ok {
		return p
	}
	return presets[Intermediate]
}

// Default is the preset used when the player picks nothing.
func Default() Preset {
	return presets[Intermediate]
}

// Levels lists the known difficulty levels in ascending order.
func Levels() []int {
	return []int{Beginner, Intermediate, Expert}
}
