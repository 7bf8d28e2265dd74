package testutil

import (
	"strings"

	"github.com/mitchelldurbincs/MazeBeasts/internal/maze/core"
)

// Corridor is a 5x3 corridor with one beast facing right at (2,1)
var Corridor = []string{
	"#####",
	"#.>.#",
	"#####",
}

// Rooms is a small maze with four beasts, used for determinism checks
var Rooms = []string{
	"##########",
	"#>...#...#",
	"#.##.#.#.#",
	"#.#..^.#.#",
	"#.#.####.#",
	"#...<....#",
	"##.####v.#",
	"#........#",
	"##########",
}

// Parse splits a multi-line literal into rows, dropping a leading newline
func Parse(text string) []string {
	return strings.Split(strings.TrimPrefix(text, "\n"), "\n")
}

// CreateTestGrid builds a grid from rows, sized by the first row
func CreateTestGrid(rows []string) *core.Grid {
	g, err := core.NewGrid(len(rows[0]), len(rows), rows)
	if err != nil {
		panic(err)
	}
	return g
}
