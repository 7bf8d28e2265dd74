package maze

import (
	"fmt"

	"github.com/mitchelldurbincs/MazeBeasts/internal/maze/core"
)

// StepResult says which transition an agent took during one step
type StepResult int

const (
	Moved StepResult = iota
	TurnedRight
	TurnedLeft
)

func (r StepResult) String() string {
	switch r {
	case Moved:
		return "moved"
	case TurnedRight:
		return "turned_right"
	case TurnedLeft:
		return "turned_left"
	default:
		return "unknown"
	}
}

// Agent is a beast that keeps a wall on its right hand side.
// Position and orientation are the source of truth; the grid only mirrors
// them as a glyph, patched through PlaceAgent/ClearCell on every change.
type Agent struct {
	id              int
	grid            *core.Grid // not owned
	position        core.Coordinate
	orientation     core.Orientation
	rotatedLastStep bool
}

// NewAgent creates the agent drawn at pos. The cell must hold a directional
// glyph; anything else means the grid and its agents disagree and panics.
func NewAgent(id int, grid *core.Grid, pos core.Coordinate) *Agent {
	glyph := grid.Glyph(pos)
	o, ok := core.OrientationFromGlyph(glyph)
	if !ok {
		panic(fmt.Errorf("agent %d at %s: %q: %w", id, pos, glyph, core.ErrUnknownGlyph))
	}
	return &Agent{
		id:          id,
		grid:        grid,
		position:    pos,
		orientation: o,
	}
}

func (a *Agent) ID() int                       { return a.id }
func (a *Agent) Position() core.Coordinate     { return a.position }
func (a *Agent) Orientation() core.Orientation { return a.orientation }
func (a *Agent) RotatedLastStep() bool         { return a.rotatedLastStep }

// Step performs exactly one of move forward, turn right or turn left.
func (a *Agent) Step() StepResult {
	forward := a.position.Step(a.orientation)
	rightOrientation := a.orientation.RotateClockwise()
	rightPosition := a.position.Step(rightOrientation)

	if a.isFloor(forward) && (a.rotatedLastStep || a.isBlocked(rightPosition)) {
		a.rotatedLastStep = false
		a.moveTo(forward)
		return Moved
	}

	a.rotatedLastStep = true

	if a.isFloor(rightPosition) {
		a.face(rightOrientation)
		return TurnedRight
	}

	a.face(a.orientation.RotateCounterClockwise())
	return TurnedLeft
}

// isFloor: on the grid and empty
func (a *Agent) isFloor(p core.Coordinate) bool {
	return a.grid.IsPositionValid(p) && a.grid.IsPositionEmpty(p)
}

// isBlocked: on the grid and not empty. Off-grid cells count as neither.
func (a *Agent) isBlocked(p core.Coordinate) bool {
	return a.grid.IsPositionValid(p) && !a.grid.IsPositionEmpty(p)
}

func (a *Agent) moveTo(p core.Coordinate) {
	a.grid.ClearCell(a.position)
	a.position = p
	a.grid.PlaceAgent(a.position, a.orientation)
}

func (a *Agent) face(o core.Orientation) {
	a.orientation = o
	a.grid.PlaceAgent(a.position, a.orientation)
}

func (a *Agent) String() string {
	return fmt.Sprintf("beast at %s facing %s", a.position, a.orientation)
}
