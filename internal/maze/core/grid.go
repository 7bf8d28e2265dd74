package core

import (
	"fmt"
	"strings"
)

// Grid holds the maze cells. Agents are drawn into the cells as their
// orientation glyph; everything that is neither floor nor an agent is wall.
type Grid struct {
	W, H  int
	cells []byte // length = W*H (row-major)
}

// AgentDescriptor is an agent found while scanning the grid
type AgentDescriptor struct {
	Position    Coordinate
	Orientation Orientation
}

// NewGrid copies the first width bytes of each of the first height rows.
// Extra characters and extra rows are ignored.
func NewGrid(width, height int, rows []string) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, WrapDimensionError(width, height, ErrInvalidDimensions)
	}
	if len(rows) < height {
		return nil, WrapDimensionError(width, height,
			fmt.Errorf("got %d rows: %w", len(rows), ErrMissingRows))
	}

	g := &Grid{W: width, H: height, cells: make([]byte, width*height)}
	for y := 0; y < height; y++ {
		row := rows[y]
		if len(row) < width {
			return nil, WrapGridError(y, fmt.Errorf("length %d < %d: %w", len(row), width, ErrRowTooShort))
		}
		copy(g.cells[y*width:(y+1)*width], row[:width])
	}
	return g, nil
}

func (g *Grid) Idx(c Coordinate) int { return c.ToIndex(g.W) }

// IsPositionValid checks if p lies inside the grid
func (g *Grid) IsPositionValid(p Coordinate) bool {
	return p.IsValid(g.W, g.H)
}

// IsPositionEmpty reports whether p holds floor.
// Callers must check IsPositionValid first; an invalid p panics.
func (g *Grid) IsPositionEmpty(p Coordinate) bool {
	return g.Glyph(p) == FloorGlyph
}

// Glyph returns the raw cell content at p. Panics when p is off the grid.
func (g *Grid) Glyph(p Coordinate) byte {
	if !g.IsPositionValid(p) {
		panic(fmt.Errorf("read %s on %dx%d grid: %w", p, g.W, g.H, ErrOutOfBounds))
	}
	return g.cells[g.Idx(p)]
}

// PlaceAgent draws an agent facing o at p
func (g *Grid) PlaceAgent(p Coordinate, o Orientation) {
	g.set(p, o.Glyph())
}

// ClearCell turns p back into floor
func (g *Grid) ClearCell(p Coordinate) {
	g.set(p, FloorGlyph)
}

func (g *Grid) set(p Coordinate, b byte) {
	if !g.IsPositionValid(p) {
		panic(fmt.Errorf("write %s on %dx%d grid: %w", p, g.W, g.H, ErrOutOfBounds))
	}
	g.cells[g.Idx(p)] = b
}

// FindAllAgents scans the grid row by row, left to right, and returns
// every agent glyph it meets in that order.
func (g *Grid) FindAllAgents() []AgentDescriptor {
	var found []AgentDescriptor
	for i, b := range g.cells {
		if o, ok := OrientationFromGlyph(b); ok {
			found = append(found, AgentDescriptor{
				Position:    FromIndex(i, g.W),
				Orientation: o,
			})
		}
	}
	return found
}

// Rows returns a copy of the current cell rows
func (g *Grid) Rows() []string {
	rows := make([]string, g.H)
	for y := 0; y < g.H; y++ {
		rows[y] = string(g.cells[y*g.W : (y+1)*g.W])
	}
	return rows
}

// Render joins the rows with line breaks, without a trailing newline
func (g *Grid) Render() string {
	var sb strings.Builder
	sb.Grow((g.W + 1) * g.H)
	for y := 0; y < g.H; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(g.cells[y*g.W : (y+1)*g.W])
	}
	return sb.String()
}
