package maze

import (
	"strings"

	"github.com/mitchelldurbincs/MazeBeasts/internal/maze/core"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorYellow = "\033[33m"
	ColorGray   = "\033[90m"
)

// RenderColor returns the grid with beasts in red, walls in gray and floor
// in yellow, for terminals. Stripping the escape codes yields Render().
func (s *Simulation) RenderColor() string {
	g := s.grid
	var sb strings.Builder
	// glyph plus worst-case escape prefix and reset per cell
	sb.Grow(g.H * (g.W*(1+len(ColorGray)+len(ColorReset)) + 1))

	for y, row := range g.Rows() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for i := 0; i < len(row); i++ {
			writeCell(&sb, row[i])
		}
	}
	return sb.String()
}

func writeCell(sb *strings.Builder, glyph byte) {
	switch {
	case core.IsAgentGlyph(glyph):
		sb.WriteString(ColorRed)
	case glyph == core.FloorGlyph:
		sb.WriteString(ColorYellow)
	default:
		sb.WriteString(ColorGray)
	}
	sb.WriteByte(glyph)
	sb.WriteString(ColorReset)
}
