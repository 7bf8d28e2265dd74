package core

// Orientation is one of the four cardinal facings an agent can have
type Orientation int

const (
	Left Orientation = iota
	Right
	Up
	Down
)

// Cell glyphs
const (
	FloorGlyph byte = '.'
	WallGlyph  byte = '#'
)

var orientationVectors = [...]Coordinate{
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
}

var orientationGlyphs = [...]byte{
	Left:  '<',
	Right: '>',
	Up:    '^',
	Down:  'v',
}

var orientationNames = [...]string{
	Left:  "LEFT",
	Right: "RIGHT",
	Up:    "UP",
	Down:  "DOWN",
}

// Orientations lists every orientation in table order
var Orientations = [...]Orientation{Left, Right, Up, Down}

// IsValid reports whether o is one of the four cardinal orientations
func (o Orientation) IsValid() bool {
	return o >= Left && o <= Down
}

// Vector returns the unit offset for the orientation
func (o Orientation) Vector() Coordinate {
	return orientationVectors[o]
}

// Glyph returns the grid character that shows an agent with this facing
func (o Orientation) Glyph() byte {
	return orientationGlyphs[o]
}

// String returns the human-readable name of the orientation
func (o Orientation) String() string {
	if !o.IsValid() {
		return "UNKNOWN"
	}
	return orientationNames[o]
}

// RotateClockwise turns a quarter right: (dx,dy) -> (-dy,dx)
func (o Orientation) RotateClockwise() Orientation {
	v := o.Vector()
	r, _ := OrientationFromVector(Coordinate{X: -v.Y, Y: v.X})
	return r
}

// RotateCounterClockwise turns a quarter left: (dx,dy) -> (dy,-dx)
func (o Orientation) RotateCounterClockwise() Orientation {
	v := o.Vector()
	r, _ := OrientationFromVector(Coordinate{X: v.Y, Y: -v.X})
	return r
}

// OrientationFromGlyph decodes a directional glyph.
// The second return value is false for floor, walls and any other byte.
func OrientationFromGlyph(g byte) (Orientation, bool) {
	for _, o := range Orientations {
		if orientationGlyphs[o] == g {
			return o, true
		}
	}
	return 0, false
}

// OrientationFromVector maps a unit vector back to its orientation
func OrientationFromVector(v Coordinate) (Orientation, bool) {
	for _, o := range Orientations {
		if orientationVectors[o] == v {
			return o, true
		}
	}
	return 0, false
}

// IsAgentGlyph reports whether g denotes an agent
func IsAgentGlyph(g byte) bool {
	_, ok := OrientationFromGlyph(g)
	return ok
}
