package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinate_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		c        Coordinate
		expected bool
	}{
		{"origin", Coordinate{0, 0}, true},
		{"last cell", Coordinate{4, 2}, true},
		{"negative x", Coordinate{-1, 0}, false},
		{"negative y", Coordinate{0, -1}, false},
		{"x at width", Coordinate{5, 0}, false},
		{"y at height", Coordinate{0, 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.c.IsValid(5, 3))
		})
	}
}

func TestCoordinate_IndexRoundTrip(t *testing.T) {
	width := 7
	for idx := 0; idx < 21; idx++ {
		c := FromIndex(idx, width)
		assert.Equal(t, idx, c.ToIndex(width))
	}
	assert.Equal(t, Coordinate{X: 3, Y: 2}, FromIndex(17, width))
}

func TestCoordinate_Step(t *testing.T) {
	c := NewCoordinate(2, 1)
	assert.Equal(t, Coordinate{1, 1}, c.Step(Left))
	assert.Equal(t, Coordinate{3, 1}, c.Step(Right))
	assert.Equal(t, Coordinate{2, 0}, c.Step(Up))
	assert.Equal(t, Coordinate{2, 2}, c.Step(Down))
	assert.Equal(t, "(2,1)", c.String())
}
