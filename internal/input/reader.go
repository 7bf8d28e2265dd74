// Package input reads maze descriptions: a width line, a height line, then
// height rows of at least width characters.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mitchelldurbincs/MazeBeasts/internal/maze/core"
)

var ErrInvalidNumber = errors.New("expected a whole number")

// Maze is a parsed but not yet simulated maze description
type Maze struct {
	Width  int
	Height int
	Rows   []string
}

// Read parses a maze from r. When prompt is non-nil the width and height
// questions are written to it before each value is read.
func Read(r io.Reader, prompt io.Writer) (*Maze, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	width, err := readInt(sc, prompt, "Width:")
	if err != nil {
		return nil, fmt.Errorf("reading width: %w", err)
	}
	height, err := readInt(sc, prompt, "Height:")
	if err != nil {
		return nil, fmt.Errorf("reading height: %w", err)
	}
	if width <= 0 || height <= 0 {
		return nil, core.WrapDimensionError(width, height, core.ErrInvalidDimensions)
	}

	m := &Maze{Width: width, Height: height, Rows: make([]string, 0, height)}
	for len(m.Rows) < height {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("reading row %d: %w", len(m.Rows), err)
			}
			return nil, core.WrapGridError(len(m.Rows), core.ErrMissingRows)
		}
		row := strings.TrimSuffix(sc.Text(), "\r")
		if len(row) < width {
			return nil, core.WrapGridError(len(m.Rows),
				fmt.Errorf("length %d < %d: %w", len(row), width, core.ErrRowTooShort))
		}
		m.Rows = append(m.Rows, row)
	}
	return m, nil
}

func readInt(sc *bufio.Scanner, prompt io.Writer, question string) (int, error) {
	if prompt != nil {
		fmt.Fprintln(prompt, question)
	}
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	text := strings.TrimSpace(sc.Text())
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", text, ErrInvalidNumber)
	}
	return n, nil
}
