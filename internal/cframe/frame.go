package cframe

import (
	"strconv"
	"strings"
)

// Frame is one loaded animation frame: plain text content and,
// optionally, the colored grid decoded from its .cframe file. The two
// representations are stored independently and never cross-validated;
// the grid is authoritative for colored rendering, the text is the
// fallback. A Frame is not mutated after construction.
type Frame struct {
	Content string `json:"content"`
	Grid    *Grid  `json:"grid,omitempty"`
}

// TextOnly creates a frame without color data.
func TextOnly(content string) Frame {
	return Frame{Content: content}
}

// WithColor creates a frame pairing text content with a decoded grid.
func WithColor(content string, grid *Grid) Frame {
	return Frame{Content: content, Grid: grid}
}

// HasColor reports whether the frame carries a decoded grid.
func (f *Frame) HasColor() bool {
	return f.Grid != nil
}

// Lines returns the text content split into lines, without a trailing
// empty line.
func (f *Frame) Lines() []string {
	if f.Content == "" {
		return nil
	}
	return strings.Split(strings.TrimRight(f.Content, "\n"), "\n")
}

// LineCount returns the number of text lines.
func (f *Frame) LineCount() int {
	return len(f.Lines())
}

// Dimensions returns (columns, rows) derived from the text content.
// Columns is the length of the longest line.
func (f *Frame) Dimensions() (cols, rows int) {
	lines := f.Lines()
	for _, l := range lines {
		if n := len(l); n > cols {
			cols = n
		}
	}
	return cols, len(lines)
}

// CellAt looks up a colored cell. It fails with ErrIndexOutOfBounds
// when the frame has no grid or the position is outside it.
func (f *Frame) CellAt(row, col int) (Cell, error) {
	if f.Grid == nil {
		return Cell{}, ErrIndexOutOfBounds
	}
	return f.Grid.CellAt(row, col)
}

// FrameFile is metadata about a frame file on disk.
type FrameFile struct {
	Path  string `json:"path"`
	Name  string `json:"name"`
	Index uint32 `json:"index"`
}

// ExtractIndex derives a frame's ordering index from a filename stem.
// "frame_0001" and "my_frame_3" use the digits after the last
// underscore; otherwise all digits in the stem are used. The fallback
// is returned when the stem has no digits at all.
func ExtractIndex(stem string, fallback uint32) uint32 {
	if suffix, ok := strings.CutPrefix(stem, "frame_"); ok {
		if n, err := strconv.ParseUint(suffix, 10, 32); err == nil {
			return uint32(n)
		}
		return 0
	}

	var digits strings.Builder
	for _, r := range stem {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return fallback
	}
	n, err := strconv.ParseUint(digits.String(), 10, 32)
	if err != nil {
		return fallback
	}
	return uint32(n)
}
