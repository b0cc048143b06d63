// Package render turns a decoded color grid into an ordered list of
// draw batches, one per maximal same-color run, so a drawing backend
// can reproduce the grid with the minimum number of draw calls.
package render

import (
	"github.com/san-kum/cascii/internal/cframe"
)

// Default monospace geometry ratios.
const (
	DefaultCharWidthRatio  = 0.6
	DefaultLineHeightRatio = 1.11
)

// Config describes the cell geometry used to position batches.
type Config struct {
	FontSize        float64
	CharWidthRatio  float64
	LineHeightRatio float64
}

// NewConfig returns a Config with the default monospace ratios.
func NewConfig(fontSize float64) Config {
	return Config{
		FontSize:        fontSize,
		CharWidthRatio:  DefaultCharWidthRatio,
		LineHeightRatio: DefaultLineHeightRatio,
	}
}

// CellWidth returns the per-cell pixel width.
func (c Config) CellWidth() float64 {
	return c.FontSize * c.CharWidthRatio
}

// LineHeight returns the per-row pixel height.
func (c Config) LineHeight() float64 {
	return c.FontSize * c.LineHeightRatio
}

// Batch is one draw instruction: a run of same-colored characters at a
// pixel position. Batches are recomputed on every render call and
// never persisted.
type Batch struct {
	Text  string
	X     float64
	Y     float64
	Color cframe.Color
}

// Result holds the canvas pixel dimensions and the ordered batches for
// one frame.
type Result struct {
	Width   float64
	Height  float64
	Batches []Batch
}

// Render computes the draw batches for a grid.
//
// Runs are merged purely by color equality, regardless of character
// value: a stretch of same-colored spaces is still one batch. Callers
// that want to suppress background fills filter the result themselves.
// The output is deterministic for identical inputs, row batch count
// equals the row's maximal same-color run count, and concatenating a
// row's batch texts in x order reconstructs the row exactly.
func Render(g *cframe.Grid, cfg Config) Result {
	cellW := cfg.CellWidth()
	lineH := cfg.LineHeight()
	width := int(g.Width)
	height := int(g.Height)

	var batches []Batch
	run := make([]byte, 0, width)

	for row := 0; row < height; row++ {
		start := 0
		var runColor cframe.Color

		for col := 0; col < width; col++ {
			cell := g.Cells[row*width+col]
			if len(run) > 0 && cell.Color != runColor {
				batches = append(batches, Batch{
					Text:  string(run),
					X:     float64(start) * cellW,
					Y:     float64(row) * lineH,
					Color: runColor,
				})
				run = run[:0]
			}
			if len(run) == 0 {
				start = col
				runColor = cell.Color
			}
			run = append(run, cell.Char)
		}

		if len(run) > 0 {
			batches = append(batches, Batch{
				Text:  string(run),
				X:     float64(start) * cellW,
				Y:     float64(row) * lineH,
				Color: runColor,
			})
			run = run[:0]
		}
	}

	return Result{
		Width:   float64(width) * cellW,
		Height:  float64(height) * lineH,
		Batches: batches,
	}
}
