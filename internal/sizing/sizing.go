// Package sizing computes font sizes that fit an ASCII frame into a
// pixel container while preserving the monospace cell aspect ratio.
package sizing

// FontSizing holds the geometry parameters for font size calculation.
type FontSizing struct {
	// CharWidthRatio is character width as a fraction of font size.
	CharWidthRatio float64
	// LineHeightRatio is line height as a fraction of font size.
	LineHeightRatio float64
	// MinFontSize and MaxFontSize bound the result in pixels.
	MinFontSize float64
	MaxFontSize float64
	// Padding is subtracted from each container dimension.
	Padding float64
}

// Default returns the standard monospace sizing parameters.
func Default() FontSizing {
	return FontSizing{
		CharWidthRatio:  0.6,
		LineHeightRatio: 1.11,
		MinFontSize:     1.0,
		MaxFontSize:     50.0,
		Padding:         20.0,
	}
}

// Calculate returns the largest font size at which cols x rows
// characters fit into the container, using the default parameters.
func Calculate(cols, rows int, containerWidth, containerHeight float64) float64 {
	return Default().CalculateFontSize(cols, rows, containerWidth, containerHeight)
}

// CalculateFontSize returns the largest font size at which cols x rows
// characters fit into the container, clamped to
// [MinFontSize, MaxFontSize].
func (s FontSizing) CalculateFontSize(cols, rows int, containerWidth, containerHeight float64) float64 {
	if cols <= 0 || rows <= 0 {
		return s.MinFontSize
	}

	availableWidth := containerWidth - s.Padding
	availableHeight := containerHeight - s.Padding
	if availableWidth <= 0 || availableHeight <= 0 {
		return s.MinFontSize
	}

	fromWidth := availableWidth / (float64(cols) * s.CharWidthRatio)
	fromHeight := availableHeight / (float64(rows) * s.LineHeightRatio)

	size := fromWidth
	if fromHeight < size {
		size = fromHeight
	}
	if size < s.MinFontSize {
		size = s.MinFontSize
	}
	if size > s.MaxFontSize {
		size = s.MaxFontSize
	}
	return size
}

// CharWidth returns the character width in pixels at the given font
// size.
func (s FontSizing) CharWidth(fontSize float64) float64 {
	return fontSize * s.CharWidthRatio
}

// LineHeight returns the line height in pixels at the given font size.
func (s FontSizing) LineHeight(fontSize float64) float64 {
	return fontSize * s.LineHeightRatio
}

// CanvasDimensions returns the pixel dimensions needed for a frame at
// a given font size.
func (s FontSizing) CanvasDimensions(cols, rows int, fontSize float64) (width, height float64) {
	return float64(cols) * s.CharWidth(fontSize), float64(rows) * s.LineHeight(fontSize)
}
