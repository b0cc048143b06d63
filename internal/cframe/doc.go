// Package cframe decodes and represents colored ASCII frames.
//
// A .cframe file stores one frame of colored ASCII art: an 8-byte
// little-endian header (width, height as uint32) followed by one
// 4-byte record per cell in row-major order (character, red, green,
// blue). [Parse] decodes a full [Grid]; [ParseText] extracts only the
// character content when color data is not needed.
//
//	grid, err := cframe.Parse(data)
//	if err != nil {
//	    // truncated or malformed input, never a panic
//	}
//
// Grids are immutable once decoded. [Frame] pairs a grid with its
// plain-text fallback representation for consumers that cannot render
// color.
package cframe
