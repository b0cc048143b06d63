package cframe

import (
	"encoding/binary"
	"strings"
)

const (
	// HeaderSize is the fixed .cframe header length in bytes.
	HeaderSize = 8
	// cellSize is the per-cell record length (char, r, g, b).
	cellSize = 4
)

// Parse decodes a .cframe buffer into a Grid.
//
// Zero width or height is valid and yields an empty grid. Parse never
// reads out of bounds: truncated or oversized buffers produce a
// *DecodeError wrapping ErrTooShort or ErrSizeMismatch.
func Parse(data []byte) (*Grid, error) {
	width, height, err := parseHeader(data)
	if err != nil {
		return nil, err
	}

	count := int(width) * int(height)
	cells := make([]Cell, count)
	for i := range cells {
		off := HeaderSize + i*cellSize
		cells[i] = Cell{
			Char:  data[off],
			Color: Color{R: data[off+1], G: data[off+2], B: data[off+3]},
		}
	}

	return &Grid{Width: width, Height: height, Cells: cells}, nil
}

// ParseText decodes only the character content of a .cframe buffer,
// one line per row with a trailing newline. Validation is identical to
// Parse but no cell structures are allocated.
func ParseText(data []byte) (string, error) {
	width, height, err := parseHeader(data)
	if err != nil {
		return "", err
	}

	w, h := int(width), int(height)
	var sb strings.Builder
	sb.Grow(w*h + h)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			off := HeaderSize + (row*w+col)*cellSize
			sb.WriteByte(data[off])
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// parseHeader validates the buffer against its declared dimensions.
// The uint64 arithmetic keeps the size check total even for header
// dimensions whose product overflows int.
func parseHeader(data []byte) (width, height uint32, err error) {
	if len(data) < HeaderSize {
		return 0, 0, &DecodeError{Expected: HeaderSize, Actual: len(data), Wrapped: ErrTooShort}
	}

	width = binary.LittleEndian.Uint32(data[0:4])
	height = binary.LittleEndian.Uint32(data[4:8])

	count := uint64(width) * uint64(height)
	payload := uint64(len(data) - HeaderSize)
	if payload/cellSize != count || payload%cellSize != 0 {
		return 0, 0, &DecodeError{
			Expected: HeaderSize + int(count)*cellSize,
			Actual:   len(data),
			Wrapped:  ErrSizeMismatch,
		}
	}
	return width, height, nil
}

// MarshalBinary encodes the grid back into the .cframe wire format.
// Parse(g.MarshalBinary()) round-trips exactly.
func (g *Grid) MarshalBinary() ([]byte, error) {
	data := make([]byte, HeaderSize, HeaderSize+len(g.Cells)*cellSize)
	binary.LittleEndian.PutUint32(data[0:4], g.Width)
	binary.LittleEndian.PutUint32(data[4:8], g.Height)
	for _, c := range g.Cells {
		data = append(data, c.Char, c.Color.R, c.Color.G, c.Color.B)
	}
	return data, nil
}

// UnmarshalBinary decodes a .cframe buffer in place.
func (g *Grid) UnmarshalBinary(data []byte) error {
	decoded, err := Parse(data)
	if err != nil {
		return err
	}
	*g = *decoded
	return nil
}
