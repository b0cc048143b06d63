package cframe

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	data := []byte{
		2, 0, 0, 0, // width = 2
		1, 0, 0, 0, // height = 1
		'A', 255, 0, 0,
		'B', 0, 255, 0,
	}

	g, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if g.Width != 2 || g.Height != 1 {
		t.Errorf("dimensions = %dx%d, want 2x1", g.Width, g.Height)
	}
	want := []Cell{
		{Char: 'A', Color: Color{R: 255}},
		{Char: 'B', Color: Color{G: 255}},
	}
	for i, c := range want {
		if g.Cells[i] != c {
			t.Errorf("Cells[%d] = %+v, want %+v", i, g.Cells[i], c)
		}
	}
}

func TestParse_TooShort(t *testing.T) {
	for _, n := range []int{0, 1, 3, 7} {
		if _, err := Parse(make([]byte, n)); !errors.Is(err, ErrTooShort) {
			t.Errorf("Parse(%d bytes) error = %v, want ErrTooShort", n, err)
		}
	}
}

func TestParse_SizeMismatch(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"truncated payload", []byte{
			2, 0, 0, 0,
			2, 0, 0, 0,
			'A', 255, 0, 0, // 1 cell instead of 4
		}},
		{"oversized payload", []byte{
			1, 0, 0, 0,
			1, 0, 0, 0,
			'A', 255, 0, 0,
			'B', 0, 255, 0, // extra cell
		}},
		{"empty grid with payload", []byte{
			0, 0, 0, 0,
			0, 0, 0, 0,
			'A', 255, 0, 0,
		}},
		{"non-multiple of record size", []byte{
			1, 0, 0, 0,
			1, 0, 0, 0,
			'A', 255, 0,
		}},
		{"huge dimensions", []byte{
			255, 255, 255, 255,
			255, 255, 255, 255,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.data); !errors.Is(err, ErrSizeMismatch) {
				t.Errorf("Parse() error = %v, want ErrSizeMismatch", err)
			}
		})
	}
}

func TestParse_EmptyGrid(t *testing.T) {
	for _, data := range [][]byte{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 5, 0, 0, 0}, // width 0, height 5
		{5, 0, 0, 0, 0, 0, 0, 0}, // width 5, height 0
	} {
		g, err := Parse(data)
		if err != nil {
			t.Fatalf("Parse() error = %v, want empty grid", err)
		}
		if len(g.Cells) != 0 {
			t.Errorf("len(Cells) = %d, want 0", len(g.Cells))
		}
	}
}

func TestParse_RoundTrip(t *testing.T) {
	g := &Grid{Width: 3, Height: 2, Cells: []Cell{
		{'A', Color{255, 0, 0}},
		{'B', Color{0, 255, 0}},
		{'C', Color{0, 0, 255}},
		{' ', Color{0, 0, 0}},
		{'.', Color{128, 128, 128}},
		{'~', Color{1, 2, 3}},
	}}

	data, err := g.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary() error = %v", err)
	}
	if len(data) != HeaderSize+6*4 {
		t.Fatalf("encoded length = %d, want %d", len(data), HeaderSize+6*4)
	}

	var back Grid
	if err := back.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary() error = %v", err)
	}
	if back.Width != g.Width || back.Height != g.Height {
		t.Errorf("dimensions = %dx%d, want %dx%d", back.Width, back.Height, g.Width, g.Height)
	}
	for i := range g.Cells {
		if back.Cells[i] != g.Cells[i] {
			t.Errorf("Cells[%d] = %+v, want %+v", i, back.Cells[i], g.Cells[i])
		}
	}
}

func TestParseText(t *testing.T) {
	data := []byte{
		3, 0, 0, 0,
		2, 0, 0, 0,
		'A', 9, 9, 9, 'B', 0, 0, 0, 'C', 1, 1, 1,
		'D', 0, 0, 0, 'E', 2, 2, 2, 'F', 0, 0, 0,
	}

	text, err := ParseText(data)
	if err != nil {
		t.Fatalf("ParseText() error = %v", err)
	}
	if text != "ABC\nDEF\n" {
		t.Errorf("ParseText() = %q, want %q", text, "ABC\nDEF\n")
	}
}

func TestParseText_SameValidation(t *testing.T) {
	if _, err := ParseText([]byte{1, 2, 3}); !errors.Is(err, ErrTooShort) {
		t.Errorf("short buffer error = %v, want ErrTooShort", err)
	}
	if _, err := ParseText([]byte{1, 0, 0, 0, 1, 0, 0, 0, 'A'}); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("mismatched buffer error = %v, want ErrSizeMismatch", err)
	}
}

func TestDecodeError_Counts(t *testing.T) {
	_, err := Parse(make([]byte, 3))
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("error %v is not a *DecodeError", err)
	}
	if de.Expected != HeaderSize || de.Actual != 3 {
		t.Errorf("counts = (%d, %d), want (%d, 3)", de.Expected, de.Actual, HeaderSize)
	}
}
