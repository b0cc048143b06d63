package project

import (
	"testing"

	"github.com/san-kum/cascii/internal/cframe"
)

func TestParseColor_Named(t *testing.T) {
	tests := []struct {
		in   string
		want cframe.Color
	}{
		{"black", cframe.Color{R: 0, G: 0, B: 0}},
		{"white", cframe.Color{R: 255, G: 255, B: 255}},
		{"green", cframe.Color{R: 0, G: 128, B: 0}},
		{"brown", cframe.Color{R: 139, G: 69, B: 19}},
		{"WHITE", cframe.Color{R: 255, G: 255, B: 255}},
		{"  black  ", cframe.Color{R: 0, G: 0, B: 0}},
	}
	for _, tt := range tests {
		got, ok := ParseColor(tt.in)
		if !ok || got != tt.want {
			t.Errorf("ParseColor(%q) = %v, %v; want %v", tt.in, got, ok, tt.want)
		}
	}
}

func TestParseColor_Hex(t *testing.T) {
	tests := []struct {
		in   string
		want cframe.Color
	}{
		{"#000000", cframe.Color{R: 0, G: 0, B: 0}},
		{"#FF0000", cframe.Color{R: 255, G: 0, B: 0}},
		{"#f6f6f6", cframe.Color{R: 246, G: 246, B: 246}},
		{"#fff", cframe.Color{R: 255, G: 255, B: 255}},
		{"#abc", cframe.Color{R: 170, G: 187, B: 204}},
		{"  #ff0000  ", cframe.Color{R: 255, G: 0, B: 0}},
	}
	for _, tt := range tests {
		got, ok := ParseColor(tt.in)
		if !ok || got != tt.want {
			t.Errorf("ParseColor(%q) = %v, %v; want %v", tt.in, got, ok, tt.want)
		}
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, in := range []string{"", "notacolor", "#", "#zz", "#12345", "#1234567"} {
		if _, ok := ParseColor(in); ok {
			t.Errorf("ParseColor(%q) succeeded, want failure", in)
		}
	}
}

func TestColorsFromStrings_Fallback(t *testing.T) {
	colors := ColorsFromStrings("invalid", "alsobad")
	if (colors.Foreground != cframe.Color{R: 255, G: 255, B: 255}) {
		t.Errorf("foreground = %v, want white", colors.Foreground)
	}
	if (colors.Background != cframe.Color{}) {
		t.Errorf("background = %v, want black", colors.Background)
	}
}

func TestDecode(t *testing.T) {
	data := []byte("version: \"1.2\"\nframes: 120\nfps: 30\ncolor: cyan\nbackground_color: \"#1a1a2e\"\n")

	d, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if d.Frames != 120 || d.FrameRate() != 30 {
		t.Errorf("frames/fps = %d/%d, want 120/30", d.Frames, d.FrameRate())
	}

	colors := d.FrameColors()
	if (colors.Foreground != cframe.Color{R: 0, G: 255, B: 255}) {
		t.Errorf("foreground = %v, want cyan", colors.Foreground)
	}
	if (colors.Background != cframe.Color{R: 26, G: 26, B: 46}) {
		t.Errorf("background = %v, want #1a1a2e", colors.Background)
	}
}

func TestDetails_Defaults(t *testing.T) {
	d := &Details{}
	if d.FrameRate() != DefaultFPS {
		t.Errorf("FrameRate() = %d, want %d", d.FrameRate(), DefaultFPS)
	}
	colors := d.FrameColors()
	if (colors.Foreground != cframe.Color{R: 255, G: 255, B: 255}) || (colors.Background != cframe.Color{}) {
		t.Errorf("default colors = %+v, want white on black", colors)
	}
}
