package sizing

import (
	"math"
	"testing"
)

func TestCalculateFontSize(t *testing.T) {
	s := Default()

	// 80x24 in 800x600: width constrains, (800-20)/(80*0.6) = 16.25.
	size := s.CalculateFontSize(80, 24, 800.0, 600.0)
	if size < 15.0 || size > 17.0 {
		t.Errorf("CalculateFontSize(80, 24, 800, 600) = %v, want ~16.25", size)
	}
}

func TestCalculateFontSize_Degenerate(t *testing.T) {
	s := Default()
	tests := []struct {
		name       string
		cols, rows int
		w, h       float64
	}{
		{"zero cols", 0, 24, 800, 600},
		{"zero rows", 80, 0, 800, 600},
		{"container smaller than padding", 80, 24, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.CalculateFontSize(tt.cols, tt.rows, tt.w, tt.h); got != s.MinFontSize {
				t.Errorf("CalculateFontSize() = %v, want min %v", got, s.MinFontSize)
			}
		})
	}
}

func TestCalculateFontSize_Clamped(t *testing.T) {
	s := Default()
	if got := s.CalculateFontSize(2, 1, 10000.0, 10000.0); got != s.MaxFontSize {
		t.Errorf("huge container: got %v, want max %v", got, s.MaxFontSize)
	}
	if got := s.CalculateFontSize(1000, 1000, 30.0, 30.0); got != s.MinFontSize {
		t.Errorf("tiny container: got %v, want min %v", got, s.MinFontSize)
	}
}

func TestCanvasDimensions(t *testing.T) {
	s := Default()
	w, h := s.CanvasDimensions(80, 24, 10.0)
	if w != 480.0 { // 80 * 10 * 0.6
		t.Errorf("width = %v, want 480", w)
	}
	if math.Abs(h-266.4) > 0.001 { // 24 * 10 * 1.11
		t.Errorf("height = %v, want 266.4", h)
	}
}
