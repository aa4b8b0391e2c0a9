package render

import (
	"image/color"
	"testing"
)

func TestBrighten(t *testing.T) {
	c := color.RGBA{R: 100, G: 0, B: 255, A: 200}
	tests := []struct {
		name   string
		amount float64
		want   color.RGBA
	}{
		{"none", 0, c},
		{"full", 1, color.RGBA{255, 255, 255, 200}},
		{"clamped", 3, color.RGBA{255, 255, 255, 200}},
		{"half", 0.5, color.RGBA{177, 127, 255, 200}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Brighten(c, tt.amount); got != tt.want {
				t.Errorf("Brighten(%v) = %v, want %v", tt.amount, got, tt.want)
			}
		})
	}
}

func TestWithAlpha(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 200}
	if got := WithAlpha(c, 0.5); got != (color.RGBA{100, 50, 25, 100}) {
		t.Errorf("WithAlpha = %v", got)
	}
	if got := WithAlpha(c, -1); got != (color.RGBA{}) {
		t.Errorf("WithAlpha(-1) = %v", got)
	}
}

func TestDarkenColor(t *testing.T) {
	if got := DarkenColor(color.RGBA{200, 100, 50, 255}); got != (color.RGBA{100, 50, 25, 255}) {
		t.Errorf("DarkenColor = %v", got)
	}
}
