// internal/shatter/mask.go
package shatter

import "image"

// Mask is a width×height grid of opacity flags in raster order.
type Mask struct {
	Width, Height int
	bits          []bool
}

func NewMask(width, height int) *Mask {
	return &Mask{Width: width, Height: height, bits: make([]bool, width*height)}
}

// MaskOf marks every pixel of img with non-zero alpha.
func MaskOf(img image.Image) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			m.bits[y*m.Width+x] = a > 0
		}
	}
	return m
}

func (m *Mask) Opaque(x, y int) bool { return m.bits[y*m.Width+x] }

func (m *Mask) Set(x, y int, opaque bool) { m.bits[y*m.Width+x] = opaque }

// Count is the number of opaque pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}
