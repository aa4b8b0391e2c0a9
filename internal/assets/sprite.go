// internal/assets/sprite.go
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed sprites/*.svg
var spriteFiles embed.FS

// Sprite is a decoded sprite kept on the CPU side. Pixels is never mutated
// after loading; Scale converts one pixel to world units.
type Sprite struct {
	Name   string
	Pixels *image.RGBA
	Scale  float64
}

func (s *Sprite) Width() int  { return s.Pixels.Bounds().Dx() }
func (s *Sprite) Height() int { return s.Pixels.Bounds().Dy() }

// Opaque reports whether the pixel at (x, y) has any coverage.
func (s *Sprite) Opaque(x, y int) bool {
	b := s.Pixels.Bounds()
	return s.Pixels.RGBAAt(b.Min.X+x, b.Min.Y+y).A > 0
}

// WorldSize is the sprite's extent in world units.
func (s *Sprite) WorldSize() (float64, float64) {
	return float64(s.Width()) * s.Scale, float64(s.Height()) * s.Scale
}

// LoadSprite rasterises the embedded sprites/<name>.svg at width×height pixels.
func LoadSprite(name string, width, height int, scale float64) (*Sprite, error) {
	data, err := spriteFiles.ReadFile("sprites/" + name + ".svg")
	if err != nil {
		return nil, fmt.Errorf("failed to read sprite %q: %w", name, err)
	}
	pixels, err := Rasterize(data, width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to rasterize sprite %q: %w", name, err)
	}
	return &Sprite{Name: name, Pixels: pixels, Scale: scale}, nil
}

// Rasterize renders SVG data into a new RGBA image.
func Rasterize(svgData []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid raster size %dx%d", width, height)
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}
