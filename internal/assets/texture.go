// internal/assets/texture.go
package assets

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Filter selects how a texture is sampled when scaled.
type Filter int

const (
	FilterNearest Filter = iota
	FilterLinear
)

// Texture is an image handle owned by the rendering backend.
type Texture interface {
	Bounds() image.Rectangle
}

// Uploader turns raw pixels into a Texture.
type Uploader interface {
	Upload(pixels *image.RGBA, filter Filter) Texture
}

// EbitenTexture wraps a GPU-side ebiten image.
type EbitenTexture struct {
	Image  *ebiten.Image
	Filter ebiten.Filter
}

func (t *EbitenTexture) Bounds() image.Rectangle { return t.Image.Bounds() }

// SubImage returns the part of the texture inside r.
func (t *EbitenTexture) SubImage(r image.Rectangle) *ebiten.Image {
	return t.Image.SubImage(r).(*ebiten.Image)
}

// Release frees the GPU image.
func (t *EbitenTexture) Release() {
	t.Image.Deallocate()
}

// EbitenUploader uploads through ebiten.NewImageFromImage.
type EbitenUploader struct{}

func (EbitenUploader) Upload(pixels *image.RGBA, filter Filter) Texture {
	f := ebiten.FilterNearest
	if filter == FilterLinear {
		f = ebiten.FilterLinear
	}
	return &EbitenTexture{Image: ebiten.NewImageFromImage(pixels), Filter: f}
}
