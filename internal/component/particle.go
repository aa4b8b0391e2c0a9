// internal/component/particle.go
package component

import (
	"image"
	"image/color"

	"electro-shoot/internal/assets"
	"electro-shoot/pkg/utils"
)

// Particle is a short-lived visual. Fragments carry a texture region,
// trail particles only a colour.
type Particle struct {
	Body

	Texture assets.Texture
	Source  image.Rectangle // region of Texture, in pixels
	Scale   float64         // world units per texture pixel

	Color color.RGBA
	Size  float64

	Age      float64
	Lifetime float64
}

func (p *Particle) Tick(dt float64) {
	p.Age += dt
	p.Body.Tick(dt)
}

func (p *Particle) ShouldDelete() bool {
	return p.Age > p.Lifetime
}

// Alpha fades the particle out over the last fade seconds of its life.
func (p *Particle) Alpha(fade float64) float64 {
	if fade <= 0 {
		return 1
	}
	return utils.Clamp((p.Lifetime-p.Age)/fade, 0, 1)
}
