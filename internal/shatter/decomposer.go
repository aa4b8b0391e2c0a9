// internal/shatter/decomposer.go
package shatter

import (
	"image"
	"image/color"

	"github.com/sirupsen/logrus"

	"electro-shoot/internal/assets"
	"electro-shoot/internal/component"
	"electro-shoot/internal/config"
	"electro-shoot/pkg/geom"
	"electro-shoot/pkg/logger"
	"electro-shoot/pkg/utils"
)

// Decomposer breaks a destroyed enemy's sprite into textured fragments.
type Decomposer struct {
	uploader assets.Uploader
	rng      Rand
}

func NewDecomposer(uploader assets.Uploader, rng Rand) *Decomposer {
	return &Decomposer{uploader: uploader, rng: rng}
}

// Shatter returns one fragment particle per pixel group of the enemy's
// sprite. hit is the world point of the killing blow and hitVelocity the
// velocity of whatever delivered it.
func (d *Decomposer) Shatter(enemy *component.Enemy, hit, hitVelocity geom.Vec2) []component.Particle {
	sprite := enemy.Kind.Sprite
	if sprite == nil {
		return nil
	}

	seg := Segment(MaskOf(sprite.Pixels), d.rng)
	atlases := Pack(seg.Boxes)

	textures := make([]assets.Texture, len(seg.Boxes))
	for _, members := range atlases {
		tex := d.uploader.Upload(buildAtlas(sprite.Pixels, &seg, members), assets.FilterNearest)
		for _, i := range members {
			textures[i] = tex
		}
	}

	particles := make([]component.Particle, 0, len(seg.Boxes))
	for i, box := range seg.Boxes {
		particles = append(particles, d.fragment(enemy, sprite, box, textures[i], hit, hitVelocity))
	}

	logger.Log.WithFields(logrus.Fields{
		"kind":      enemy.Kind.ID,
		"fragments": len(particles),
		"atlases":   len(atlases),
	}).Debug("Enemy shattered")

	return particles
}

// buildAtlas copies the pixels of the member groups into a new transparent
// image with the source's size.
func buildAtlas(src *image.RGBA, seg *Segmentation, members []int) *image.RGBA {
	b := src.Bounds()
	atlas := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for _, i := range members {
		group := seg.Group(i)
		box := seg.Boxes[i]
		for y := box.Min.Y; y <= box.Max.Y; y++ {
			for x := box.Min.X; x <= box.Max.X; x++ {
				if seg.Label(x, y) == group {
					atlas.SetRGBA(x, y, src.RGBAAt(b.Min.X+x, b.Min.Y+y))
				}
			}
		}
	}
	return atlas
}

func (d *Decomposer) fragment(enemy *component.Enemy, sprite *assets.Sprite, box BoundingBox,
	tex assets.Texture, hit, hitVelocity geom.Vec2) component.Particle {
	cx, cy := box.Center()
	local := geom.V(
		(cx-float64(sprite.Width())/2)*sprite.Scale,
		(cy-float64(sprite.Height())/2)*sprite.Scale,
	)
	position := enemy.Transform.TransformPoint(local)

	spin := enemy.PointVelocity(position).Sub(enemy.LinearVelocity)

	away := position.Sub(hit)
	strength := utils.Clamp(1/away.LengthSquared(), config.ImpulseMin, config.ImpulseMax)
	push := away.Normalize().Scale(strength).Add(hitVelocity.Scale(config.HitVelocityShare))
	jitter := config.FragmentJitterMin + d.rng.Float64()*(config.FragmentJitterMax-config.FragmentJitterMin)

	return component.Particle{
		Body: component.Body{
			Transform:       geom.Isometry{Translation: position, Rotation: enemy.Transform.Rotation},
			LinearVelocity:  spin.Add(push.Scale(jitter)),
			AngularVelocity: enemy.AngularVelocity,
		},
		Texture:  tex,
		Source:   box.Rect(),
		Scale:    sprite.Scale,
		Color:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Lifetime: config.FragmentLifetime,
	}
}
