// internal/system/render.go
package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"electro-shoot/internal/assets"
	"electro-shoot/internal/component"
	"electro-shoot/internal/config"
	"electro-shoot/internal/entity"
	"electro-shoot/internal/shape"
	"electro-shoot/internal/types"
	"electro-shoot/pkg/geom"
	"electro-shoot/pkg/render"
)

// HUD is the status line drawn over the playfield.
type HUD struct {
	Weapon string
	Kills  int
}

// RenderSystem draws the world, the turret and the HUD with ebiten.
type RenderSystem struct {
	world        *entity.World
	camera       *Camera
	textures     *assets.Manager
	fontFace     font.Face
	ShowHitboxes bool
}

func NewRenderSystem(world *entity.World, camera *Camera, textures *assets.Manager) *RenderSystem {
	return &RenderSystem{
		world:    world,
		camera:   camera,
		textures: textures,
		fontFace: basicfont.Face7x13,
	}
}

func (s *RenderSystem) Draw(screen *ebiten.Image, turret *component.Turret, hud HUD) {
	screen.Fill(config.BackgroundColor)

	s.world.Enemies.Each(func(_ types.EntityID, e *component.Enemy) {
		s.drawEnemy(screen, e)
	})
	s.world.Particles.Each(func(_ types.EntityID, p *component.Particle) {
		s.drawParticle(screen, p)
	})
	s.world.Projectiles.Each(func(_ types.EntityID, p *component.Projectile) {
		s.drawProjectile(screen, p)
	})
	s.drawTurret(screen, turret)

	if s.ShowHitboxes {
		s.world.Enemies.Each(func(_ types.EntityID, e *component.Enemy) {
			s.drawHitbox(screen, &e.Object)
		})
		s.world.Projectiles.Each(func(_ types.EntityID, p *component.Projectile) {
			s.drawHitbox(screen, &p.Object)
			widened := p.WidenedHitbox()
			s.drawHitbox(screen, &widened)
		})
	}

	s.drawHUD(screen, hud)
}

func (s *RenderSystem) screenPos(p geom.Vec2) (float32, float32) {
	x, y := s.camera.WorldToScreen(p)
	return float32(x), float32(y)
}

// place centers an image of w×h pixels on pose, scaled to world units.
func (s *RenderSystem) place(op *ebiten.DrawImageOptions, w, h int, scale float64, pose geom.Isometry) {
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(scale*s.camera.Zoom, scale*s.camera.Zoom)
	op.GeoM.Rotate(pose.Rotation.Angle())
	op.GeoM.Translate(s.camera.WorldToScreen(pose.Translation))
}

func (s *RenderSystem) drawEnemy(screen *ebiten.Image, e *component.Enemy) {
	sprite := e.Kind.Sprite
	tex, ok := s.spriteTexture(sprite)
	if !ok {
		s.drawHitbox(screen, &e.Object)
		return
	}

	op := &ebiten.DrawImageOptions{Filter: tex.Filter}
	s.place(op, sprite.Width(), sprite.Height(), sprite.Scale, e.Transform)
	screen.DrawImage(tex.Image, op)

	if b := e.Brightness(); b > 0 {
		op.Blend = ebiten.BlendLighter
		op.ColorScale.ScaleAlpha(float32(b))
		screen.DrawImage(tex.Image, op)
	}

	if f := e.HealthFraction(); f < 1 {
		w, h := sprite.WorldSize()
		x, y := s.screenPos(e.Position().Add(geom.V(-w/2, h/2+0.2)))
		barW := float32(w * s.camera.Zoom)
		barH := float32(0.15 * s.camera.Zoom)
		vector.DrawFilledRect(screen, x, y, barW, barH, render.DarkenColor(config.TurretColor), false)
		vector.DrawFilledRect(screen, x, y, barW*float32(f), barH, config.TurretColor, false)
	}
}

func (s *RenderSystem) spriteTexture(sprite *assets.Sprite) (*assets.EbitenTexture, bool) {
	if sprite == nil {
		return nil, false
	}
	tex, ok := s.textures.Texture(sprite).(*assets.EbitenTexture)
	return tex, ok
}

func (s *RenderSystem) drawParticle(screen *ebiten.Image, p *component.Particle) {
	if p.Texture == nil {
		x, y := s.screenPos(p.Position())
		c := render.WithAlpha(p.Color, p.Alpha(p.Lifetime))
		vector.DrawFilledCircle(screen, x, y, float32(p.Size*s.camera.Zoom), c, true)
		return
	}

	tex, ok := p.Texture.(*assets.EbitenTexture)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{Filter: tex.Filter}
	s.place(op, p.Source.Dx(), p.Source.Dy(), p.Scale, p.Transform)
	op.ColorScale.ScaleAlpha(float32(p.Alpha(config.FragmentFadeSeconds)))
	screen.DrawImage(tex.SubImage(p.Source), op)
}

func (s *RenderSystem) drawProjectile(screen *ebiten.Image, p *component.Projectile) {
	x0, y0 := s.screenPos(p.Tail())
	x1, y1 := s.screenPos(p.Tip())
	c := config.ProjectileColor
	if p.Colliding.Len() > 0 {
		c = render.Brighten(c, 0.6)
	}
	vector.StrokeLine(screen, x0, y0, x1, y1, float32(p.Kind.Size[1]*s.camera.Zoom), c, true)
}

func (s *RenderSystem) drawTurret(screen *ebiten.Image, t *component.Turret) {
	barrel := config.BarrelLength - t.RecoilOffset()
	end := t.Transform.TransformPoint(geom.V(barrel, 0))
	x0, y0 := s.screenPos(t.Transform.Translation)
	x1, y1 := s.screenPos(end)

	barrelColor := config.BarrelColor
	if t.ShowRechargeFlash() {
		barrelColor = render.Brighten(barrelColor, 0.7)
	}
	vector.StrokeLine(screen, x0, y0, x1, y1, float32(config.BarrelWidth*s.camera.Zoom), barrelColor, true)
	vector.DrawFilledCircle(screen, x0, y0, float32(config.TurretRadius*s.camera.Zoom), config.TurretColor, true)

	if !t.CanShoot() {
		r := float32(config.TurretRadius * s.camera.Zoom * t.RechargeProgress())
		vector.DrawFilledCircle(screen, x0, y0, r, render.DarkenColor(config.TurretColor), true)
	}
}

func (s *RenderSystem) drawHitbox(screen *ebiten.Image, o *component.Object) {
	x, y := s.screenPos(o.Position())
	zoom := float32(s.camera.Zoom)

	switch o.Shape.Kind {
	case shape.KindPoint:
		vector.DrawFilledCircle(screen, x, y, 2, config.HitboxColor, false)
	case shape.KindCircle:
		vector.StrokeCircle(screen, x, y, float32(o.Shape.Radius)*zoom, 1, config.HitboxColor, true)
	case shape.KindRectangle:
		h := o.Shape.HalfSize
		corners := []geom.Vec2{
			geom.V(-h.X, -h.Y), geom.V(h.X, -h.Y), geom.V(h.X, h.Y), geom.V(-h.X, h.Y),
		}
		for i, c := range corners {
			next := corners[(i+1)%len(corners)]
			ax, ay := s.screenPos(o.Transform.TransformPoint(c))
			bx, by := s.screenPos(o.Transform.TransformPoint(next))
			vector.StrokeLine(screen, ax, ay, bx, by, 1, config.HitboxColor, true)
		}
	}
}

func (s *RenderSystem) drawHUD(screen *ebiten.Image, hud HUD) {
	status := fmt.Sprintf("WEAPON: %s   KILLS: %d   ENEMIES: %d   PARTICLES: %d   FPS: %.0f",
		hud.Weapon, hud.Kills, s.world.Enemies.Len(), s.world.Particles.Len(), ebiten.ActualFPS())
	text.Draw(screen, status, s.fontFace, 10, 20, config.TextColor)
}
