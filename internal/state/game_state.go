// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"electro-shoot/internal/app"
	"electro-shoot/internal/assets"
	"electro-shoot/internal/config"
	"electro-shoot/internal/defs"
	"electro-shoot/internal/system"
	"electro-shoot/pkg/logger"
)

var weaponKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// GameState runs the simulation at a fixed step and feeds it ebiten input.
type GameState struct {
	sm          *StateMachine
	game        *app.Game
	camera      *system.Camera
	textures    *assets.Manager
	renderer    *system.RenderSystem
	accumulator float64
}

func NewGameState(sm *StateMachine, registry *defs.Registry, seed int64) *GameState {
	uploader := assets.EbitenUploader{}
	gameLogic := app.NewGame(registry, uploader, seed)
	camera := system.NewCamera(config.ScreenWidth, config.ScreenHeight, config.ViewHeight)
	textures := assets.NewManager(uploader)

	gameLogic.SetPlayfield(camera.Bounds())

	return &GameState{
		sm:       sm,
		game:     gameLogic,
		camera:   camera,
		textures: textures,
		renderer: system.NewRenderSystem(gameLogic.World, camera, textures),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.renderer.ShowHitboxes = !g.renderer.ShowHitboxes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.game.Reset()
	}
	for i, key := range weaponKeys {
		if inpututil.IsKeyJustPressed(key) {
			if err := g.game.SelectWeapon(i); err != nil {
				logger.Log.WithError(err).Debug("Weapon not switched")
			}
		}
	}

	pressed := ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	aim := g.camera.ScreenToWorld(ebiten.CursorPosition())

	g.accumulator += deltaTime
	for g.accumulator >= config.TickRate {
		g.accumulator -= config.TickRate
		g.game.TickInput(pressed, config.TickRate)
		g.game.Tick(aim, config.TickRate)
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, &g.game.Turret, system.HUD{
		Weapon: g.game.Weapon().Name,
		Kills:  g.game.Kills,
	})
}

func (g *GameState) Exit() {}

// Cleanup releases the sprite textures.
func (g *GameState) Cleanup() {
	g.textures.Cleanup()
}
