// cmd/game/main.go
package main

import (
	"os"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"electro-shoot/internal/config"
	"electro-shoot/internal/defs"
	"electro-shoot/internal/state"
	"electro-shoot/pkg/logger"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func seedFromEnv() int64 {
	raw := os.Getenv("ELECTRO_SEED")
	if raw == "" {
		return config.Seed
	}
	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.Log.WithError(err).Warnf("Ignoring ELECTRO_SEED=%q", raw)
		return config.Seed
	}
	return seed
}

func main() {
	logger.Init()

	registry, err := defs.LoadDefault()
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load catalog")
	}

	seed := seedFromEnv()
	logger.Log.WithField("seed", seed).Info("Starting")

	sm := state.NewStateMachine()
	gameState := state.NewGameState(sm, registry, seed)
	sm.SetState(gameState)

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Electro Shoot")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(app); err != nil {
		logger.Log.WithError(err).Fatal("Game loop failed")
	}
	gameState.Cleanup()
}
