// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"electro-shoot/internal/config"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the previous state and draws it dimmed.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.Resume()
	}
}

// Resume hands control back to the paused state without re-entering it.
func (s *PauseState) Resume() {
	s.stateMachine.current = s.previousState
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), config.PausedColor, false)

	pauseText := "PAUSED"
	bounds := text.BoundString(basicfont.Face7x13, pauseText)
	text.Draw(screen, pauseText, basicfont.Face7x13, (w-bounds.Dx())/2, h/2, color.White)
}

func (s *PauseState) Exit() {}
