package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type tracedState struct {
	name  string
	trace *[]string
	ticks float64
}

func (s *tracedState) Enter() { *s.trace = append(*s.trace, "enter "+s.name) }
func (s *tracedState) Exit() { *s.trace = append(*s.trace, "exit "+s.name) }
func (s *tracedState) Update(deltaTime float64) { s.ticks += deltaTime }
func (s *tracedState) Draw(screen *ebiten.Image) {}

func TestStateMachineTransitions(t *testing.T) {
	var trace []string
	a := &tracedState{name: "a", trace: &trace}
	b := &tracedState{name: "b", trace: &trace}

	sm := NewStateMachine()
	sm.Update(1)
	sm.SetState(a)
	sm.Update(0.5)
	sm.SetState(b)
	sm.Update(0.25)
	sm.SetState(nil)

	want := []string{"enter a", "exit a", "enter b", "exit b"}
	if len(trace) != len(want) {
		t.Fatalf("trace = %v, want %v", trace, want)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Fatalf("trace = %v, want %v", trace, want)
		}
	}
	if a.ticks != 0.5 || b.ticks != 0.25 {
		t.Errorf("ticks a=%v b=%v", a.ticks, b.ticks)
	}
}

func TestPauseResumesWithoutReentering(t *testing.T) {
	var trace []string
	game := &tracedState{name: "game", trace: &trace}

	sm := NewStateMachine()
	sm.SetState(game)
	pause := NewPauseState(sm, game)
	sm.SetState(pause)

	sm.Update(1)
	if game.ticks != 0 {
		t.Error("paused state kept updating")
	}

	pause.Resume()
	if sm.Current() != game {
		t.Fatal("resume did not restore the game state")
	}
	sm.Update(1)
	if game.ticks != 1 {
		t.Errorf("ticks = %v after resume", game.ticks)
	}
	if len(trace) != 2 || trace[1] != "exit game" {
		t.Errorf("trace = %v, want a single enter and exit", trace)
	}
}
