package terminal_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/pong"
	"github.com/go-theft-auto/pong/backend/terminal"
)

func keyEvent(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestInputHoldAndRelease(t *testing.T) {
	input := pong.NewInputState()
	a := terminal.NewInputAdapter(input, 3)

	if a.HandleEvent(keyEvent(tcell.KeyUp, 0)) {
		t.Fatal("arrow key must not quit")
	}
	if !input.IsKeyDown(pong.KeyUp) {
		t.Fatal("up should be held after a press")
	}

	a.Tick()
	a.Tick()
	if !input.IsKeyDown(pong.KeyUp) {
		t.Fatal("up released too early")
	}
	a.Tick()
	if input.IsKeyDown(pong.KeyUp) {
		t.Fatal("up should be released once repeats stop")
	}
}

func TestInputRepeatExtendsHold(t *testing.T) {
	input := pong.NewInputState()
	a := terminal.NewInputAdapter(input, 2)

	a.HandleEvent(keyEvent(tcell.KeyDown, 0))
	for i := 0; i < 5; i++ {
		a.Tick()
		a.HandleEvent(keyEvent(tcell.KeyDown, 0))
	}
	if !input.IsKeyDown(pong.KeyDown) {
		t.Fatal("repeated presses should keep the key held")
	}
	if got := input.Velocity(); got != -pong.DefaultPaddleStep {
		t.Errorf("velocity = %v", got)
	}
}

func TestInputOppositeKeyReleases(t *testing.T) {
	input := pong.NewInputState()
	a := terminal.NewInputAdapter(input, 10)

	a.HandleEvent(keyEvent(tcell.KeyUp, 0))
	a.HandleEvent(keyEvent(tcell.KeyDown, 0))
	if input.IsKeyDown(pong.KeyUp) {
		t.Error("pressing down should release up")
	}
	if !input.IsKeyDown(pong.KeyDown) {
		t.Error("down should be held")
	}
}

func TestInputQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		quit bool
	}{
		{"escape", keyEvent(tcell.KeyEscape, 0), true},
		{"ctrl-c", keyEvent(tcell.KeyCtrlC, 0), true},
		{"q", keyEvent(tcell.KeyRune, 'q'), true},
		{"other rune", keyEvent(tcell.KeyRune, 'x'), false},
		{"resize", tcell.NewEventResize(80, 24), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := terminal.NewInputAdapter(pong.NewInputState(), 0)
			if got := a.HandleEvent(tt.ev); got != tt.quit {
				t.Errorf("HandleEvent = %v, want %v", got, tt.quit)
			}
		})
	}
}
