package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/pong"
)

// DefaultHoldTicks is how long a key stays held after its last press event.
// Terminals report presses and auto-repeats but never releases, so a key is
// released once the repeats stop.
const DefaultHoldTicks = 30

// InputAdapter turns tcell key events into a pong.InputState.
type InputAdapter struct {
	input     *pong.InputState
	holdTicks int
	held      [pong.KeyCount]int
}

// NewInputAdapter creates an adapter writing to input.
func NewInputAdapter(input *pong.InputState, holdTicks int) *InputAdapter {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &InputAdapter{input: input, holdTicks: holdTicks}
}

// Input returns the InputState written by the adapter.
func (a *InputAdapter) Input() *pong.InputState {
	return a.input
}

// HandleEvent applies ev and reports whether the user asked to quit.
func (a *InputAdapter) HandleEvent(ev tcell.Event) (quit bool) {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}

	switch kev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		a.press(pong.KeyUp, pong.KeyDown)
	case tcell.KeyDown:
		a.press(pong.KeyDown, pong.KeyUp)
	case tcell.KeyRune:
		if kev.Rune() == 'q' {
			return true
		}
	}
	return false
}

// press holds key and releases the opposite one, since a terminal only ever
// reports the most recent key.
func (a *InputAdapter) press(key, opposite pong.Key) {
	a.release(opposite)
	a.held[key] = a.holdTicks
	a.input.SetKey(key, true)
}

func (a *InputAdapter) release(key pong.Key) {
	a.held[key] = 0
	a.input.SetKey(key, false)
}

// Tick ages held keys and releases those whose repeats stopped.
// Call it once per frame before stepping the game.
func (a *InputAdapter) Tick() {
	for k := pong.KeyNone + 1; k < pong.KeyCount; k++ {
		if a.held[k] == 0 {
			continue
		}
		a.held[k]--
		if a.held[k] == 0 {
			a.input.SetKey(k, false)
		}
	}
}
