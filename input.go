package pong

// Key represents one of the logical keys the game reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyCount
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	default:
		return "none"
	}
}

// DefaultPaddleStep is the paddle velocity contributed by one held key.
const DefaultPaddleStep float32 = 0.01

// InputState holds the held keys driving the human paddle.
//
// Backends write it from their event callbacks and Simulation reads it once
// per tick. Both happen on the game loop goroutine, so it is not locked.
type InputState struct {
	keyDown [KeyCount]bool
	step    float32
}

// NewInputState creates an InputState with the default paddle step.
func NewInputState() *InputState {
	return &InputState{step: DefaultPaddleStep}
}

// SetStep changes the velocity contributed by one held key.
func (s *InputState) SetStep(step float32) {
	s.step = step
}

// SetKey records a press (down == true) or release of a key.
// Repeated presses of a held key are ignored.
func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	s.keyDown[key] = down
}

// IsKeyDown returns true while the key is held.
func (s *InputState) IsKeyDown(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// Velocity returns the vertical paddle velocity per tick: +step while up is
// held, -step while down is held, zero when both or neither are held.
func (s *InputState) Velocity() float32 {
	var v float32
	if s.keyDown[KeyUp] {
		v += s.step
	}
	if s.keyDown[KeyDown] {
		v -= s.step
	}
	return v
}

// Reset releases every key.
func (s *InputState) Reset() {
	s.keyDown = [KeyCount]bool{}
}
