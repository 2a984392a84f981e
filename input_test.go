package pong_test

import (
	"testing"

	"github.com/go-theft-auto/pong"
)

func TestInputVelocity(t *testing.T) {
	tests := []struct {
		name string
		up   bool
		down bool
		want float32
	}{
		{"idle", false, false, 0},
		{"up", true, false, pong.DefaultPaddleStep},
		{"down", false, true, -pong.DefaultPaddleStep},
		{"both", true, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := pong.NewInputState()
			input.SetKey(pong.KeyUp, tt.up)
			input.SetKey(pong.KeyDown, tt.down)
			if got := input.Velocity(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInputRepeatedPress(t *testing.T) {
	input := pong.NewInputState()

	// Key repeat delivers several presses for one release.
	input.SetKey(pong.KeyUp, true)
	input.SetKey(pong.KeyUp, true)
	input.SetKey(pong.KeyUp, true)
	if got := input.Velocity(); got != pong.DefaultPaddleStep {
		t.Errorf("held key: got %v", got)
	}

	input.SetKey(pong.KeyUp, false)
	if got := input.Velocity(); got != 0 {
		t.Errorf("released key: got %v, want 0", got)
	}
}

func TestInputIgnoresUnknownKeys(t *testing.T) {
	input := pong.NewInputState()
	input.SetKey(pong.KeyNone, true)
	input.SetKey(pong.KeyCount, true)
	if input.Velocity() != 0 {
		t.Error("unknown keys must not move the paddle")
	}
	if input.IsKeyDown(pong.KeyCount) {
		t.Error("IsKeyDown out of range should be false")
	}
}

func TestInputReset(t *testing.T) {
	input := pong.NewInputState()
	input.SetStep(0.05)
	input.SetKey(pong.KeyDown, true)
	if got := input.Velocity(); got != -0.05 {
		t.Errorf("custom step: got %v", got)
	}
	input.Reset()
	if input.IsKeyDown(pong.KeyDown) || input.Velocity() != 0 {
		t.Error("Reset should release every key")
	}
}
