package pong

import (
	"math"
	"math/rand/v2"
	"time"
)

// RandMax is the largest value a Source returns, matching the classic
// 15-bit rand() the angle formulas were tuned against.
const RandMax = 32767

// Source produces random integers. *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// NewTimeSource returns a Source seeded from the current time.
func NewTimeSource() Source {
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, seed>>32|1))
}

// randInt draws an integer in [0, RandMax].
func randInt(src Source) int {
	return src.IntN(RandMax + 1)
}

// Jitter returns a perturbation in [-variance/2, variance/2].
func Jitter(src Source, variance float64) float64 {
	return float64(randInt(src))/(RandMax/variance) - variance/2
}

// ServeAngle picks the launch angle after a reset. The result lies in
// [π/2, 3π/2], so the ball always starts toward the human paddle.
func ServeAngle(src Source) float64 {
	return ((float64(randInt(src)) + 16383.5) * math.Pi) / RandMax
}

// OpeningAngle picks the launch angle when a Simulation is created. Angles
// outside [3π/4, 5π/4] fall back to 3.0 radians. The window is the image of
// [0, RandMax], so the fallback is decided on the drawn value, which keeps
// rounding at the endpoints from triggering it.
func OpeningAngle(src Source) float64 {
	r := randInt(src)
	if r < 0 || r > RandMax {
		return 3.0
	}
	return math.Pi * (2*float64(r) + 98301) / 131068
}
