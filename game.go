package pong

import (
	"context"
	"log/slog"
)

// Renderer is the interface for drawing a frame.
type Renderer interface {
	Render(dl *DrawList) error
	Resize(width, height int)
}

// Game ties a Simulation to a Renderer: every Frame steps the simulation
// once and renders the result.
type Game struct {
	renderer Renderer
	sim      *Simulation
	palette  Palette
	logger   *slog.Logger

	frames  uint64
	rallies uint64
}

// New creates a Game drawing through renderer and reading paddle input from
// input.
func New(renderer Renderer, input *InputState, opts ...Option) *Game {
	sim := NewSimulation(input, opts...)
	cfg := sim.Config()
	return &Game{
		renderer: renderer,
		sim:      sim,
		palette:  cfg.Palette,
		logger:   cfg.Logger,
	}
}

// Simulation returns the underlying simulation.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// Input returns the InputState driving the human paddle.
func (g *Game) Input() *InputState {
	return g.sim.Input()
}

// Frames returns the number of frames rendered so far.
func (g *Game) Frames() uint64 {
	return g.frames
}

// Rallies returns the number of rallies that ended with the ball out.
func (g *Game) Rallies() uint64 {
	return g.rallies
}

// Update advances the simulation by one tick without rendering.
func (g *Game) Update() Event {
	ev := g.sim.Step()
	g.logEvent(ev)
	return ev
}

// Draw renders the current geometry.
func (g *Game) Draw() error {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	BuildDrawList(dl, &g.sim.Positions, g.palette)
	if err := g.renderer.Render(dl); err != nil {
		return err
	}
	g.frames++
	return nil
}

// Frame runs one tick and renders it.
func (g *Game) Frame() (Event, error) {
	ev := g.Update()
	return ev, g.Draw()
}

// Resize forwards a framebuffer size change to the renderer.
func (g *Game) Resize(width, height int) {
	g.renderer.Resize(width, height)
}

func (g *Game) logEvent(ev Event) {
	if ev == EventNone {
		return
	}
	if ev.Has(EventOut) {
		g.rallies++
	}
	if !g.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	s := g.sim
	center := s.BallCenter()
	g.logger.Debug("tick",
		"event", ev.String(),
		"timer", s.Timer,
		"angle", s.Angle,
		"speed", s.Speed,
		"ball_x", center.X,
		"ball_y", center.Y,
	)
}
