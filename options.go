package pong

import "log/slog"

// Default tuning values.
const (
	DefaultInitialSpeed   = 0.005
	DefaultSpeedIncrement = 0.0001
	DefaultVariance       = 0.15
	DefaultServeDelay     = 100
	DefaultAIStep         = 0.01
)

// ClampMode selects how a paddle pushed past the screen edge is brought back.
type ClampMode int

const (
	// ClampDirect shifts the paddle so its edge lies on the boundary.
	ClampDirect ClampMode = iota
	// ClampStepwise shifts the paddle back by repeated 0.01 steps until it
	// is in bounds, so it may stop short of the boundary.
	ClampStepwise
)

func (m ClampMode) String() string {
	switch m {
	case ClampDirect:
		return "direct"
	case ClampStepwise:
		return "stepwise"
	default:
		return "unknown"
	}
}

// Config holds the tuning of a Simulation and the presentation of a Game.
type Config struct {
	InitialSpeed   float64
	SpeedIncrement float64 // added to the ball speed on every paddle hit
	Variance       float64 // width of the jitter window applied on bounces
	ServeDelay     uint32  // ticks the ball rests after a reset
	AIStep         float32 // AI paddle movement per tick
	ClampMode      ClampMode

	Rand       Source
	ServeAngle func(Source) float64

	Palette Palette
	Logger  *slog.Logger
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		InitialSpeed:   DefaultInitialSpeed,
		SpeedIncrement: DefaultSpeedIncrement,
		Variance:       DefaultVariance,
		ServeDelay:     DefaultServeDelay,
		AIStep:         DefaultAIStep,
		ClampMode:      ClampDirect,
		ServeAngle:     ServeAngle,
		Palette:        DefaultPalette(),
		Logger:         gameLogger,
	}
}

// Option configures a Simulation or Game.
type Option func(*Config)

// WithInitialSpeed sets the ball speed at the start of every rally.
func WithInitialSpeed(speed float64) Option {
	return func(c *Config) { c.InitialSpeed = speed }
}

// WithSpeedIncrement sets how much each paddle hit speeds up the ball.
func WithSpeedIncrement(inc float64) Option {
	return func(c *Config) { c.SpeedIncrement = inc }
}

// WithVariance sets the jitter window applied to bounce angles.
// Zero disables jitter.
func WithVariance(v float64) Option {
	return func(c *Config) { c.Variance = v }
}

// WithServeDelay sets how many ticks the ball waits after a reset.
func WithServeDelay(ticks uint32) Option {
	return func(c *Config) { c.ServeDelay = ticks }
}

// WithAIStep sets how fast the AI paddle follows the ball.
func WithAIStep(step float32) Option {
	return func(c *Config) { c.AIStep = step }
}

// WithClampMode selects the paddle screen clamp.
func WithClampMode(m ClampMode) Option {
	return func(c *Config) { c.ClampMode = m }
}

// WithRandSource sets the random source used for jitter and serve angles.
func WithRandSource(src Source) Option {
	return func(c *Config) { c.Rand = src }
}

// WithServeAngle replaces the serve angle picked after every reset.
func WithServeAngle(fn func(Source) float64) Option {
	return func(c *Config) { c.ServeAngle = fn }
}

// WithPalette sets the mesh colors.
func WithPalette(p Palette) Option {
	return func(c *Config) { c.Palette = p }
}

// WithLogger sets the logger used by Game.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

func buildConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Rand == nil {
		cfg.Rand = NewTimeSource()
	}
	if cfg.ServeAngle == nil {
		cfg.ServeAngle = ServeAngle
	}
	if cfg.Logger == nil {
		cfg.Logger = gameLogger
	}
	return cfg
}
