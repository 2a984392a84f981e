package terminal

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/pong"
)

// FrameInterval paces the terminal loop at roughly 60 frames per second.
const FrameInterval = 16 * time.Millisecond

// RunOption configures Run.
type RunOption func(*runConfig)

type runConfig struct {
	holdTicks int
	interval  time.Duration
	gameOpts  []pong.Option
	logger    *slog.Logger
}

// WithHoldTicks sets how many frames a key stays held without repeats.
func WithHoldTicks(n int) RunOption {
	return func(c *runConfig) { c.holdTicks = n }
}

// WithFrameInterval changes the frame pacing.
func WithFrameInterval(d time.Duration) RunOption {
	return func(c *runConfig) { c.interval = d }
}

// WithGameOptions passes options through to pong.New.
func WithGameOptions(opts ...pong.Option) RunOption {
	return func(c *runConfig) { c.gameOpts = append(c.gameOpts, opts...) }
}

// WithLogger sends the loop's and the game's logs to l. The screen owns the
// terminal, so anything written to stderr while Run is active is lost.
func WithLogger(l *slog.Logger) RunOption {
	return func(c *runConfig) {
		c.logger = l
		c.gameOpts = append(c.gameOpts, pong.WithLogger(l))
	}
}

// Run plays the game on screen until the user quits or ctx is done.
// The caller owns screen and must call Fini on it, which also stops the
// event reader started here.
func Run(ctx context.Context, screen tcell.Screen, opts ...RunOption) error {
	cfg := runConfig{
		holdTicks: DefaultHoldTicks,
		interval:  FrameInterval,
		logger:    pong.Logger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	renderer := NewRenderer(screen)
	adapter := NewInputAdapter(pong.NewInputState(), cfg.holdTicks)
	game := pong.New(renderer, adapter.Input(), cfg.gameOpts...)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(cfg.interval)
	defer ticker.Stop()

	logger := cfg.logger
	logger.Info("terminal game started", "interval", cfg.interval)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			if adapter.HandleEvent(ev) {
				logger.Info("terminal game stopped", "frames", game.Frames(), "rallies", game.Rallies())
				return nil
			}

		case <-ticker.C:
			adapter.Tick()
			if _, err := game.Frame(); err != nil {
				return err
			}
		}
	}
}
