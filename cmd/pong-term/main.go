// Command pong-term plays the game in a terminal, one cell per pixel.
//
//	go run ./cmd/pong-term/
//
// Arrow keys move the left paddle. Esc, q or Ctrl-C quits.
//
// Flags:
//
//	-v               log every game event
//	-log             append logs to this file (discarded otherwise)
//	-hold            ticks a key stays down after its last repeat
//	-stepwise-clamp  push paddles back in 0.01 steps
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-theft-auto/pong"
	"github.com/go-theft-auto/pong/backend/terminal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	verbose := flag.Bool("v", false, "log every game event")
	logPath := flag.String("log", "", "append logs to this file")
	stepwise := flag.Bool("stepwise-clamp", false, "push paddles back in 0.01 steps")
	hold := flag.Int("hold", terminal.DefaultHoldTicks, "ticks a key stays down after its last repeat")
	flag.Parse()

	pong.SetVerbose(*verbose)

	logger := slog.New(slog.DiscardHandler)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		level := slog.LevelInfo
		if pong.Verbose() {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	}

	screen, err := terminal.OpenScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runOpts := []terminal.RunOption{
		terminal.WithHoldTicks(*hold),
		terminal.WithLogger(logger),
	}
	if *stepwise {
		runOpts = append(runOpts, terminal.WithGameOptions(pong.WithClampMode(pong.ClampStepwise)))
	}
	return terminal.Run(ctx, screen, runOpts...)
}
