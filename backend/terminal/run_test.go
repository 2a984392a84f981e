package terminal_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/pong"
	"github.com/go-theft-auto/pong/backend/terminal"
)

func TestRunQuitsOnEscape(t *testing.T) {
	screen := newScreen(t, 40, 12)

	done := make(chan error, 1)
	go func() {
		done <- terminal.Run(context.Background(), screen, terminal.WithFrameInterval(time.Millisecond))
	}()

	time.Sleep(20 * time.Millisecond)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop on escape")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	screen := newScreen(t, 40, 12)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	if err := terminal.Run(ctx, screen, terminal.WithFrameInterval(time.Millisecond)); err != nil {
		t.Fatalf("Run: %v", err)
	}

	_, _, style, _ := screen.GetContent(0, 0)
	if style == tcell.StyleDefault {
		t.Error("expected at least one frame to be drawn")
	}
}

func TestRunWithLogger(t *testing.T) {
	screen := newScreen(t, 40, 12)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	if err := terminal.Run(ctx, screen,
		terminal.WithFrameInterval(time.Millisecond),
		terminal.WithLogger(logger),
	); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !strings.Contains(buf.String(), "terminal game started") {
		t.Errorf("log = %q, want start message", buf.String())
	}
}

func TestRunWithGameOptions(t *testing.T) {
	screen := newScreen(t, 40, 12)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	palette := pong.DefaultPalette()
	palette.Background = pong.RGB(200, 0, 0)

	if err := terminal.Run(ctx, screen,
		terminal.WithFrameInterval(time.Millisecond),
		terminal.WithGameOptions(pong.WithPalette(palette)),
	); err != nil {
		t.Fatalf("Run: %v", err)
	}

	_, _, style, _ := screen.GetContent(0, 0)
	if want := terminal.CellStyle(palette.Background); style != want {
		t.Errorf("corner style = %v, want background %v", style, want)
	}
}
