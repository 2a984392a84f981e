// Command gen plays short scripted games, captures framebuffer pixels at
// interesting moments, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"math/rand/v2"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/pong"
	"github.com/go-theft-auto/pong/backend/opengl"
)

const (
	shotWidth  = 960
	shotHeight = 540
	maxTicks   = 5000
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single game moment to capture.
type screenshot struct {
	name   string        // filename without extension
	ticks  int           // ticks to run when until is EventNone
	until  pong.Event    // stop at the first tick reporting this event
	before bool          // show the layout from just before the until tick
	up     bool          // hold the up arrow while playing
	opts   []pong.Option // extra game options
}

func run() error {
	cfg := opengl.DefaultWindowConfig()
	cfg.Width, cfg.Height = shotWidth, shotHeight
	cfg.Title = "screenshot-gen"
	cfg.Hidden = true
	cfg.VSync = false

	window, err := opengl.OpenWindow(cfg)
	if err != nil {
		return err
	}
	defer window.Close()

	renderer, err := opengl.NewRenderer(opengl.WithViewport(shotWidth, shotHeight))
	if err != nil {
		return fmt.Errorf("pong renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()

	for _, s := range shots {
		ticks, err := capture(renderer, s, outDir)
		if err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (tick %d)\n", s.name, ticks)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) (int, error) {
	// Fixed seed so every run produces the same images.
	opts := append([]pong.Option{pong.WithRandSource(rand.New(rand.NewPCG(1, 2)))}, s.opts...)

	// Fresh game per screenshot to avoid state leaking between captures.
	game := pong.New(renderer, nil, opts...)
	game.Input().SetKey(pong.KeyUp, s.up)

	sim := game.Simulation()
	ticks := 0
	for ticks < maxTicks {
		prev := sim.Positions
		ev := game.Update()
		ticks++
		if s.until != pong.EventNone {
			if ev.Has(s.until) {
				// EventOut resets within the same tick, so the ball
				// leaving is only visible in the previous layout.
				if s.before {
					sim.Positions = prev
				}
				break
			}
		} else if ticks >= s.ticks {
			break
		}
	}

	if err := game.Draw(); err != nil {
		return ticks, err
	}

	// Read pixels
	pixels := make([]byte, shotWidth*shotHeight*4)
	gl.ReadPixels(0, 0, shotWidth, shotHeight, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := shotWidth * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < shotHeight/2; y++ {
		top := y * rowLen
		bot := (shotHeight - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, shotWidth, shotHeight))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return ticks, err
	}
	defer f.Close()
	return ticks, jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns the list of game moments to capture.
func buildScreenshots() []screenshot {
	return []screenshot{
		{name: "serve", ticks: 1},
		{name: "rally", ticks: 180},
		{name: "wall-bounce", until: pong.EventWallBounce},
		{name: "ai-hit", until: pong.EventAIHit},
		{name: "out", until: pong.EventOut, before: true},
		{name: "paddle-top", ticks: 200, up: true},
		{
			name: "palette", ticks: 180,
			opts: []pong.Option{pong.WithPalette(pong.Palette{
				Clear:      pong.ColorBlack,
				Background: pong.ColorBlack,
				Ball:       pong.ColorWhite,
				PlayerOne:  pong.ColorWhite,
				PlayerTwo:  pong.ColorWhite,
			})},
		},
	}
}
