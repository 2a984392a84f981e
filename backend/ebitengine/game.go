package ebitengine

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/go-theft-auto/pong"
)

// Window defaults. 1280x720 keeps the 16:9 shape the ball is built for.
const (
	DefaultWidth  = 1280
	DefaultHeight = 720
	DefaultTitle  = "Pong"
	TicksPerSec   = 60
)

// Game adapts pong.Game to ebiten.Game.
type Game struct {
	game     *pong.Game
	renderer *Renderer
	input    *pong.InputState
}

// NewGame creates an ebiten game running a fresh pong.Game.
func NewGame(opts ...pong.Option) *Game {
	renderer := NewRenderer(DefaultWidth, DefaultHeight)
	input := pong.NewInputState()
	return &Game{
		game:     pong.New(renderer, input, opts...),
		renderer: renderer,
		input:    input,
	}
}

// Update reads the arrow keys and advances the game by one tick.
func (g *Game) Update() error {
	pollKey(g.input, ebiten.KeyArrowUp, pong.KeyUp)
	pollKey(g.input, ebiten.KeyArrowDown, pong.KeyDown)

	_, err := g.game.Frame()
	return err
}

// Draw paints the frame produced by the last Update.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
}

// Layout uses the window size as the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.game.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(opts ...pong.Option) error {
	g := NewGame(opts...)
	ebiten.SetWindowTitle(DefaultTitle)
	ebiten.SetWindowSize(DefaultWidth, DefaultHeight)
	ebiten.SetTPS(TicksPerSec)
	pong.Logger().Info("ebitengine game started", "tps", TicksPerSec)

	err := ebiten.RunGame(g)
	pong.Logger().Info("ebitengine game stopped", "frames", g.game.Frames(), "rallies", g.game.Rallies())
	return err
}

func pollKey(input *pong.InputState, key ebiten.Key, k pong.Key) {
	switch {
	case inpututil.IsKeyJustPressed(key):
		input.SetKey(k, true)
	case inpututil.IsKeyJustReleased(key):
		input.SetKey(k, false)
	}
}
