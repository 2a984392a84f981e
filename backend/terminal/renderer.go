// Package terminal draws the game into a text terminal with tcell, one
// colored cell per sample.
package terminal

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/pong"
)

// ErrScreenInit reports that the terminal screen could not be set up.
var ErrScreenInit = errors.New("terminal screen init failed")

// OpenScreen creates and initializes a tcell screen on the controlling
// terminal. Callers must call Fini on it.
func OpenScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScreenInit, err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScreenInit, err)
	}
	screen.HideCursor()
	return screen, nil
}

// CellStyle returns the style used to paint a cell in color c.
func CellStyle(c pong.Color) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// Renderer implements pong.Renderer by rasterizing the draw list onto the
// cells of a tcell screen. A cell takes the color of the last triangle that
// covers its center.
type Renderer struct {
	screen tcell.Screen
	width  int
	height int
	cells  []pong.Color
}

// NewRenderer creates a renderer drawing on screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen}
	r.Resize(screen.Size())
	return r
}

// Resize updates the grid size. Render also picks up size changes of the
// screen itself.
func (r *Renderer) Resize(width, height int) {
	if width == r.width && height == r.height && r.cells != nil {
		return
	}
	r.width = width
	r.height = height
	r.cells = make([]pong.Color, width*height)
}

// Render rasterizes dl and shows the result.
func (r *Renderer) Render(dl *pong.DrawList) error {
	if dl == nil || len(dl.VtxBuffer) == 0 {
		return nil
	}
	r.Resize(r.screen.Size())
	if r.width == 0 || r.height == 0 {
		return nil
	}

	for i := range r.cells {
		r.cells[i] = dl.ClearColor
	}
	for _, cmd := range dl.CmdBuffer {
		dl.Triangles(cmd, func(a, b, c pong.Vec2) {
			r.fillTriangle(a, b, c, cmd.Color)
		})
	}

	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, CellStyle(r.cells[y*r.width+x]))
		}
	}
	r.screen.Show()
	return nil
}

// Cell returns the color last rendered at x, y.
func (r *Renderer) Cell(x, y int) pong.Color {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return pong.Color{}
	}
	return r.cells[y*r.width+x]
}

func (r *Renderer) fillTriangle(a, b, c pong.Vec2, col pong.Color) {
	ax, ay := a.ToPixel(r.width, r.height)
	bx, by := b.ToPixel(r.width, r.height)
	cx, cy := c.ToPixel(r.width, r.height)

	x0 := clampInt(int(min(ax, bx, cx)), 0, r.width-1)
	x1 := clampInt(int(max(ax, bx, cx)), 0, r.width-1)
	y0 := clampInt(int(min(ay, by, cy)), 0, r.height-1)
	y1 := clampInt(int(max(ay, by, cy)), 0, r.height-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			px, py := float32(x)+0.5, float32(y)+0.5
			if insideTriangle(px, py, ax, ay, bx, by, cx, cy) {
				r.cells[y*r.width+x] = col
			}
		}
	}
}

// insideTriangle tests p against the three edges, accepting either winding.
// Points on an edge count as inside.
func insideTriangle(px, py, ax, ay, bx, by, cx, cy float32) bool {
	d1 := edge(px, py, ax, ay, bx, by)
	d2 := edge(px, py, bx, by, cx, cy)
	d3 := edge(px, py, cx, cy, ax, ay)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func edge(px, py, ax, ay, bx, by float32) float32 {
	return (px-bx)*(ay-by) - (ax-bx)*(py-by)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
