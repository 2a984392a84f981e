// Package ebitengine runs the game inside an Ebitengine window, drawing the
// meshes with Image.DrawTriangles.
package ebitengine

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/go-theft-auto/pong"
)

// Renderer implements pong.Renderer by converting each frame into ebiten
// vertices, kept until the next Draw.
type Renderer struct {
	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
	clear    pong.Color
	width    int
	height   int
}

// NewRenderer creates a renderer for a width x height screen.
func NewRenderer(width, height int) *Renderer {
	src := ebiten.NewImage(3, 3)
	src.Fill(color.White)
	return &Renderer{
		// Sampling from the inner pixel avoids bleeding at the edges.
		white:  src.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		width:  width,
		height: height,
	}
}

// Resize updates the logical screen size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Render converts dl into colored, unindexed triangles.
func (r *Renderer) Render(dl *pong.DrawList) error {
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	if dl == nil {
		return nil
	}
	r.clear = dl.ClearColor

	for _, cmd := range dl.CmdBuffer {
		cr, cg, cb, ca := cmd.Color.Normalized()
		dl.Triangles(cmd, func(a, b, c pong.Vec2) {
			for _, v := range [3]pong.Vec2{a, b, c} {
				x, y := v.ToPixel(r.width, r.height)
				r.indices = append(r.indices, uint16(len(r.vertices)))
				r.vertices = append(r.vertices, ebiten.Vertex{
					DstX:   x,
					DstY:   y,
					SrcX:   1,
					SrcY:   1,
					ColorR: cr,
					ColorG: cg,
					ColorB: cb,
					ColorA: ca,
				})
			}
		})
	}
	return nil
}

// Draw paints the last rendered frame onto screen.
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: r.clear.R, G: r.clear.G, B: r.clear.B, A: 0xff})
	if len(r.indices) == 0 {
		return
	}
	screen.DrawTriangles(r.vertices, r.indices, r.white, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
