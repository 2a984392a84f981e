package pong

import "sync"

// drawListPool provides reuse of DrawList buffers across frames.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]float32, 0, VertexCount*2),
			IdxBuffer: make([]uint32, 0, 64),
			CmdBuffer: make([]DrawCmd, 0, MeshCount),
		}
	},
}

// AcquireDrawList gets a DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawCmd draws ElemCount indices starting at IndexOffset in one color.
type DrawCmd struct {
	Mesh        Mesh
	IndexOffset uint32
	ElemCount   uint32
	Color       Color
}

// DrawList is everything a renderer needs for one frame: the vertex buffer
// as flat x,y pairs, the triangle indices into it and the colored commands.
type DrawList struct {
	ClearColor Color
	VtxBuffer  []float32
	IdxBuffer  []uint32
	CmdBuffer  []DrawCmd
}

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.ClearColor = ColorBlack
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.CmdBuffer = dl.CmdBuffer[:0]
}

// SetVertices replaces the vertex data with the contents of b.
func (dl *DrawList) SetVertices(b *Buffer) {
	dl.VtxBuffer = b.Floats(dl.VtxBuffer[:0])
}

// AddMesh appends a draw command for mesh in color c.
func (dl *DrawList) AddMesh(m Mesh, c Color) {
	idx := m.Indices()
	if len(idx) == 0 {
		return
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		Mesh:        m,
		IndexOffset: uint32(len(dl.IdxBuffer)),
		ElemCount:   uint32(len(idx)),
		Color:       c,
	})
	dl.IdxBuffer = append(dl.IdxBuffer, idx...)
}

// Vertex returns vertex i of the list.
func (dl *DrawList) Vertex(i uint32) Vec2 {
	return Vec2{X: dl.VtxBuffer[2*i], Y: dl.VtxBuffer[2*i+1]}
}

// Triangles calls fn for every triangle of cmd.
func (dl *DrawList) Triangles(cmd DrawCmd, fn func(a, b, c Vec2)) {
	idx := dl.IdxBuffer[cmd.IndexOffset : cmd.IndexOffset+cmd.ElemCount]
	for i := 0; i+2 < len(idx); i += 3 {
		fn(dl.Vertex(idx[i]), dl.Vertex(idx[i+1]), dl.Vertex(idx[i+2]))
	}
}

// BuildDrawList fills dl with the current simulation geometry, drawing the
// background, then the ball, then both paddles.
func BuildDrawList(dl *DrawList, b *Buffer, p Palette) {
	dl.Clear()
	dl.ClearColor = p.Clear
	dl.SetVertices(b)
	for m := MeshBackground; m < MeshCount; m++ {
		dl.AddMesh(m, p.MeshColor(m))
	}
}
