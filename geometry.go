package pong

import "math"

// Vertex buffer layout. The partition is fixed for the lifetime of a
// Simulation; only coordinate values change.
const (
	PlayerOneStart  = 0
	BallStart       = 4
	BallSides       = 8
	PlayerTwoStart  = BallStart + BallSides
	BackgroundStart = PlayerTwoStart + 4
	VertexCount     = BackgroundStart + 4
)

// Ball geometry.
const (
	BallSize = 0.02

	// AspectRatio stretches the ball vertically so it is round on a 16:9 window.
	AspectRatio = 16.0 / 9.0
)

// Buffer holds every vertex the game draws, in NDC.
type Buffer [VertexCount]Vec2

// PlayerOne returns the human paddle corners.
func (b *Buffer) PlayerOne() []Vec2 { return b[PlayerOneStart : PlayerOneStart+4] }

// PlayerTwo returns the AI paddle corners.
func (b *Buffer) PlayerTwo() []Vec2 { return b[PlayerTwoStart : PlayerTwoStart+4] }

// Ball returns the ball octagon vertices.
func (b *Buffer) Ball() []Vec2 { return b[BallStart : BallStart+BallSides] }

// Background returns the background quad corners.
func (b *Buffer) Background() []Vec2 { return b[BackgroundStart : BackgroundStart+4] }

// Floats flattens the buffer into x,y pairs for upload.
func (b *Buffer) Floats(dst []float32) []float32 {
	for _, v := range b {
		dst = append(dst, v.X, v.Y)
	}
	return dst
}

// PolygonPoint returns vertex index of a regular polygon with the given
// number of sides, centered on the origin, with y scaled by AspectRatio.
func PolygonPoint(size float64, sides, index int) Vec2 {
	a := 2 * math.Pi * float64(index) / float64(sides)
	return Vec2{
		X: float32(size * math.Cos(a)),
		Y: float32(size * math.Sin(a) * AspectRatio),
	}
}

// StartBuffer returns the layout every rally starts from.
func StartBuffer() Buffer {
	var b Buffer
	copy(b[PlayerOneStart:], []Vec2{
		{-0.98, -0.20},
		{-0.96, -0.20},
		{-0.96, 0.20},
		{-0.98, 0.20},
	})
	for i := 0; i < BallSides; i++ {
		b[BallStart+i] = PolygonPoint(BallSize, BallSides, i)
	}
	copy(b[PlayerTwoStart:], []Vec2{
		{0.98, -0.20},
		{0.96, -0.20},
		{0.96, 0.20},
		{0.98, 0.20},
	})
	copy(b[BackgroundStart:], []Vec2{
		{-1, -1},
		{1, -1},
		{1, 1},
		{-1, 1},
	})
	return b
}

// Mesh identifies a group of triangles drawn in a single color.
type Mesh int

const (
	MeshBackground Mesh = iota
	MeshBall
	MeshPlayerOne
	MeshPlayerTwo
	MeshCount
)

var meshNames = [MeshCount]string{"background", "ball", "player1", "player2"}

func (m Mesh) String() string {
	if m < 0 || m >= MeshCount {
		return "unknown"
	}
	return meshNames[m]
}

// meshIndices lists the triangles of each mesh, in draw order.
var meshIndices = [MeshCount][]uint32{
	MeshBackground: {
		16, 17, 18,
		18, 19, 16,
	},
	MeshBall: {
		4, 6, 5,
		4, 7, 6,
		4, 8, 7,
		4, 9, 8,
		4, 10, 9,
		4, 11, 10,
	},
	MeshPlayerOne: {
		0, 1, 2,
		2, 3, 0,
	},
	MeshPlayerTwo: {
		12, 13, 14,
		14, 15, 12,
	},
}

// Indices returns the triangle index list for a mesh. The slice is shared
// and must not be modified.
func (m Mesh) Indices() []uint32 {
	if m < 0 || m >= MeshCount {
		return nil
	}
	return meshIndices[m]
}
