package pong

// Vec2 represents a point in normalized device coordinates.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// ToPixel maps the point from NDC ([-1,1], y up) to a width x height
// pixel grid with the origin at the top-left corner.
func (v Vec2) ToPixel(width, height int) (float32, float32) {
	return (v.X + 1) / 2 * float32(width), (1 - v.Y) / 2 * float32(height)
}

// FromPixel is the inverse of Vec2.ToPixel.
func FromPixel(px, py float32, width, height int) Vec2 {
	return Vec2{
		X: px/float32(width)*2 - 1,
		Y: 1 - py/float32(height)*2,
	}
}

// Rect is an axis-aligned rectangle given by its minimum and maximum corners.
type Rect struct {
	Min, Max Vec2
}

// BoundingRect returns the smallest Rect enclosing all points.
func BoundingRect(points []Vec2) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	r := Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		r.Min.X = minf(r.Min.X, p.X)
		r.Min.Y = minf(r.Min.Y, p.Y)
		r.Max.X = maxf(r.Max.X, p.X)
		r.Max.Y = maxf(r.Max.Y, p.Y)
	}
	return r
}

// Contains returns true if the point lies strictly inside the rectangle.
// Points on an edge are outside.
func (r Rect) Contains(p Vec2) bool {
	return p.X > r.Min.X && p.X < r.Max.X && p.Y > r.Min.Y && p.Y < r.Max.Y
}

// ContainsAny returns true if any of the points lies inside the rectangle.
func (r Rect) ContainsAny(points []Vec2) bool {
	for _, p := range points {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// Color is an opaque RGB color with 8-bit channels.
type Color struct {
	R, G, B uint8
}

// RGB creates a Color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Normalized returns the color as floats in [0,1] with full opacity,
// ready for a vec4 uniform.
func (c Color) Normalized() (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, 1
}

// Color constants
var (
	ColorBlack = RGB(0, 0, 0)
	ColorWhite = RGB(255, 255, 255)
	ColorNavy  = RGB(0, 29, 102)  // #001d66
	ColorAzure = RGB(0, 140, 255) // #008cff
)

// Palette assigns a color to every drawable mesh.
type Palette struct {
	Clear      Color
	Background Color
	Ball       Color
	PlayerOne  Color
	PlayerTwo  Color
}

// DefaultPalette returns the navy court with white ball and azure paddles.
func DefaultPalette() Palette {
	return Palette{
		Clear:      ColorBlack,
		Background: ColorNavy,
		Ball:       ColorWhite,
		PlayerOne:  ColorAzure,
		PlayerTwo:  ColorAzure,
	}
}

// MeshColor returns the palette color for a mesh.
func (p Palette) MeshColor(m Mesh) Color {
	switch m {
	case MeshBackground:
		return p.Background
	case MeshBall:
		return p.Ball
	case MeshPlayerOne:
		return p.PlayerOne
	case MeshPlayerTwo:
		return p.PlayerTwo
	default:
		return p.Clear
	}
}

// maxf returns the maximum of two float32 values.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// minf returns the minimum of two float32 values.
func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
