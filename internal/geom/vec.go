package geom

import "math"

// Epsilon is the absolute tolerance used when deciding whether a scale
// factor is degenerate. Scale factors are unitless and authored in the
// 0.01–100 range, so anything below 1e-9 cannot produce a visible object.
const Epsilon = 1e-9

// Vec2 is a 2D point, offset or per-axis scale pair.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// One is the identity scale.
var One = Vec2{X: 1, Y: 1}

// Mul multiplies component-wise.
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// Div divides component-wise. Callers guard against zero components.
func (v Vec2) Div(o Vec2) Vec2 { return Vec2{v.X / o.X, v.Y / o.Y} }

// Lerp interpolates component-wise: v + t*(to-v).
func (v Vec2) Lerp(to Vec2, t float64) Vec2 {
	return Vec2{
		X: Lerp(v.X, to.X, t),
		Y: Lerp(v.Y, to.Y, t),
	}
}

// AnyZero reports whether either component is approximately zero.
func (v Vec2) AnyZero() bool {
	return ApproxZero(v.X) || ApproxZero(v.Y)
}

// ApproxEqual compares two vectors within tol on each axis.
func (v Vec2) ApproxEqual(o Vec2, tol float64) bool {
	return math.Abs(v.X-o.X) <= tol && math.Abs(v.Y-o.Y) <= tol
}

// Lerp interpolates a scalar: a + t*(b-a).
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// ApproxZero reports whether |f| <= Epsilon.
func ApproxZero(f float64) bool {
	return math.Abs(f) <= Epsilon
}
