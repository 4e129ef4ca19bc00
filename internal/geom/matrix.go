package geom

import "math"

// Matrix2D represents a 2D affine transformation matrix.
// Layout: [a, b, c, d, e, f] representing:
// | a  c  e |
// | b  d  f |
// | 0  0  1 |
type Matrix2D [6]float64

// Identity returns the identity matrix.
func Identity() Matrix2D {
	return Matrix2D{1, 0, 0, 1, 0, 0}
}

// Translate returns a translation matrix.
func Translate(tx, ty float64) Matrix2D {
	return Matrix2D{1, 0, 0, 1, tx, ty}
}

// Scale returns a scale matrix.
func Scale(sx, sy float64) Matrix2D {
	return Matrix2D{sx, 0, 0, sy, 0, 0}
}

// Rotate returns a rotation matrix (angle in radians).
func Rotate(radians float64) Matrix2D {
	cos := math.Cos(radians)
	sin := math.Sin(radians)
	return Matrix2D{cos, sin, -sin, cos, 0, 0}
}

// Multiply multiplies this matrix by another: result = m * other
// This applies 'other' first, then 'm'.
func (m Matrix2D) Multiply(other Matrix2D) Matrix2D {
	return Matrix2D{
		m[0]*other[0] + m[2]*other[1],        // a
		m[1]*other[0] + m[3]*other[1],        // b
		m[0]*other[2] + m[2]*other[3],        // c
		m[1]*other[2] + m[3]*other[3],        // d
		m[0]*other[4] + m[2]*other[5] + m[4], // e
		m[1]*other[4] + m[3]*other[5] + m[5], // f
	}
}

// Translated post-multiplies a translation, the way a canvas applies translate().
func (m Matrix2D) Translated(v Vec2) Matrix2D {
	return m.Multiply(Translate(v.X, v.Y))
}

// Rotated post-multiplies a rotation.
func (m Matrix2D) Rotated(radians float64) Matrix2D {
	return m.Multiply(Rotate(radians))
}

// Scaled post-multiplies a scale.
func (m Matrix2D) Scaled(s Vec2) Matrix2D {
	return m.Multiply(Scale(s.X, s.Y))
}

// TransformPoint applies the matrix to a point.
func (m Matrix2D) TransformPoint(p Vec2) Vec2 {
	return Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Angle returns the rotation encoded in the matrix, in radians.
// Only meaningful for matrices without skew.
func (m Matrix2D) Angle() float64 {
	return math.Atan2(m[1], m[0])
}

// ToSlice returns the matrix as a float64 slice for JSON serialization.
func (m Matrix2D) ToSlice() []float64 {
	return []float64{m[0], m[1], m[2], m[3], m[4], m[5]}
}
