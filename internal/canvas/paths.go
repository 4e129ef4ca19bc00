package canvas

import "github.com/inamate/motion/internal/geom"

// kappa is the control point distance for a quarter-circle bezier:
// 4 * (sqrt(2) - 1) / 3.
const kappa = 0.5522847498

// RectPath returns a w×h rectangle with its top-left corner at the origin.
func RectPath(w, h float64) []PathCommand {
	return []PathCommand{
		{"M", 0.0, 0.0},
		{"L", w, 0.0},
		{"L", w, h},
		{"L", 0.0, h},
		{"Z"},
	}
}

// EllipsePath approximates an ellipse centered on c with four cubic beziers.
func EllipsePath(c geom.Vec2, rx, ry float64) []PathCommand {
	kx, ky := rx*kappa, ry*kappa
	x, y := c.X, c.Y

	return []PathCommand{
		{"M", x + rx, y},
		{"C", x + rx, y + ky, x + kx, y + ry, x, y + ry},
		{"C", x - kx, y + ry, x - rx, y + ky, x - rx, y},
		{"C", x - rx, y - ky, x - kx, y - ry, x, y - ry},
		{"C", x + kx, y - ry, x + rx, y - ky, x + rx, y},
		{"Z"},
	}
}

// PolylinePath connects points in order, closing the path if closed is set.
func PolylinePath(points []geom.Vec2, closed bool) []PathCommand {
	if len(points) == 0 {
		return nil
	}

	path := make([]PathCommand, 0, len(points)+1)
	path = append(path, PathCommand{"M", points[0].X, points[0].Y})
	for _, p := range points[1:] {
		path = append(path, PathCommand{"L", p.X, p.Y})
	}
	if closed {
		path = append(path, PathCommand{"Z"})
	}
	return path
}
