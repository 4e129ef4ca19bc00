// Package anim turns transition descriptors into per-frame transforms on a
// drawing surface.
//
// Transitions are registered once per action. Every frame the action's
// interpolator resolves symbolic endpoints through a Resolver, interpolates
// with the action's eased progress and writes the result into its internal
// transform slots, which Apply then issues against the surface in
// declaration order. Callers wrap each object in Save/Restore.
package anim

import "github.com/inamate/motion/internal/geom"

// Surface is the subset of a vector drawing context the engine drives.
type Surface interface {
	Translate(v geom.Vec2)
	Rotate(radians float64)
	Scale(s geom.Vec2)
	SetLineWidth(w float64)
	SetOpacity(o float64)
	SetFontSize(size float64)
	Save()
	Restore()
}

// TextExtents are the metrics of a single line of text at the current font size.
type TextExtents struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// TextSurface is a Surface that can measure, draw and clip text.
type TextSurface interface {
	Surface
	MeasureText(text string) TextExtents
	DrawText(text string, at geom.Vec2, align Align)
	ClipCircle(center geom.Vec2, radius float64)
}
