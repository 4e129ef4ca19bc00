package anim

import (
	"fmt"

	"github.com/inamate/motion/internal/geom"
)

// fakeSurface logs every call and keeps the current matrix.
type fakeSurface struct {
	calls     []string
	m         geom.Matrix2D
	stack     []geom.Matrix2D
	lineWidth float64
	opacity   float64
	fontSize  float64
	clips     []float64
	texts     []geom.Vec2
	charWidth float64
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{m: geom.Identity(), charWidth: 10}
}

func (f *fakeSurface) log(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeSurface) Translate(v geom.Vec2) {
	f.log("translate %g %g", v.X, v.Y)
	f.m = f.m.Translated(v)
}

func (f *fakeSurface) Rotate(r float64) {
	f.log("rotate %.4f", r)
	f.m = f.m.Rotated(r)
}

func (f *fakeSurface) Scale(s geom.Vec2) {
	f.log("scale %g %g", s.X, s.Y)
	f.m = f.m.Scaled(s)
}

func (f *fakeSurface) SetLineWidth(w float64) { f.log("linewidth %g", w); f.lineWidth = w }
func (f *fakeSurface) SetOpacity(o float64)   { f.log("opacity %g", o); f.opacity = o }
func (f *fakeSurface) SetFontSize(s float64)  { f.log("fontsize %g", s); f.fontSize = s }

func (f *fakeSurface) Save() {
	f.log("save")
	f.stack = append(f.stack, f.m)
}

func (f *fakeSurface) Restore() {
	f.log("restore")
	f.m = f.stack[len(f.stack)-1]
	f.stack = f.stack[:len(f.stack)-1]
}

func (f *fakeSurface) MeasureText(text string) TextExtents {
	return TextExtents{Width: float64(len(text)) * f.charWidth, Ascent: 8, Descent: 2}
}

func (f *fakeSurface) DrawText(text string, at geom.Vec2, align Align) {
	f.log("text %q %g %g %s/%s", text, at.X, at.Y, align.H, align.V)
	f.texts = append(f.texts, at)
}

func (f *fakeSurface) ClipCircle(center geom.Vec2, radius float64) {
	f.log("clip %g %g r=%g", center.X, center.Y, radius)
	f.clips = append(f.clips, radius)
}
