package anim

import "github.com/inamate/motion/internal/geom"

// GeometricState is the per-object record of authored style values, the
// multipliers layered on top of them and the scale actually applied to the
// surface so far.
//
// DesiredScale is what the author last asked for; CurrentScale is the product
// of every scale issued since the last Reset. The two are kept apart because
// relative scaling composes on CurrentScale, not on the authored value.
type GeometricState struct {
	LineWidth    float64
	MulLineWidth float64

	Opacity    float64
	MulOpacity float64

	FontSize float64

	DesiredScale geom.Vec2
	MulScale     geom.Vec2
	CurrentScale geom.Vec2

	// ShowAction is false when the last scale left the object degenerate.
	// Callers must not draw the object while it is false.
	ShowAction bool
}

// NewGeometricState returns a state with unit multipliers and identity scale.
func NewGeometricState() *GeometricState {
	return &GeometricState{
		LineWidth:    1,
		MulLineWidth: 1,
		Opacity:      1,
		MulOpacity:   1,
		FontSize:     12,
		DesiredScale: geom.One,
		MulScale:     geom.One,
		CurrentScale: geom.One,
		ShowAction:   true,
	}
}

// Reset prepares the state for a fresh graphics-state scope: the applied
// scale returns to identity, multipliers to one, and the object is visible.
// Authored values are kept.
func (g *GeometricState) Reset() {
	g.MulLineWidth = 1
	g.MulOpacity = 1
	g.MulScale = geom.One
	g.CurrentScale = geom.One
	g.ShowAction = true
}

// EffectiveLineWidth is LineWidth * MulLineWidth.
func (g *GeometricState) EffectiveLineWidth() float64 {
	return g.LineWidth * g.MulLineWidth
}

// EffectiveOpacity is Opacity * MulOpacity. It is not clamped.
func (g *GeometricState) EffectiveOpacity() float64 {
	return g.Opacity * g.MulOpacity
}

// SetLineWidth records w and forwards w*MulLineWidth to the surface.
func (g *GeometricState) SetLineWidth(s Surface, w float64) {
	g.LineWidth = w
	s.SetLineWidth(g.EffectiveLineWidth())
}

// SetOpacity records o and forwards o*MulOpacity to the surface.
func (g *GeometricState) SetOpacity(s Surface, o float64) {
	g.Opacity = o
	s.SetOpacity(g.EffectiveOpacity())
}

// SetFontSize records size and forwards it unchanged.
func (g *GeometricState) SetFontSize(s Surface, size float64) {
	g.FontSize = size
	s.SetFontSize(size)
}

// SetScale scales relative to the current scale by (sx, sy)*MulScale.
// A degenerate factor hides the object and leaves the surface and
// CurrentScale untouched. It returns the factor issued and whether it was.
func (g *GeometricState) SetScale(s Surface, sx, sy float64) (geom.Vec2, bool) {
	g.DesiredScale = geom.V(sx, sy)
	effective := g.DesiredScale.Mul(g.MulScale)
	if effective.AnyZero() {
		g.ShowAction = false
		return effective, false
	}

	g.ShowAction = true
	s.Scale(effective)
	g.CurrentScale = g.CurrentScale.Mul(effective)
	return effective, true
}

// SetScaleAbsolute scales so that the object ends up at absolute scale
// (x, y), issuing only the incremental factor (x, y)/CurrentScale.
// A degenerate target hides the object and returns before touching the
// surface, so the division never sees a zero. It never shows an object
// that SetScale has hidden.
func (g *GeometricState) SetScaleAbsolute(s Surface, x, y float64) (geom.Vec2, bool) {
	target := geom.V(x, y)
	g.DesiredScale = target
	if target.AnyZero() {
		g.ShowAction = false
		return geom.Vec2{}, false
	}

	scaling := target.Div(g.CurrentScale)
	s.Scale(scaling)
	g.CurrentScale = target
	return scaling, true
}
