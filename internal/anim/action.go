package anim

import (
	"fmt"

	"github.com/inamate/motion/internal/geom"
)

// FrameRange is an inclusive range of frames.
type FrameRange struct {
	Start int
	End   int
}

// Len returns the number of frames in the range.
func (r FrameRange) Len() int {
	return r.End - r.Start + 1
}

// Contains reports whether frame lies within the range.
func (r FrameRange) Contains(frame int) bool {
	return frame >= r.Start && frame <= r.End
}

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float64) float64

// Action animates an object over a range of frames.
type Action struct {
	ID     string
	Frames FrameRange
	Easing Easing

	// Keep holds the final state (t=1) after the range has ended.
	Keep bool

	Effects []Effect

	interp *Interpolator
}

// NewAction creates an action that keeps its final state. A nil easing is linear.
func NewAction(id string, frames FrameRange, easing Easing, transitions ...Transition) *Action {
	return &Action{
		ID:     id,
		Frames: frames,
		Easing: easing,
		Keep:   true,
		interp: NewInterpolator(transitions...),
	}
}

// Active reports whether the action contributes to frame.
func (a *Action) Active(frame int) bool {
	if frame < a.Frames.Start {
		return false
	}
	return frame <= a.Frames.End || a.Keep
}

// Progress returns the eased progress of frame within the action: 0 on the
// first frame, 1 on the last, clamped outside. A single-frame action is
// always complete.
func (a *Action) Progress(frame int) float64 {
	var t float64
	switch {
	case a.Frames.Len() <= 1:
		t = 1
	case frame <= a.Frames.Start:
		t = 0
	case frame >= a.Frames.End:
		t = 1
	default:
		t = float64(frame-a.Frames.Start) / float64(a.Frames.End-a.Frames.Start)
	}

	if a.Easing != nil {
		t = a.Easing(t)
	}
	return t
}

// Update recomputes the action's internal transforms for frame.
func (a *Action) Update(frame int, r Resolver) error {
	first := frame == a.Frames.Start
	if err := a.interp.Update(a.Progress(frame), first, r); err != nil {
		return fmt.Errorf("action %s: %w", a.ID, err)
	}
	return nil
}

// Uncaptured reports whether the action holds a ComputeFromOnce origin that
// has not been captured on its first frame yet.
func (a *Action) Uncaptured() bool {
	return a.interp.Uncaptured()
}

// ApplyEffects folds the action's effects at frame into m.
func (a *Action) ApplyEffects(m *Multipliers, frame int) {
	if len(a.Effects) == 0 {
		return
	}
	t := a.Progress(frame)
	for _, e := range a.Effects {
		e.Apply(m, t)
	}
}

// Transitions returns the registered descriptors.
func (a *Action) Transitions() []Transition {
	return a.interp.Transitions()
}

// Transforms returns the transforms computed by the last Update.
func (a *Action) Transforms() []InternalTransform {
	return a.interp.Transforms()
}

// Apply issues the last computed transforms against s.
func (a *Action) Apply(s Surface, g *GeometricState) {
	Apply(s, g, a.interp.Transforms())
}

// Symbols returns every object name the action's transitions reference.
func (a *Action) Symbols() []string {
	var names []string
	for _, t := range a.interp.Transitions() {
		names = append(names, Symbols(t)...)
	}
	return names
}

// Multipliers accumulate the effect factors for one object and frame.
type Multipliers struct {
	Opacity   float64
	LineWidth float64
	Scale     geom.Vec2
	// Text is the reveal progress handed to RevealText.
	Text float64
}

// UnitMultipliers returns multipliers that change nothing.
func UnitMultipliers() Multipliers {
	return Multipliers{Opacity: 1, LineWidth: 1, Scale: geom.One, Text: 1}
}

// Load copies the multipliers into g.
func (m Multipliers) Load(g *GeometricState) {
	g.MulOpacity = m.Opacity
	g.MulLineWidth = m.LineWidth
	g.MulScale = m.Scale
}
