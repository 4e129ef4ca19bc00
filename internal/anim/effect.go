package anim

import (
	"errors"
	"fmt"

	"github.com/inamate/motion/internal/geom"
)

// ErrUnknownEffect is returned by ParseEffect for unsupported effect names.
var ErrUnknownEffect = errors.New("unknown effect")

// EffectKind selects which multiplier an effect drives.
type EffectKind int

const (
	EffectFade EffectKind = iota
	EffectFadeLineWidth
	EffectScale
	EffectDrawText
)

var effectNames = map[string]EffectKind{
	"fade":            EffectFade,
	"fade_line_width": EffectFadeLineWidth,
	"scale":           EffectScale,
	"draw_text":       EffectDrawText,
}

// Effect makes an object appear (multiplier follows t) or disappear
// (multiplier follows 1-t) over its action.
type Effect struct {
	Kind      EffectKind
	Disappear bool
}

// ParseEffect parses an effect name such as "fade" or "draw_text".
func ParseEffect(name string, disappear bool) (Effect, error) {
	kind, ok := effectNames[name]
	if !ok {
		return Effect{}, fmt.Errorf("%w: %q", ErrUnknownEffect, name)
	}
	return Effect{Kind: kind, Disappear: disappear}, nil
}

// Apply multiplies the effect's factor at progress t into m.
func (e Effect) Apply(m *Multipliers, t float64) {
	f := t
	if e.Disappear {
		f = 1 - t
	}

	switch e.Kind {
	case EffectFade:
		m.Opacity *= f
	case EffectFadeLineWidth:
		m.LineWidth *= f
	case EffectScale:
		m.Scale = m.Scale.Mul(geom.V(f, f))
	case EffectDrawText:
		m.Text *= f
	}
}
