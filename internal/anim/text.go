package anim

import (
	"strings"

	"github.com/inamate/motion/internal/geom"
)

// HAlign is horizontal text alignment relative to the anchor.
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// VAlign is vertical text alignment relative to the anchor.
type VAlign int

const (
	AlignBaseline VAlign = iota
	AlignTop
	AlignMiddle
	AlignBottom
)

// Align pairs horizontal and vertical alignment. The zero value is left/baseline.
type Align struct {
	H HAlign
	V VAlign
}

// ParseHAlign accepts left, center, centre and right; anything else is left.
func ParseHAlign(s string) HAlign {
	switch strings.ToLower(s) {
	case "center", "centre":
		return AlignCenter
	case "right":
		return AlignRight
	default:
		return AlignLeft
	}
}

// ParseVAlign accepts top, middle, baseline and bottom; anything else is baseline.
func ParseVAlign(s string) VAlign {
	switch strings.ToLower(s) {
	case "top":
		return AlignTop
	case "middle":
		return AlignMiddle
	case "bottom":
		return AlignBottom
	default:
		return AlignBaseline
	}
}

func (h HAlign) String() string {
	switch h {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

func (v VAlign) String() string {
	switch v {
	case AlignTop:
		return "top"
	case AlignMiddle:
		return "middle"
	case AlignBottom:
		return "bottom"
	default:
		return "baseline"
	}
}

// Origin returns where the left end of the baseline sits relative to the
// anchor for text with extents ext. Y grows downwards.
func (a Align) Origin(ext TextExtents) geom.Vec2 {
	var o geom.Vec2
	switch a.H {
	case AlignCenter:
		o.X = -ext.Width / 2
	case AlignRight:
		o.X = -ext.Width
	}
	switch a.V {
	case AlignTop:
		o.Y = ext.Ascent
	case AlignMiddle:
		o.Y = (ext.Ascent - ext.Descent) / 2
	case AlignBottom:
		o.Y = -ext.Descent
	}
	return o
}

// RevealText draws text anchored at `at`, rotated by angle, revealed up to
// progress t. Below t=1 the text is clipped to a circle centered on the
// left end of its baseline with radius t*width, so it uncovers left to
// right. It returns the clip radius, or the full width when unclipped.
func RevealText(s TextSurface, text string, at geom.Vec2, align Align, angle, t float64) float64 {
	s.Save()
	defer s.Restore()

	s.Translate(at)
	s.Rotate(angle)

	if t >= 1 {
		s.DrawText(text, geom.Vec2{}, align)
		return s.MeasureText(text).Width
	}
	if t < 0 {
		t = 0
	}

	ext := s.MeasureText(text)
	origin := align.Origin(ext)
	radius := t * ext.Width

	s.ClipCircle(origin, radius)
	s.DrawText(text, origin, Align{H: AlignLeft, V: AlignBaseline})
	return radius
}
