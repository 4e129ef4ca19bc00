package anim

import (
	"fmt"

	"github.com/inamate/motion/internal/geom"
)

// InternalTransform is the literal, resolved value of a Transition for the
// current frame. The concrete types are *InternalTranslation,
// *InternalRotation and *InternalScaling.
type InternalTransform interface {
	isInternal()
}

// InternalTranslation translates by By.
type InternalTranslation struct {
	By geom.Vec2
}

// InternalRotation translates to Center, then rotates by Angle.
type InternalRotation struct {
	Angle  float64
	Center geom.Vec2
}

// InternalScaling scales to the absolute Scale.
type InternalScaling struct {
	Scale geom.Vec2
}

func (*InternalTranslation) isInternal() {}
func (*InternalRotation) isInternal()    {}
func (*InternalScaling) isInternal()     {}

// newInternal returns the zero-effect slot matching t.
func newInternal(t Transition) InternalTransform {
	switch t.(type) {
	case Translation:
		return &InternalTranslation{}
	case Rotation:
		return &InternalRotation{}
	case Scaling:
		return &InternalScaling{Scale: geom.One}
	default:
		panic(unknownTransition(t))
	}
}

func unknownTransition(t Transition) string {
	return fmt.Sprintf("anim: unknown transition type %T", t)
}
