package anim

import (
	"fmt"

	"github.com/inamate/motion/internal/geom"
)

// Interpolator owns an action's transitions and the internal transform slot
// for each of them. Slot i always belongs to transition i.
type Interpolator struct {
	transitions []Transition
	internals   []InternalTransform

	// fromOnce holds the captured From of ComputeFromOnce scalings, nil
	// until captured. Parallel to transitions.
	fromOnce []*geom.Vec2
}

// NewInterpolator registers transitions and allocates their slots.
func NewInterpolator(transitions ...Transition) *Interpolator {
	ip := &Interpolator{
		transitions: make([]Transition, 0, len(transitions)),
		internals:   make([]InternalTransform, 0, len(transitions)),
		fromOnce:    make([]*geom.Vec2, 0, len(transitions)),
	}
	for _, t := range transitions {
		ip.transitions = append(ip.transitions, t)
		ip.internals = append(ip.internals, newInternal(t))
		ip.fromOnce = append(ip.fromOnce, nil)
	}
	return ip
}

// Transitions returns the registered descriptors in declaration order.
func (ip *Interpolator) Transitions() []Transition {
	return ip.transitions
}

// Transforms returns the internal transforms in declaration order.
func (ip *Interpolator) Transforms() []InternalTransform {
	return ip.internals
}

// Uncaptured reports whether a ComputeFromOnce scaling still has no
// captured origin.
func (ip *Interpolator) Uncaptured() bool {
	for i, tr := range ip.transitions {
		if sc, ok := tr.(Scaling); ok && sc.ComputeFromOnce && ip.fromOnce[i] == nil {
			return true
		}
	}
	return false
}

// Update resolves every transition at progress t and overwrites its slot.
// first marks the action's first frame, where ComputeFromOnce origins are
// (re)captured. A ComputeFromOnce origin that was never captured, because
// playback started mid-action, is captured on the first update instead.
func (ip *Interpolator) Update(t float64, first bool, r Resolver) error {
	if r == nil {
		r = Snapshot{}
	}

	for i, tr := range ip.transitions {
		var err error
		switch v := tr.(type) {
		case Translation:
			err = ip.updateTranslation(i, v, t, r)
		case Rotation:
			err = ip.updateRotation(i, v, t, r)
		case Scaling:
			err = ip.updateScaling(i, v, t, first, r)
		default:
			panic(unknownTransition(tr))
		}
		if err != nil {
			return fmt.Errorf("transition %d: %w", i, err)
		}
	}
	return nil
}

func (ip *Interpolator) updateTranslation(i int, v Translation, t float64, r Resolver) error {
	from, err := resolvePoint(v.From, r)
	if err != nil {
		return fmt.Errorf("translation from: %w", err)
	}
	to, err := resolvePoint(v.To, r)
	if err != nil {
		return fmt.Errorf("translation to: %w", err)
	}

	ip.internals[i].(*InternalTranslation).By = from.Lerp(to, t)
	return nil
}

func (ip *Interpolator) updateRotation(i int, v Rotation, t float64, r Resolver) error {
	from, err := resolveAngle(v.From, r)
	if err != nil {
		return fmt.Errorf("rotation from: %w", err)
	}
	to, err := resolveAngle(v.To, r)
	if err != nil {
		return fmt.Errorf("rotation to: %w", err)
	}
	center, err := resolvePoint(v.Center, r)
	if err != nil {
		return fmt.Errorf("rotation center: %w", err)
	}

	slot := ip.internals[i].(*InternalRotation)
	slot.Angle = geom.Lerp(from, to, t)
	slot.Center = center
	return nil
}

func (ip *Interpolator) updateScaling(i int, v Scaling, t float64, first bool, r Resolver) error {
	var from geom.Vec2
	if v.ComputeFromOnce {
		if first || ip.fromOnce[i] == nil {
			captured, err := resolveScale(v.From, r)
			if err != nil {
				return fmt.Errorf("scaling from: %w", err)
			}
			ip.fromOnce[i] = &captured
		}
		from = *ip.fromOnce[i]
	} else {
		var err error
		from, err = resolveScale(v.From, r)
		if err != nil {
			return fmt.Errorf("scaling from: %w", err)
		}
	}

	to, err := resolveScale(v.To, r)
	if err != nil {
		return fmt.Errorf("scaling to: %w", err)
	}

	ip.internals[i].(*InternalScaling).Scale = from.Lerp(to, t)
	return nil
}
