package anim

import "github.com/inamate/motion/internal/geom"

// Endpoint is either a literal value or a reference to another object's
// live state, looked up by name when the transition is resolved.
type Endpoint[T any] struct {
	Value  T
	Symbol string
}

// Lit returns a literal endpoint.
func Lit[T any](v T) Endpoint[T] {
	return Endpoint[T]{Value: v}
}

// Ref returns an endpoint that resolves to the named object's state.
func Ref[T any](name string) Endpoint[T] {
	return Endpoint[T]{Symbol: name}
}

// IsRef reports whether the endpoint names another object.
func (e Endpoint[T]) IsRef() bool {
	return e.Symbol != ""
}

// Transition is an immutable description of one transform an action
// animates. The concrete types are Translation, Rotation and Scaling.
type Transition interface {
	isTransition()
}

// Translation moves the object by To-From.
type Translation struct {
	From Endpoint[geom.Vec2]
	To   Endpoint[geom.Vec2]
}

// Rotation turns the object from angle From to angle To (radians) around Center.
type Rotation struct {
	From   Endpoint[float64]
	To     Endpoint[float64]
	Center Endpoint[geom.Vec2]
}

// Scaling changes the object's absolute scale from From to To.
// With ComputeFromOnce a symbolic From is captured on the action's first
// frame and reused for the rest of the action.
type Scaling struct {
	From            Endpoint[geom.Vec2]
	To              Endpoint[geom.Vec2]
	ComputeFromOnce bool
}

func (Translation) isTransition() {}
func (Rotation) isTransition()    {}
func (Scaling) isTransition()     {}

// Symbols returns the object names a transition depends on.
func Symbols(t Transition) []string {
	var names []string
	add := func(name string) {
		if name != "" {
			names = append(names, name)
		}
	}

	switch v := t.(type) {
	case Translation:
		add(v.From.Symbol)
		add(v.To.Symbol)
	case Rotation:
		add(v.From.Symbol)
		add(v.To.Symbol)
		add(v.Center.Symbol)
	case Scaling:
		add(v.From.Symbol)
		add(v.To.Symbol)
	default:
		panic(unknownTransition(t))
	}
	return names
}
