package anim

import (
	"errors"
	"fmt"

	"github.com/inamate/motion/internal/geom"
)

// ErrUnknownSymbol is returned when an endpoint names an object the
// resolver has no state for. It always indicates an authoring mistake.
var ErrUnknownSymbol = errors.New("unknown symbol")

// Resolver answers symbolic endpoint lookups against the live state of other
// objects for the frame being rendered.
type Resolver interface {
	PositionOf(name string) (geom.Vec2, error)
	AngleOf(name string) (float64, error)
	ScaleOf(name string) (geom.Vec2, error)
}

// LiveState is what an object publishes after it has been rendered for a frame.
type LiveState struct {
	Position geom.Vec2 `json:"position"`
	Angle    float64   `json:"angle"`
	Scale    geom.Vec2 `json:"scale"`
}

// Snapshot is a per-frame map of object name to published state.
type Snapshot map[string]LiveState

func (s Snapshot) lookup(name string) (LiveState, error) {
	st, ok := s[name]
	if !ok {
		return LiveState{}, fmt.Errorf("%w: %q", ErrUnknownSymbol, name)
	}
	return st, nil
}

// PositionOf returns the named object's published position, or
// ErrUnknownSymbol if it has not been rendered this frame.
func (s Snapshot) PositionOf(name string) (geom.Vec2, error) {
	st, err := s.lookup(name)
	return st.Position, err
}

// AngleOf returns the named object's published rotation in radians.
func (s Snapshot) AngleOf(name string) (float64, error) {
	st, err := s.lookup(name)
	return st.Angle, err
}

// ScaleOf returns the named object's published absolute scale.
func (s Snapshot) ScaleOf(name string) (geom.Vec2, error) {
	st, err := s.lookup(name)
	return st.Scale, err
}

func resolvePoint(e Endpoint[geom.Vec2], r Resolver) (geom.Vec2, error) {
	if !e.IsRef() {
		return e.Value, nil
	}
	return r.PositionOf(e.Symbol)
}

func resolveAngle(e Endpoint[float64], r Resolver) (float64, error) {
	if !e.IsRef() {
		return e.Value, nil
	}
	return r.AngleOf(e.Symbol)
}

func resolveScale(e Endpoint[geom.Vec2], r Resolver) (geom.Vec2, error) {
	if !e.IsRef() {
		return e.Value, nil
	}
	return r.ScaleOf(e.Symbol)
}
