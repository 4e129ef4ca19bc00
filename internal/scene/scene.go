// Package scene compiles scene documents into objects with actions and renders
// them frame by frame onto a canvas.
package scene

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/inamate/motion/internal/anim"
	"github.com/inamate/motion/internal/canvas"
	"github.com/inamate/motion/internal/document"
	"github.com/inamate/motion/internal/geom"
)

// Canvas is the drawing surface a scene renders to.
type Canvas interface {
	anim.TextSurface
	SetFill(color string)
	SetStroke(color string)
	SetObject(id string)
	DrawPath(path []canvas.PathCommand)
}

// Scene is a compiled document.
type Scene struct {
	ID         string
	Name       string
	Width      int
	Height     int
	Background string
	FPS        int
	Frames     int

	objects []*Object // painter's order
	order   []*Object // resolution order
	byName  map[string]*Object
}

// Object is a drawable with its actions and live geometric state.
type Object struct {
	ID   string
	Name string
	Type document.ObjectType

	Origin geom.Vec2
	Anchor geom.Vec2
	Scale  geom.Vec2
	Base   anim.Multipliers

	Fill      string
	Stroke    string
	LineWidth float64
	Opacity   float64
	FontSize  float64

	Actions []*anim.Action
	State   *anim.GeometricState

	path  []canvas.PathCommand
	text  string
	align anim.Align
	angle float64
	deps  []string
}

// Objects returns the objects in painter's order.
func (s *Scene) Objects() []*Object {
	return s.objects
}

// Object looks up an object by its symbol name.
func (s *Scene) Object(name string) (*Object, bool) {
	obj, ok := s.byName[name]
	return obj, ok
}

// ResolutionOrder returns object names in the order their transitions are
// resolved each frame.
func (s *Scene) ResolutionOrder() []string {
	names := make([]string, len(s.order))
	for i, obj := range s.order {
		names[i] = obj.Name
	}
	return names
}

// RenderFrame draws frame onto c and returns the live state every object
// published for it.
//
// Resolution and drawing are separate passes: objects are first resolved in
// dependency order against a matrix-only surface, so that every symbolic
// endpoint reads state already computed for this frame, then drawn in
// painter's order replaying the resolved transforms. Each object is drawn
// inside its own Save/Restore.
func (s *Scene) RenderFrame(c Canvas, frame int) (anim.Snapshot, error) {
	if err := s.captureOrigins(frame); err != nil {
		return nil, err
	}

	snap, err := s.resolve(frame)
	if err != nil {
		return nil, err
	}

	if s.Background != "" {
		c.Save()
		c.SetObject("")
		c.SetFill(s.Background)
		c.SetStroke("")
		c.DrawPath(canvas.RectPath(float64(s.Width), float64(s.Height)))
		c.Restore()
	}

	for _, obj := range s.objects {
		c.Save()
		c.SetObject(obj.ID)
		textProgress, err := obj.place(c, frame, nil)
		if err != nil {
			c.Restore()
			return nil, fmt.Errorf("frame %d: object %s: %w", frame, obj.Name, err)
		}
		if obj.State.ShowAction {
			obj.draw(c, textProgress)
		} else {
			slog.Debug("object hidden by degenerate scale", "object", obj.Name, "frame", frame)
		}
		c.Restore()
	}
	return snap, nil
}

// resolve runs the resolution pass for frame and returns the published state.
func (s *Scene) resolve(frame int) (anim.Snapshot, error) {
	snap := make(anim.Snapshot, len(s.objects))
	for _, obj := range s.order {
		m := newMatrixSurface()
		if _, err := obj.place(m, frame, snap); err != nil {
			return nil, fmt.Errorf("frame %d: object %s: %w", frame, obj.Name, err)
		}
		snap[obj.Name] = anim.LiveState{
			Position: m.matrix.TransformPoint(obj.Anchor),
			Angle:    m.matrix.Angle(),
			Scale:    obj.State.CurrentScale,
		}
	}
	return snap, nil
}

// captureOrigins resolves the Start frame of every action that started
// before frame without capturing its ComputeFromOnce origin, earliest first,
// so the origin is the state at Start however playback reached frame.
func (s *Scene) captureOrigins(frame int) error {
	var starts []int
	seen := make(map[int]bool)
	for _, obj := range s.objects {
		for _, a := range obj.Actions {
			start := a.Frames.Start
			if start < frame && !seen[start] && a.Uncaptured() {
				seen[start] = true
				starts = append(starts, start)
			}
		}
	}
	sort.Ints(starts)

	for _, start := range starts {
		if _, err := s.resolve(start); err != nil {
			return err
		}
	}
	return nil
}

// place issues the object's style and transforms for frame. With a
// resolver it first recomputes every active action; without one it replays
// the transforms computed by the last resolving call. It returns the text
// reveal progress.
func (o *Object) place(s anim.Surface, frame int, r anim.Resolver) (float64, error) {
	g := o.State
	g.Reset()

	mul := o.Base
	for _, a := range o.Actions {
		if a.Active(frame) {
			a.ApplyEffects(&mul, frame)
		}
	}
	mul.Load(g)

	g.SetLineWidth(s, o.LineWidth)
	g.SetOpacity(s, o.Opacity)
	g.SetFontSize(s, o.FontSize)

	s.Translate(o.Origin)
	g.SetScale(s, o.Scale.X, o.Scale.Y)

	for _, a := range o.Actions {
		if !a.Active(frame) {
			continue
		}
		if r != nil {
			if err := a.Update(frame, r); err != nil {
				return 0, err
			}
		}
		a.Apply(s, g)
	}
	return mul.Text, nil
}

func (o *Object) draw(c Canvas, textProgress float64) {
	c.SetFill(o.Fill)
	c.SetStroke(o.Stroke)

	if o.Type == document.ObjectTypeText {
		anim.RevealText(c, o.text, geom.Vec2{}, o.align, o.angle, textProgress)
		return
	}
	c.DrawPath(o.path)
}

// matrixSurface tracks only the transform, for the resolution pass.
type matrixSurface struct {
	matrix geom.Matrix2D
	stack  []geom.Matrix2D
}

func newMatrixSurface() *matrixSurface {
	return &matrixSurface{matrix: geom.Identity()}
}

func (m *matrixSurface) Translate(v geom.Vec2)  { m.matrix = m.matrix.Translated(v) }
func (m *matrixSurface) Rotate(radians float64) { m.matrix = m.matrix.Rotated(radians) }
func (m *matrixSurface) Scale(s geom.Vec2)      { m.matrix = m.matrix.Scaled(s) }
func (m *matrixSurface) SetLineWidth(float64)   {}
func (m *matrixSurface) SetOpacity(float64)     {}
func (m *matrixSurface) SetFontSize(float64)    {}
func (m *matrixSurface) Save()                  { m.stack = append(m.stack, m.matrix) }

func (m *matrixSurface) Restore() {
	if len(m.stack) == 0 {
		return
	}
	m.matrix = m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
}
