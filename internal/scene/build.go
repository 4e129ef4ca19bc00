package scene

import (
	"errors"
	"fmt"
	"strings"

	"github.com/inamate/motion/internal/anim"
	"github.com/inamate/motion/internal/canvas"
	"github.com/inamate/motion/internal/document"
	"github.com/inamate/motion/internal/easing"
	"github.com/inamate/motion/internal/geom"
)

// ErrCycle is returned when objects reference each other's live state in a loop.
var ErrCycle = errors.New("symbol dependency cycle")

// Build compiles a normalized document into a renderable scene. Every
// symbolic endpoint must name an object in the document and the references
// must form no cycle, since each frame resolves referenced objects first.
func Build(doc *document.Document) (*Scene, error) {
	sc := &Scene{
		ID:         doc.Scene.ID,
		Name:       doc.Scene.Name,
		Width:      doc.Scene.Width,
		Height:     doc.Scene.Height,
		Background: doc.Scene.Background,
		FPS:        doc.Scene.FPS,
		Frames:     doc.Scene.Frames,
		byName:     make(map[string]*Object, len(doc.Objects)),
	}

	for i := range doc.Objects {
		obj, err := buildObject(&doc.Objects[i])
		if err != nil {
			return nil, err
		}
		sc.objects = append(sc.objects, obj)
		sc.byName[obj.Name] = obj
	}

	for _, obj := range sc.objects {
		for _, dep := range obj.deps {
			if _, ok := sc.byName[dep]; !ok {
				return nil, fmt.Errorf("object %s: %w: %q", obj.Name, anim.ErrUnknownSymbol, dep)
			}
		}
	}

	order, err := resolutionOrder(sc.objects)
	if err != nil {
		return nil, err
	}
	sc.order = order

	return sc, nil
}

func buildObject(src *document.Object) (*Object, error) {
	obj := &Object{
		ID:        src.ID,
		Name:      src.SymbolName(),
		Type:      src.Type,
		Origin:    src.Origin,
		Anchor:    src.Anchor,
		Scale:     geom.One,
		Base:      anim.UnitMultipliers(),
		Fill:      src.Style.Fill,
		Stroke:    src.Style.Stroke,
		LineWidth: src.Style.LineWidth,
		Opacity:   1,
		FontSize:  src.Style.FontSize,
		State:     anim.NewGeometricState(),
	}
	if src.Scale != nil {
		obj.Scale = *src.Scale
	}
	if src.Style.Opacity != nil {
		obj.Opacity = *src.Style.Opacity
	}
	if m := src.Multipliers; m != nil {
		if m.Opacity != nil {
			obj.Base.Opacity = *m.Opacity
		}
		if m.LineWidth != nil {
			obj.Base.LineWidth = *m.LineWidth
		}
		if m.Scale != nil {
			obj.Base.Scale = *m.Scale
		}
	}

	switch src.Type {
	case document.ObjectTypeRect:
		obj.path = canvas.RectPath(src.Width, src.Height)
	case document.ObjectTypeCircle:
		obj.path = canvas.EllipsePath(geom.Vec2{}, src.Radius, src.Radius)
	case document.ObjectTypeEllipse:
		obj.path = canvas.EllipsePath(geom.Vec2{}, src.RX, src.RY)
	case document.ObjectTypeLine:
		obj.path = canvas.PolylinePath(src.Points, false)
	case document.ObjectTypePolygon:
		obj.path = canvas.PolylinePath(src.Points, true)
	case document.ObjectTypeText:
		obj.text = src.Text
		obj.align = anim.Align{H: anim.ParseHAlign(src.HAlign), V: anim.ParseVAlign(src.VAlign)}
		obj.angle = src.Angle
	default:
		return nil, fmt.Errorf("object %s: unknown type %q", src.ID, src.Type)
	}

	seen := make(map[string]bool)
	for i := range src.Actions {
		action, err := buildAction(&src.Actions[i])
		if err != nil {
			return nil, fmt.Errorf("object %s: %w", obj.Name, err)
		}
		obj.Actions = append(obj.Actions, action)

		for _, dep := range action.Symbols() {
			if !seen[dep] {
				seen[dep] = true
				obj.deps = append(obj.deps, dep)
			}
		}
	}

	return obj, nil
}

func buildAction(src *document.Action) (*anim.Action, error) {
	ease, err := easing.ByName(src.Easing)
	if err != nil {
		return nil, fmt.Errorf("action %s: %w", src.ID, err)
	}

	transitions := make([]anim.Transition, 0, len(src.Transitions))
	for i, t := range src.Transitions {
		tr, err := buildTransition(t)
		if err != nil {
			return nil, fmt.Errorf("action %s transition %d: %w", src.ID, i, err)
		}
		transitions = append(transitions, tr)
	}

	action := anim.NewAction(src.ID, anim.FrameRange{Start: src.Start, End: src.End}, ease, transitions...)
	if src.Keep != nil {
		action.Keep = *src.Keep
	}

	if src.Appear != "" {
		e, err := anim.ParseEffect(src.Appear, false)
		if err != nil {
			return nil, fmt.Errorf("action %s appear: %w", src.ID, err)
		}
		action.Effects = append(action.Effects, e)
	}
	if src.Disappear != "" {
		e, err := anim.ParseEffect(src.Disappear, true)
		if err != nil {
			return nil, fmt.Errorf("action %s disappear: %w", src.ID, err)
		}
		action.Effects = append(action.Effects, e)
	}

	return action, nil
}

func buildTransition(t document.Transition) (anim.Transition, error) {
	switch document.TransitionType(strings.ToLower(string(t.Type))) {
	case document.TransitionTranslation:
		from, err := parsePoint(t.From, geom.Vec2{})
		if err != nil {
			return nil, fmt.Errorf("from: %w", err)
		}
		to, err := parsePoint(t.To, geom.Vec2{})
		if err != nil {
			return nil, fmt.Errorf("to: %w", err)
		}
		return anim.Translation{From: from, To: to}, nil

	case document.TransitionRotation:
		from, err := parseAngle(t.From, 0)
		if err != nil {
			return nil, fmt.Errorf("from: %w", err)
		}
		to, err := parseAngle(t.To, 0)
		if err != nil {
			return nil, fmt.Errorf("to: %w", err)
		}
		center, err := parsePoint(t.Center, geom.Vec2{})
		if err != nil {
			return nil, fmt.Errorf("center: %w", err)
		}
		return anim.Rotation{From: from, To: to, Center: center}, nil

	case document.TransitionScaling:
		from, err := parseScale(t.From, geom.One)
		if err != nil {
			return nil, fmt.Errorf("from: %w", err)
		}
		to, err := parseScale(t.To, geom.One)
		if err != nil {
			return nil, fmt.Errorf("to: %w", err)
		}
		return anim.Scaling{From: from, To: to, ComputeFromOnce: t.ComputeFromOnce}, nil

	default:
		return nil, fmt.Errorf("unknown transition type %q", t.Type)
	}
}

// resolutionOrder sorts objects so every object comes after the objects it
// references, keeping document order among independent objects.
func resolutionOrder(objects []*Object) ([]*Object, error) {
	index := make(map[string]int, len(objects))
	for i, obj := range objects {
		index[obj.Name] = i
	}

	const (
		unvisited = iota
		visiting
		done
	)
	mark := make([]int, len(objects))
	order := make([]*Object, 0, len(objects))

	var visit func(i int, path []string) error
	visit = func(i int, path []string) error {
		switch mark[i] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("%w: %s", ErrCycle, strings.Join(append(path, objects[i].Name), " -> "))
		}

		mark[i] = visiting
		path = append(path, objects[i].Name)
		for _, dep := range objects[i].deps {
			if err := visit(index[dep], path); err != nil {
				return err
			}
		}
		mark[i] = done
		order = append(order, objects[i])
		return nil
	}

	for i := range objects {
		if err := visit(i, nil); err != nil {
			return nil, err
		}
	}
	return order, nil
}
