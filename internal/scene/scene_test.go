package scene

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/inamate/motion/internal/anim"
	"github.com/inamate/motion/internal/canvas"
	"github.com/inamate/motion/internal/document"
	"github.com/inamate/motion/internal/geom"
)

func mustBuild(t *testing.T, doc *document.Document) *Scene {
	t.Helper()
	if err := doc.Normalize(); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	sc, err := Build(doc)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return sc
}

func mover(name string, origin geom.Vec2, start, end int, to interface{}) document.Object {
	return document.Object{
		Name:   name,
		Type:   document.ObjectTypeCircle,
		Origin: origin,
		Radius: 5,
		Style:  document.Style{Fill: "#ff0000"},
		Actions: []document.Action{{
			Start: start,
			End:   end,
			Transitions: []document.Transition{{
				Type: document.TransitionTranslation,
				From: []interface{}{0.0, 0.0},
				To:   to,
			}},
		}},
	}
}

func TestRenderFrameEndToEnd(t *testing.T) {
	sc := mustBuild(t, &document.Document{
		Scene:   document.Scene{Width: 200, Height: 100, Frames: 100},
		Objects: []document.Object{mover("ball", geom.Vec2{}, 1, 100, []interface{}{100.0, 0.0})},
	})

	snap, err := sc.RenderFrame(canvas.NewRecorder(), 50)
	if err != nil {
		t.Fatal(err)
	}

	p := snap["ball"].Position
	want := 100 * 49.0 / 99.0
	if math.Abs(p.X-want) > 1e-9 || math.Abs(p.Y) > 1e-9 {
		t.Errorf("position = %+v, want (%f, 0)", p, want)
	}
	if math.Abs(p.X-50) > 1 {
		t.Errorf("X = %f, want ~50", p.X)
	}
}

func TestReferencedObjectResolvesFirst(t *testing.T) {
	sc := mustBuild(t, &document.Document{
		Scene: document.Scene{Frames: 10},
		Objects: []document.Object{
			mover("ring", geom.Vec2{}, 1, 10, "ball"),
			mover("ball", geom.V(10, 20), 1, 10, []interface{}{100.0, 0.0}),
		},
	})

	if got := strings.Join(sc.ResolutionOrder(), ","); got != "ball,ring" {
		t.Errorf("ResolutionOrder = %s, want ball,ring", got)
	}
	if got := sc.Objects()[0].Name; got != "ring" {
		t.Errorf("first painted = %s, want ring", got)
	}

	snap, err := sc.RenderFrame(canvas.NewRecorder(), 10)
	if err != nil {
		t.Fatal(err)
	}
	ball, ring := snap["ball"].Position, snap["ring"].Position
	if !ball.ApproxEqual(geom.V(110, 20), 1e-9) {
		t.Errorf("ball = %+v, want (110, 20)", ball)
	}
	if !ring.ApproxEqual(ball, 1e-9) {
		t.Errorf("ring = %+v, want ball position %+v", ring, ball)
	}
}

func TestBuildRejectsCycle(t *testing.T) {
	doc := &document.Document{
		Objects: []document.Object{
			mover("a", geom.Vec2{}, 1, 10, "b"),
			mover("b", geom.Vec2{}, 1, 10, "a"),
		},
	}
	if err := doc.Normalize(); err != nil {
		t.Fatal(err)
	}
	if _, err := Build(doc); !errors.Is(err, ErrCycle) {
		t.Errorf("Build err = %v, want ErrCycle", err)
	}
}

func TestBuildRejectsSelfReference(t *testing.T) {
	doc := &document.Document{
		Objects: []document.Object{mover("a", geom.Vec2{}, 1, 10, "a")},
	}
	if err := doc.Normalize(); err != nil {
		t.Fatal(err)
	}
	if _, err := Build(doc); !errors.Is(err, ErrCycle) {
		t.Errorf("Build err = %v, want ErrCycle", err)
	}
}

func TestBuildRejectsUnknownSymbol(t *testing.T) {
	doc := &document.Document{
		Objects: []document.Object{mover("a", geom.Vec2{}, 1, 10, "ghost")},
	}
	if err := doc.Normalize(); err != nil {
		t.Fatal(err)
	}
	if _, err := Build(doc); !errors.Is(err, anim.ErrUnknownSymbol) {
		t.Errorf("Build err = %v, want ErrUnknownSymbol", err)
	}
}

func TestBuildRejectsBadEndpoint(t *testing.T) {
	doc := &document.Document{
		Objects: []document.Object{mover("a", geom.Vec2{}, 1, 10, []interface{}{1.0})},
	}
	if err := doc.Normalize(); err != nil {
		t.Fatal(err)
	}
	if _, err := Build(doc); err == nil {
		t.Error("expected error for one-component point")
	}
}

func scaler(name string, start, end int, from, to interface{}, once bool) document.Object {
	return document.Object{
		Name:   name,
		Type:   document.ObjectTypeRect,
		Width:  10,
		Height: 10,
		Actions: []document.Action{{
			Start: start,
			End:   end,
			Transitions: []document.Transition{{
				Type:            document.TransitionScaling,
				From:            from,
				To:              to,
				ComputeFromOnce: once,
			}},
		}},
	}
}

func TestComputeFromOnceCapturesOnFirstFrame(t *testing.T) {
	newScene := func() *Scene {
		return mustBuild(t, &document.Document{
			Scene: document.Scene{Frames: 10},
			Objects: []document.Object{
				scaler("leader", 1, 10, 1.0, 3.0, false),
				scaler("follower", 5, 10, "leader", 1.0, true),
			},
		})
	}

	leaderAt := func(frame int) float64 { return 1 + 2*float64(frame-1)/9 }
	followerAt := func(from float64, frame int) float64 {
		t := float64(frame-5) / 5
		return from + (1-from)*t
	}

	// Played from the action's first frame, the start scale stays pinned.
	sc := newScene()
	rec := canvas.NewRecorder()
	for _, frame := range []int{5, 8} {
		rec.Reset()
		snap, err := sc.RenderFrame(rec, frame)
		if err != nil {
			t.Fatal(err)
		}
		want := followerAt(leaderAt(5), frame)
		if got := snap["follower"].Scale; !got.ApproxEqual(geom.V(want, want), 1e-9) {
			t.Errorf("frame %d: follower scale = %+v, want %f", frame, got, want)
		}
	}

	// A fresh scene rendered straight at frame 8 captures the same origin
	// as sequential playback through the action's first frame.
	played := newScene()
	var want anim.LiveState
	for frame := 1; frame <= 8; frame++ {
		rec.Reset()
		snap, err := played.RenderFrame(rec, frame)
		if err != nil {
			t.Fatal(err)
		}
		want = snap["follower"]
	}

	seeked := newScene()
	snap, err := seeked.RenderFrame(canvas.NewRecorder(), 8)
	if err != nil {
		t.Fatal(err)
	}
	if got := snap["follower"].Scale; !got.ApproxEqual(want.Scale, 1e-9) {
		t.Errorf("seeked follower scale = %+v, played = %+v", got, want.Scale)
	}
	expected := followerAt(leaderAt(5), 8)
	if !want.Scale.ApproxEqual(geom.V(expected, expected), 1e-9) {
		t.Errorf("follower scale = %+v, want %f", want.Scale, expected)
	}
}

func TestAppearScaleStaysHiddenWithScalingTransition(t *testing.T) {
	obj := scaler("box", 1, 10, 1.0, 2.0, false)
	obj.Actions[0].Appear = "scale"
	sc := mustBuild(t, &document.Document{
		Scene:   document.Scene{Frames: 10},
		Objects: []document.Object{obj},
	})
	id := sc.Objects()[0].ID

	rec := canvas.NewRecorder()
	if _, err := sc.RenderFrame(rec, 1); err != nil {
		t.Fatal(err)
	}
	for _, cmd := range rec.Commands() {
		if cmd.Op == canvas.OpPath && cmd.ObjectID == id {
			t.Fatalf("expected box hidden at zero appear scale, drew %v", cmd.Transform)
		}
	}
	if sc.Objects()[0].State.ShowAction {
		t.Error("ShowAction = true, want false")
	}
}

func TestAppearScaleHidesOnFirstFrame(t *testing.T) {
	obj := mover("ball", geom.Vec2{}, 1, 10, []interface{}{10.0, 0.0})
	obj.Actions[0].Appear = "scale"
	sc := mustBuild(t, &document.Document{
		Scene:   document.Scene{Frames: 10},
		Objects: []document.Object{obj},
	})
	id := sc.Objects()[0].ID

	drew := func(frame int) bool {
		rec := canvas.NewRecorder()
		if _, err := sc.RenderFrame(rec, frame); err != nil {
			t.Fatal(err)
		}
		for _, cmd := range rec.Commands() {
			if cmd.Op == canvas.OpPath && cmd.ObjectID == id {
				return true
			}
		}
		return false
	}

	if drew(1) {
		t.Error("expected object hidden at zero scale")
	}
	if !drew(2) {
		t.Error("expected object drawn once scale is non-zero")
	}
}

func TestRenderFrameBalancesSaveRestore(t *testing.T) {
	sc := mustBuild(t, document.NewSampleDocument())
	rec := canvas.NewRecorder()

	for frame := 1; frame <= sc.Frames; frame += 7 {
		rec.Reset()
		if _, err := sc.RenderFrame(rec, frame); err != nil {
			t.Fatalf("frame %d: %v", frame, err)
		}
		if rec.Depth() != 0 {
			t.Fatalf("frame %d: depth = %d, want 0", frame, rec.Depth())
		}

		saves, restores := 0, 0
		for _, cmd := range rec.Commands() {
			switch cmd.Op {
			case canvas.OpSave:
				saves++
			case canvas.OpRestore:
				restores++
			}
		}
		if saves != restores {
			t.Errorf("frame %d: %d saves, %d restores", frame, saves, restores)
		}
	}
}

func TestSampleTitleRevealsThenShowsFully(t *testing.T) {
	sc := mustBuild(t, document.NewSampleDocument())

	clips := func(frame int) int {
		rec := canvas.NewRecorder()
		if _, err := sc.RenderFrame(rec, frame); err != nil {
			t.Fatal(err)
		}
		n := 0
		for _, cmd := range rec.Commands() {
			if cmd.Op == canvas.OpClip {
				n++
			}
		}
		return n
	}

	if clips(10) != 1 {
		t.Error("expected title clipped mid reveal")
	}
	if clips(40) != 0 {
		t.Error("expected title unclipped after reveal")
	}
}
