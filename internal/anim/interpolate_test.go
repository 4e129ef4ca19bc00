package anim

import (
	"errors"
	"math"
	"testing"

	"github.com/inamate/motion/internal/geom"
)

func TestTranslationLerp(t *testing.T) {
	ip := NewInterpolator(Translation{From: Lit(geom.V(0, 0)), To: Lit(geom.V(10, 0))})

	for _, tc := range []struct {
		t    float64
		want geom.Vec2
	}{
		{0, geom.V(0, 0)},
		{0.5, geom.V(5, 0)},
		{1, geom.V(10, 0)},
	} {
		if err := ip.Update(tc.t, false, nil); err != nil {
			t.Fatal(err)
		}
		got := ip.Transforms()[0].(*InternalTranslation).By
		if !got.ApproxEqual(tc.want, 1e-12) {
			t.Errorf("t=%g: By = %+v, want %+v", tc.t, got, tc.want)
		}
	}
}

func TestRotationLerp(t *testing.T) {
	ip := NewInterpolator(Rotation{From: Lit(0.0), To: Lit(math.Pi), Center: Lit(geom.V(0, 0))})

	if err := ip.Update(0.25, false, nil); err != nil {
		t.Fatal(err)
	}
	rot := ip.Transforms()[0].(*InternalRotation)
	if math.Abs(rot.Angle-math.Pi/4) > 1e-12 {
		t.Errorf("Angle = %f, want ~%f", rot.Angle, math.Pi/4)
	}
	if rot.Center != (geom.Vec2{}) {
		t.Errorf("Center = %+v, want origin", rot.Center)
	}
}

func TestSlotsFollowDeclarationOrder(t *testing.T) {
	ip := NewInterpolator(
		Scaling{From: Lit(geom.One), To: Lit(geom.V(2, 2))},
		Translation{From: Lit(geom.V(0, 0)), To: Lit(geom.V(4, 4))},
		Rotation{From: Lit(0.0), To: Lit(1.0)},
	)

	tr := ip.Transforms()
	if len(tr) != 3 {
		t.Fatalf("len(Transforms) = %d, want 3", len(tr))
	}
	if _, ok := tr[0].(*InternalScaling); !ok {
		t.Errorf("slot 0 = %T, want *InternalScaling", tr[0])
	}
	if _, ok := tr[1].(*InternalTranslation); !ok {
		t.Errorf("slot 1 = %T, want *InternalTranslation", tr[1])
	}
	if _, ok := tr[2].(*InternalRotation); !ok {
		t.Errorf("slot 2 = %T, want *InternalRotation", tr[2])
	}
	if tr[0].(*InternalScaling).Scale != geom.One {
		t.Errorf("default scale = %+v, want (1, 1)", tr[0].(*InternalScaling).Scale)
	}
}

func TestSymbolicEndpointsTrackLiveState(t *testing.T) {
	snap := Snapshot{"target": {Position: geom.V(10, 0)}}
	ip := NewInterpolator(Translation{From: Lit(geom.V(0, 0)), To: Ref[geom.Vec2]("target")})

	if err := ip.Update(0.5, true, snap); err != nil {
		t.Fatal(err)
	}
	if got := ip.Transforms()[0].(*InternalTranslation).By; !got.ApproxEqual(geom.V(5, 0), 1e-12) {
		t.Errorf("By = %+v, want (5, 0)", got)
	}

	snap["target"] = LiveState{Position: geom.V(20, 10)}
	if err := ip.Update(0.5, false, snap); err != nil {
		t.Fatal(err)
	}
	if got := ip.Transforms()[0].(*InternalTranslation).By; !got.ApproxEqual(geom.V(10, 5), 1e-12) {
		t.Errorf("By after target moved = %+v, want (10, 5)", got)
	}
}

func TestRotationCenterResolvedEveryFrame(t *testing.T) {
	snap := Snapshot{"pivot": {Position: geom.V(1, 1)}, "spin": {Angle: 2}}
	ip := NewInterpolator(Rotation{From: Lit(0.0), To: Ref[float64]("spin"), Center: Ref[geom.Vec2]("pivot")})

	ip.Update(1, true, snap)
	snap["pivot"] = LiveState{Position: geom.V(5, 6)}
	ip.Update(1, false, snap)

	rot := ip.Transforms()[0].(*InternalRotation)
	if rot.Center != geom.V(5, 6) {
		t.Errorf("Center = %+v, want (5, 6)", rot.Center)
	}
	if rot.Angle != 2 {
		t.Errorf("Angle = %f, want 2", rot.Angle)
	}
}

func TestComputeFromOnceFreezesOrigin(t *testing.T) {
	snap := Snapshot{"ref": {Scale: geom.V(2, 2)}}
	ip := NewInterpolator(Scaling{From: Ref[geom.Vec2]("ref"), To: Lit(geom.V(4, 4)), ComputeFromOnce: true})

	if err := ip.Update(0, true, snap); err != nil {
		t.Fatal(err)
	}
	snap["ref"] = LiveState{Scale: geom.V(100, 100)}

	if err := ip.Update(0.5, false, snap); err != nil {
		t.Fatal(err)
	}
	got := ip.Transforms()[0].(*InternalScaling).Scale
	if !got.ApproxEqual(geom.V(3, 3), 1e-12) {
		t.Errorf("Scale = %+v, want (3, 3) from the cached origin", got)
	}
}

func TestScalingWithoutComputeFromOnceTracksOrigin(t *testing.T) {
	snap := Snapshot{"ref": {Scale: geom.V(2, 2)}}
	ip := NewInterpolator(Scaling{From: Ref[geom.Vec2]("ref"), To: Lit(geom.V(4, 4))})

	ip.Update(0, true, snap)
	snap["ref"] = LiveState{Scale: geom.V(0, 0)}
	ip.Update(0.5, false, snap)

	got := ip.Transforms()[0].(*InternalScaling).Scale
	if !got.ApproxEqual(geom.V(2, 2), 1e-12) {
		t.Errorf("Scale = %+v, want (2, 2)", got)
	}
}

func TestUnknownSymbolIsAnError(t *testing.T) {
	ip := NewInterpolator(
		Translation{From: Lit(geom.V(0, 0)), To: Lit(geom.V(1, 1))},
		Rotation{From: Ref[float64]("ghost")},
	)

	err := ip.Update(0.5, false, Snapshot{})
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("err = %v, want ErrUnknownSymbol", err)
	}
}

func TestSymbols(t *testing.T) {
	got := Symbols(Rotation{From: Ref[float64]("a"), To: Lit(1.0), Center: Ref[geom.Vec2]("b")})
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Symbols = %v, want [a b]", got)
	}
}
