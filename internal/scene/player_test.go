package scene

import (
	"encoding/json"
	"testing"

	"github.com/inamate/motion/internal/document"
	"github.com/inamate/motion/internal/geom"
)

func newTestPlayer(t *testing.T) *Player {
	t.Helper()
	sc, err := Build(document.NewSampleDocument())
	if err != nil {
		t.Fatal(err)
	}
	return NewPlayer(sc)
}

func TestPlayerClampsPlayhead(t *testing.T) {
	p := newTestPlayer(t)

	p.SetPlayhead(0)
	if p.Frame() != 1 {
		t.Errorf("Frame = %d, want 1", p.Frame())
	}
	p.SetPlayhead(10000)
	if p.Frame() != p.TotalFrames() {
		t.Errorf("Frame = %d, want %d", p.Frame(), p.TotalFrames())
	}
}

func TestPlayerTickWraps(t *testing.T) {
	p := newTestPlayer(t)
	p.SetPlayhead(p.TotalFrames())

	if _, err := p.Tick(); err != nil {
		t.Fatal(err)
	}
	if p.Frame() != p.TotalFrames() {
		t.Errorf("paused Tick moved to %d", p.Frame())
	}

	p.Play()
	if _, err := p.Tick(); err != nil {
		t.Fatal(err)
	}
	if p.Frame() != 1 {
		t.Errorf("Frame after wrap = %d, want 1", p.Frame())
	}
}

func TestPlayerRender(t *testing.T) {
	p := newTestPlayer(t)

	out, err := p.Render()
	if err != nil {
		t.Fatal(err)
	}
	var cmds []map[string]interface{}
	if err := json.Unmarshal([]byte(out), &cmds); err != nil {
		t.Fatalf("render output is not JSON: %v", err)
	}
	if len(cmds) == 0 {
		t.Fatal("expected draw commands")
	}

	again, err := p.Render()
	if err != nil {
		t.Fatal(err)
	}
	if again != out {
		t.Error("expected cached render for an unchanged frame")
	}
}

func TestPlayerPlaybackState(t *testing.T) {
	p := newTestPlayer(t)
	p.TogglePlay()
	p.SetPlayhead(12)

	var state struct {
		Frame       int  `json:"frame"`
		Playing     bool `json:"playing"`
		FPS         int  `json:"fps"`
		TotalFrames int  `json:"totalFrames"`
	}
	if err := json.Unmarshal([]byte(p.PlaybackState()), &state); err != nil {
		t.Fatal(err)
	}
	if state.Frame != 12 || !state.Playing || state.FPS != 24 || state.TotalFrames != 96 {
		t.Errorf("PlaybackState = %+v", state)
	}
}

func TestPlayerLiveState(t *testing.T) {
	p := newTestPlayer(t)
	if _, ok := p.LiveState("ball"); ok {
		t.Error("expected no live state before the first render")
	}

	p.SetPlayhead(72)
	if _, err := p.Render(); err != nil {
		t.Fatal(err)
	}
	ball, ok := p.LiveState("ball")
	if !ok {
		t.Fatal("missing ball state")
	}
	if !ball.Position.ApproxEqual(geom.V(1120, 360), 1e-9) {
		t.Errorf("ball = %+v, want (1120, 360)", ball.Position)
	}
	ring, _ := p.LiveState("ring")
	if ring.Position.X <= 160 {
		t.Errorf("ring X = %f, want it to chase the ball", ring.Position.X)
	}
}
