package scene

import (
	"encoding/json"

	"github.com/inamate/motion/internal/anim"
	"github.com/inamate/motion/internal/canvas"
)

// Player owns a scene and its playback state. Frames are numbered from 1
// to the scene's frame count.
type Player struct {
	scene    *Scene
	recorder *canvas.Recorder

	// Playback state
	frame   int
	playing bool

	// Cached output of the last render
	last     string
	snapshot anim.Snapshot
	dirty    bool
}

// NewPlayer creates a paused player positioned on the first frame.
func NewPlayer(sc *Scene) *Player {
	p := &Player{recorder: canvas.NewRecorder()}
	p.Load(sc)
	return p
}

// Load swaps in a scene and rewinds.
func (p *Player) Load(sc *Scene) {
	p.scene = sc
	p.frame = 1
	p.playing = false
	p.dirty = true
}

// Update swaps in a rebuilt scene while preserving playback state.
// Used when the document changes during playback.
func (p *Player) Update(sc *Scene) {
	p.scene = sc
	p.frame = p.clamp(p.frame)
	p.dirty = true
}

// Scene returns the loaded scene.
func (p *Player) Scene() *Scene {
	return p.scene
}

// SetPlayhead sets the current frame, clamped to the scene.
func (p *Player) SetPlayhead(frame int) {
	frame = p.clamp(frame)
	if p.frame != frame {
		p.frame = frame
		p.dirty = true
	}
}

func (p *Player) clamp(frame int) int {
	if frame < 1 {
		frame = 1
	}
	if frame > p.TotalFrames() {
		frame = p.TotalFrames()
	}
	return frame
}

// Play starts playback.
func (p *Player) Play() {
	p.playing = true
}

// Pause stops playback.
func (p *Player) Pause() {
	p.playing = false
}

// TogglePlay toggles play/pause state.
func (p *Player) TogglePlay() {
	p.playing = !p.playing
}

// Tick advances the frame if playing and returns draw commands.
func (p *Player) Tick() (string, error) {
	if p.playing {
		p.frame = p.frame%p.TotalFrames() + 1
		p.dirty = true
	}
	return p.Render()
}

// Render draws the current frame and returns its draw commands as JSON.
func (p *Player) Render() (string, error) {
	if p.scene == nil {
		return "[]", nil
	}
	if !p.dirty {
		return p.last, nil
	}

	p.recorder.Reset()
	snap, err := p.scene.RenderFrame(p.recorder, p.frame)
	if err != nil {
		return "[]", err
	}
	p.snapshot = snap

	out, err := p.recorder.JSON()
	if err != nil {
		return "[]", err
	}
	p.last = out
	p.dirty = false
	return out, nil
}

// Commands returns the draw commands of the last render.
func (p *Player) Commands() []canvas.DrawCommand {
	return p.recorder.Commands()
}

// LiveState returns the state an object published in the last render.
func (p *Player) LiveState(name string) (anim.LiveState, bool) {
	st, ok := p.snapshot[name]
	return st, ok
}

// PlaybackState returns the current playback state as JSON.
func (p *Player) PlaybackState() string {
	data, _ := json.Marshal(map[string]interface{}{
		"frame":       p.frame,
		"playing":     p.playing,
		"fps":         p.FPS(),
		"totalFrames": p.TotalFrames(),
	})
	return string(data)
}

// Frame returns the current frame number.
func (p *Player) Frame() int {
	return p.frame
}

// IsPlaying returns whether playback is active.
func (p *Player) IsPlaying() bool {
	return p.playing
}

// FPS returns the frames per second.
func (p *Player) FPS() int {
	if p.scene == nil || p.scene.FPS <= 0 {
		return 24
	}
	return p.scene.FPS
}

// TotalFrames returns the total number of frames.
func (p *Player) TotalFrames() int {
	if p.scene == nil || p.scene.Frames <= 0 {
		return 1
	}
	return p.scene.Frames
}
