//go:build js && wasm

package main

import (
	"encoding/json"
	"strings"
	"syscall/js"

	"github.com/inamate/motion/internal/document"
	"github.com/inamate/motion/internal/scene"
)

var player *scene.Player

func main() {
	player = scene.NewPlayer(nil)

	// Create the player API object
	motion := js.Global().Get("Object").New()

	// --- Commands (frontend → player) ---
	motion.Set("loadDocument", js.FuncOf(loadDocument))
	motion.Set("updateDocument", js.FuncOf(updateDocument))
	motion.Set("loadSampleDocument", js.FuncOf(loadSampleDocument))
	motion.Set("setPlayhead", js.FuncOf(setPlayhead))
	motion.Set("play", js.FuncOf(play))
	motion.Set("pause", js.FuncOf(pause))
	motion.Set("togglePlay", js.FuncOf(togglePlay))
	motion.Set("tick", js.FuncOf(tick))

	// --- Queries (frontend ← player) ---
	motion.Set("render", js.FuncOf(render))
	motion.Set("getPlaybackState", js.FuncOf(getPlaybackState))
	motion.Set("getLiveState", js.FuncOf(getLiveState))
	motion.Set("getFrame", js.FuncOf(getFrame))
	motion.Set("isPlaying", js.FuncOf(isPlaying))
	motion.Set("getFPS", js.FuncOf(getFPS))
	motion.Set("getTotalFrames", js.FuncOf(getTotalFrames))

	// Register on global scope
	js.Global().Set("motionPlayer", motion)

	// Signal that WASM is ready
	js.Global().Set("motionWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

func errorResult(err error) js.Value {
	return js.ValueOf(map[string]interface{}{"error": err.Error()})
}

func okResult() js.Value {
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func buildFromArgs(args []js.Value) (*scene.Scene, js.Value, bool) {
	if len(args) < 1 {
		return nil, js.ValueOf(map[string]interface{}{"error": "missing document JSON"}), false
	}

	doc, err := document.Decode(strings.NewReader(args[0].String()), document.FormatJSON)
	if err != nil {
		return nil, errorResult(err), false
	}
	sc, err := scene.Build(doc)
	if err != nil {
		return nil, errorResult(err), false
	}
	return sc, js.Undefined(), true
}

// --- Command Handlers ---

func loadDocument(this js.Value, args []js.Value) interface{} {
	sc, res, ok := buildFromArgs(args)
	if !ok {
		return res
	}
	player.Load(sc)
	return okResult()
}

// updateDocument swaps the document but keeps the playhead.
func updateDocument(this js.Value, args []js.Value) interface{} {
	sc, res, ok := buildFromArgs(args)
	if !ok {
		return res
	}
	player.Update(sc)
	return okResult()
}

func loadSampleDocument(this js.Value, args []js.Value) interface{} {
	sc, err := scene.Build(document.NewSampleDocument())
	if err != nil {
		return errorResult(err)
	}
	player.Load(sc)
	return okResult()
}

func setPlayhead(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	player.SetPlayhead(args[0].Int())
	return nil
}

func play(this js.Value, args []js.Value) interface{} {
	player.Play()
	return nil
}

func pause(this js.Value, args []js.Value) interface{} {
	player.Pause()
	return nil
}

func togglePlay(this js.Value, args []js.Value) interface{} {
	player.TogglePlay()
	return nil
}

func tick(this js.Value, args []js.Value) interface{} {
	out, err := player.Tick()
	if err != nil {
		return errorResult(err)
	}
	return js.ValueOf(out)
}

// --- Query Handlers ---

func render(this js.Value, args []js.Value) interface{} {
	out, err := player.Render()
	if err != nil {
		return errorResult(err)
	}
	return js.ValueOf(out)
}

func getPlaybackState(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(player.PlaybackState())
}

func getLiveState(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf("{}")
	}
	st, ok := player.LiveState(args[0].String())
	if !ok {
		return js.ValueOf("{}")
	}
	data, _ := json.Marshal(st)
	return js.ValueOf(string(data))
}

func getFrame(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(player.Frame())
}

func isPlaying(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(player.IsPlaying())
}

func getFPS(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(player.FPS())
}

func getTotalFrames(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(player.TotalFrames())
}
