package preview

import "encoding/json"

// Message is the envelope for every websocket message in both directions.
type Message struct {
	Type     string          `json:"type"`
	SceneID  string          `json:"sceneId,omitempty"`
	ClientID string          `json:"clientId,omitempty"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}

const (
	// Server to client
	TypeWelcome = "welcome"
	TypeFrame   = "frame"
	TypeState   = "state"
	TypeReload  = "scene.reload"
	TypeError   = "error"

	// Client to server
	TypePlay   = "play"
	TypePause  = "pause"
	TypeToggle = "toggle"
	TypeSeek   = "seek"
)

type WelcomePayload struct {
	ClientID string          `json:"clientId"`
	Scene    SceneSummary    `json:"scene"`
	State    json.RawMessage `json:"state"`
}

// FramePayload carries the draw commands for one frame.
type FramePayload struct {
	Frame    int             `json:"frame"`
	Commands json.RawMessage `json:"commands"`
}

type SeekPayload struct {
	Frame int `json:"frame"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}
