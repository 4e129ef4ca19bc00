package canvas

import (
	"encoding/json"
)

// Draw command operations.
const (
	OpSave    = "save"
	OpRestore = "restore"
	OpClip    = "clip"
	OpPath    = "path"
	OpText    = "text"
)

// DrawCommand represents a single drawing operation for the frontend to execute.
// The frontend receives a list of these and executes them on a Canvas2D context.
type DrawCommand struct {
	Op          string        `json:"op"`                    // Operation: "save", "restore", "clip", "path", "text"
	ObjectID    string        `json:"objectId,omitempty"`    // For hit correlation
	Transform   []float64     `json:"transform,omitempty"`   // [a, b, c, d, e, f] affine matrix
	Path        []PathCommand `json:"path,omitempty"`        // Path data for "path" and "clip" ops
	Fill        string        `json:"fill,omitempty"`        // Fill color
	Stroke      string        `json:"stroke,omitempty"`      // Stroke color
	StrokeWidth float64       `json:"strokeWidth,omitempty"` // Stroke width
	Opacity     float64       `json:"opacity,omitempty"`     // Global alpha
	Text        string        `json:"text,omitempty"`        // Text for "text" ops
	X           float64       `json:"x,omitempty"`           // Text anchor, local space
	Y           float64       `json:"y,omitempty"`
	FontSize    float64       `json:"fontSize,omitempty"`
	Align       string        `json:"align,omitempty"`    // left, center, right
	Baseline    string        `json:"baseline,omitempty"` // top, middle, alphabetic, bottom
}

// PathCommand represents a single path segment for rendering.
// Format matches Canvas2D: ["M", x, y], ["L", x, y], ["C", x1, y1, x2, y2, x, y], etc.
type PathCommand []interface{}

// ToJSON serializes draw commands to JSON.
func ToJSON(commands []DrawCommand) (string, error) {
	if commands == nil {
		return "[]", nil
	}
	data, err := json.Marshal(commands)
	if err != nil {
		return "[]", err
	}
	return string(data), nil
}
