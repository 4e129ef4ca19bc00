package document

import "github.com/inamate/motion/internal/geom"

// Document is an authored animation: a scene header and the objects drawn in it.
// Objects are listed back to front.
type Document struct {
	Scene   Scene    `json:"scene" yaml:"scene"`
	Objects []Object `json:"objects" yaml:"objects"`
}

type Scene struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Width      int    `json:"width" yaml:"width"`
	Height     int    `json:"height" yaml:"height"`
	Background string `json:"background" yaml:"background"`
	FPS        int    `json:"fps" yaml:"fps"`
	Frames     int    `json:"frames" yaml:"frames"`
}

type ObjectType string

const (
	ObjectTypeRect    ObjectType = "rect"
	ObjectTypeCircle  ObjectType = "circle"
	ObjectTypeEllipse ObjectType = "ellipse"
	ObjectTypeLine    ObjectType = "line"
	ObjectTypePolygon ObjectType = "polygon"
	ObjectTypeText    ObjectType = "text"
)

type Style struct {
	Fill      string   `json:"fill" yaml:"fill"`
	Stroke    string   `json:"stroke" yaml:"stroke"`
	LineWidth float64  `json:"lineWidth" yaml:"lineWidth"`
	Opacity   *float64 `json:"opacity,omitempty" yaml:"opacity,omitempty"`
	FontSize  float64  `json:"fontSize" yaml:"fontSize"`
}

// Multipliers scale the object's authored opacity, line width and scale.
type Multipliers struct {
	Opacity   *float64   `json:"opacity,omitempty" yaml:"opacity,omitempty"`
	LineWidth *float64   `json:"lineWidth,omitempty" yaml:"lineWidth,omitempty"`
	Scale     *geom.Vec2 `json:"scale,omitempty" yaml:"scale,omitempty"`
}

type Object struct {
	ID   string     `json:"id" yaml:"id"`
	Name string     `json:"name" yaml:"name"` // symbol other objects refer to; defaults to ID
	Type ObjectType `json:"type" yaml:"type"`

	// Origin is translated to before any action runs. Anchor is the local
	// point published as the object's position.
	Origin geom.Vec2  `json:"origin" yaml:"origin"`
	Anchor geom.Vec2  `json:"anchor" yaml:"anchor"`
	Scale  *geom.Vec2 `json:"scale,omitempty" yaml:"scale,omitempty"`

	// Shape data, by type.
	Width  float64     `json:"width,omitempty" yaml:"width,omitempty"`
	Height float64     `json:"height,omitempty" yaml:"height,omitempty"`
	Radius float64     `json:"radius,omitempty" yaml:"radius,omitempty"`
	RX     float64     `json:"rx,omitempty" yaml:"rx,omitempty"`
	RY     float64     `json:"ry,omitempty" yaml:"ry,omitempty"`
	Points []geom.Vec2 `json:"points,omitempty" yaml:"points,omitempty"`
	Text   string      `json:"text,omitempty" yaml:"text,omitempty"`
	HAlign string      `json:"halign,omitempty" yaml:"halign,omitempty"`
	VAlign string      `json:"valign,omitempty" yaml:"valign,omitempty"`
	Angle  float64     `json:"angle,omitempty" yaml:"angle,omitempty"`

	Style       Style        `json:"style" yaml:"style"`
	Multipliers *Multipliers `json:"multipliers,omitempty" yaml:"multipliers,omitempty"`
	Actions     []Action     `json:"actions" yaml:"actions"`
}

type Action struct {
	ID     string `json:"id" yaml:"id"`
	Start  int    `json:"start" yaml:"start"`
	End    int    `json:"end" yaml:"end"`
	Easing string `json:"easing" yaml:"easing"`
	Keep   *bool  `json:"keep,omitempty" yaml:"keep,omitempty"`

	Transitions []Transition `json:"transitions" yaml:"transitions"`

	// Appear and Disappear name effects: fade, fade_line_width, scale, draw_text.
	Appear    string `json:"appear,omitempty" yaml:"appear,omitempty"`
	Disappear string `json:"disappear,omitempty" yaml:"disappear,omitempty"`
}

type TransitionType string

const (
	TransitionTranslation TransitionType = "translation"
	TransitionRotation    TransitionType = "rotation"
	TransitionScaling     TransitionType = "scaling"
)

// Transition endpoints are literals or object names. A point is [x, y] or
// {x, y}; an angle is a number of radians; a scale is a number or a point.
type Transition struct {
	Type            TransitionType `json:"type" yaml:"type"`
	From            interface{}    `json:"from,omitempty" yaml:"from,omitempty"`
	To              interface{}    `json:"to,omitempty" yaml:"to,omitempty"`
	Center          interface{}    `json:"center,omitempty" yaml:"center,omitempty"`
	ComputeFromOnce bool           `json:"computeFromOnce,omitempty" yaml:"computeFromOnce,omitempty"`
}

// SymbolName returns the name other objects use to refer to o.
func (o *Object) SymbolName() string {
	if o.Name != "" {
		return o.Name
	}
	return o.ID
}
