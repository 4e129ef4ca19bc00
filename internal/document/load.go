package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/inamate/motion/internal/typeid"
)

// Format is the encoding of a document file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DefaultFPS is the frame rate given to scenes that do not set one.
var DefaultFPS = 24

var (
	ErrUnknownFormat = errors.New("unknown document format")
	ErrInvalid       = errors.New("invalid document")
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Decode reads a document and normalizes it.
func Decode(r io.Reader, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err := doc.Normalize(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load reads a document file, choosing the decoder by extension.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Normalize fills defaults, assigns missing IDs and canonicalizes colors.
// It rejects documents whose header or shapes cannot be rendered.
func (d *Document) Normalize() error {
	if d.Scene.ID == "" {
		d.Scene.ID = typeid.NewSceneID()
	} else if err := typeid.Validate(d.Scene.ID, typeid.PrefixScene); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if d.Scene.Name == "" {
		d.Scene.Name = "Untitled"
	}
	if d.Scene.FPS <= 0 {
		d.Scene.FPS = DefaultFPS
	}
	if d.Scene.Frames <= 0 {
		d.Scene.Frames = 48
	}
	bg, err := normalizeColor(d.Scene.Background)
	if err != nil {
		return fmt.Errorf("%w: scene background: %v", ErrInvalid, err)
	}
	d.Scene.Background = bg

	names := make(map[string]bool, len(d.Objects))
	for i := range d.Objects {
		obj := &d.Objects[i]
		if err := obj.normalize(); err != nil {
			return fmt.Errorf("%w: object %d: %v", ErrInvalid, i, err)
		}
		name := obj.SymbolName()
		if names[name] {
			return fmt.Errorf("%w: duplicate object name %q", ErrInvalid, name)
		}
		names[name] = true
	}
	return nil
}

func (o *Object) normalize() error {
	if o.ID == "" {
		o.ID = typeid.NewObjectID()
	}

	switch o.Type {
	case ObjectTypeRect:
		if o.Width <= 0 || o.Height <= 0 {
			return fmt.Errorf("rect %s needs positive width and height", o.ID)
		}
	case ObjectTypeCircle:
		if o.Radius <= 0 {
			return fmt.Errorf("circle %s needs a positive radius", o.ID)
		}
	case ObjectTypeEllipse:
		if o.RX <= 0 || o.RY <= 0 {
			return fmt.Errorf("ellipse %s needs positive rx and ry", o.ID)
		}
	case ObjectTypeLine, ObjectTypePolygon:
		if len(o.Points) < 2 {
			return fmt.Errorf("%s %s needs at least two points", o.Type, o.ID)
		}
	case ObjectTypeText:
		if o.Style.FontSize <= 0 {
			o.Style.FontSize = 24
		}
	default:
		return fmt.Errorf("object %s has unknown type %q", o.ID, o.Type)
	}

	var err error
	if o.Style.Fill, err = normalizeColor(o.Style.Fill); err != nil {
		return fmt.Errorf("object %s fill: %w", o.ID, err)
	}
	if o.Style.Stroke, err = normalizeColor(o.Style.Stroke); err != nil {
		return fmt.Errorf("object %s stroke: %w", o.ID, err)
	}
	if o.Style.LineWidth <= 0 {
		o.Style.LineWidth = 1
	}
	if o.Style.FontSize <= 0 {
		o.Style.FontSize = 12
	}

	for i := range o.Actions {
		a := &o.Actions[i]
		if a.ID == "" {
			a.ID = typeid.NewActionID()
		}
		if a.End < a.Start {
			return fmt.Errorf("action %s ends (%d) before it starts (%d)", a.ID, a.End, a.Start)
		}
	}
	return nil
}
