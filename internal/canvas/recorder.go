// Package canvas provides a drawing surface that records Canvas2D-style draw
// commands instead of rasterizing them.
package canvas

import (
	"log/slog"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/inamate/motion/internal/anim"
	"github.com/inamate/motion/internal/geom"
)

// graphicsState is the part of the recorder that Save/Restore scope.
type graphicsState struct {
	matrix    geom.Matrix2D
	lineWidth float64
	opacity   float64
	fontSize  float64
	fill      string
	stroke    string
}

// Recorder implements anim.TextSurface. Transforms are folded into the
// current matrix, which is attached to every emitted path, text and clip.
type Recorder struct {
	state    graphicsState
	stack    []graphicsState
	commands []DrawCommand
	objectID string
	face     font.Face
}

var _ anim.TextSurface = (*Recorder)(nil)

// NewRecorder creates a recorder with an identity matrix.
func NewRecorder() *Recorder {
	r := &Recorder{face: basicfont.Face7x13}
	r.Reset()
	return r
}

// Reset discards recorded commands and returns to the initial state.
func (r *Recorder) Reset() {
	r.state = graphicsState{
		matrix:    geom.Identity(),
		lineWidth: 1,
		opacity:   1,
		fontSize:  12,
	}
	r.stack = r.stack[:0]
	r.commands = nil
	r.objectID = ""
}

// Commands returns the commands recorded since the last Reset.
func (r *Recorder) Commands() []DrawCommand {
	return r.commands
}

// JSON serializes the recorded commands.
func (r *Recorder) JSON() (string, error) {
	return ToJSON(r.commands)
}

// Matrix returns the current transform.
func (r *Recorder) Matrix() geom.Matrix2D {
	return r.state.matrix
}

// Depth returns the number of unmatched Save calls.
func (r *Recorder) Depth() int {
	return len(r.stack)
}

// SetObject tags subsequent draw commands with an object ID.
func (r *Recorder) SetObject(id string) {
	r.objectID = id
}

func (r *Recorder) Translate(v geom.Vec2) {
	r.state.matrix = r.state.matrix.Translated(v)
}

func (r *Recorder) Rotate(radians float64) {
	r.state.matrix = r.state.matrix.Rotated(radians)
}

func (r *Recorder) Scale(s geom.Vec2) {
	r.state.matrix = r.state.matrix.Scaled(s)
}

func (r *Recorder) SetLineWidth(w float64) { r.state.lineWidth = w }
func (r *Recorder) SetOpacity(o float64)   { r.state.opacity = o }
func (r *Recorder) SetFontSize(s float64)  { r.state.fontSize = s }
func (r *Recorder) SetFill(color string)   { r.state.fill = color }
func (r *Recorder) SetStroke(color string) { r.state.stroke = color }

func (r *Recorder) Save() {
	r.stack = append(r.stack, r.state)
	r.commands = append(r.commands, DrawCommand{Op: OpSave})
}

// Restore pops the last saved state. An unmatched Restore is ignored.
func (r *Recorder) Restore() {
	if len(r.stack) == 0 {
		slog.Warn("canvas restore without save", "object", r.objectID)
		return
	}
	r.state = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.commands = append(r.commands, DrawCommand{Op: OpRestore})
}

// MeasureText measures text in the fixed 7x13 face scaled to the font size.
func (r *Recorder) MeasureText(text string) anim.TextExtents {
	metrics := r.face.Metrics()
	k := r.state.fontSize / float64(metrics.Height.Ceil())
	advance := font.MeasureString(r.face, text)

	return anim.TextExtents{
		Width:   fixedToFloat(advance) * k,
		Ascent:  fixedToFloat(metrics.Ascent) * k,
		Descent: fixedToFloat(metrics.Descent) * k,
	}
}

// DrawText emits a text command anchored at `at` in local space.
func (r *Recorder) DrawText(text string, at geom.Vec2, align anim.Align) {
	r.commands = append(r.commands, DrawCommand{
		Op:        OpText,
		ObjectID:  r.objectID,
		Transform: r.state.matrix.ToSlice(),
		Text:      text,
		X:         at.X,
		Y:         at.Y,
		FontSize:  r.state.fontSize,
		Align:     align.H.String(),
		Baseline:  canvasBaseline(align.V),
		Fill:      r.state.fill,
		Opacity:   r.state.opacity,
	})
}

// ClipCircle intersects the clip region with a circle in local space.
func (r *Recorder) ClipCircle(center geom.Vec2, radius float64) {
	r.commands = append(r.commands, DrawCommand{
		Op:        OpClip,
		Transform: r.state.matrix.ToSlice(),
		Path:      EllipsePath(center, radius, radius),
	})
}

// DrawPath fills and strokes path with the current style.
func (r *Recorder) DrawPath(path []PathCommand) {
	if len(path) == 0 {
		return
	}
	r.commands = append(r.commands, DrawCommand{
		Op:          OpPath,
		ObjectID:    r.objectID,
		Transform:   r.state.matrix.ToSlice(),
		Path:        path,
		Fill:        r.state.fill,
		Stroke:      r.state.stroke,
		StrokeWidth: r.state.lineWidth,
		Opacity:     r.state.opacity,
	})
}

// canvasBaseline maps vertical alignment to Canvas2D textBaseline values.
func canvasBaseline(v anim.VAlign) string {
	if v == anim.AlignBaseline {
		return "alphabetic"
	}
	return v.String()
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
