package document

import (
	"math"

	"github.com/inamate/motion/internal/geom"
)

// NewSampleDocument returns a small demo scene: a ball that crosses the
// stage, a ring that chases it, a spinner and a title that writes itself.
func NewSampleDocument() *Document {
	keep := false
	half := 0.5

	doc := &Document{
		Scene: Scene{
			Name:       "Sample",
			Width:      1280,
			Height:     720,
			Background: "#1a1a2e",
			FPS:        24,
			Frames:     96,
		},
		Objects: []Object{
			{
				Name:   "ball",
				Type:   ObjectTypeCircle,
				Origin: geom.V(160, 360),
				Radius: 40,
				Style:  Style{Fill: "#e94560", Stroke: "#ffffff", LineWidth: 2},
				Actions: []Action{{
					Start:  1,
					End:    72,
					Easing: "easeInOut",
					Transitions: []Transition{{
						Type: TransitionTranslation,
						From: []interface{}{0.0, 0.0},
						To:   []interface{}{960.0, 0.0},
					}},
					Appear: "scale",
				}},
			},
			{
				Name:   "ring",
				Type:   ObjectTypeCircle,
				Radius: 24,
				Style:  Style{Stroke: "#0f3460", LineWidth: 4},
				Actions: []Action{{
					Start: 1,
					End:   96,
					Transitions: []Transition{{
						Type: TransitionTranslation,
						From: []interface{}{160.0, 200.0},
						To:   "ball",
					}},
				}},
			},
			{
				Name:   "spinner",
				Type:   ObjectTypeRect,
				Origin: geom.V(640, 600),
				Anchor: geom.V(30, 30),
				Width:  60,
				Height: 60,
				Style:  Style{Fill: "#16213e", Stroke: "#e94560", LineWidth: 3},
				Actions: []Action{
					{
						Start:  1,
						End:    96,
						Easing: "linear",
						Transitions: []Transition{{
							Type:   TransitionRotation,
							From:   0.0,
							To:     2 * math.Pi,
							Center: []interface{}{30.0, 30.0},
						}},
					},
					{
						Start: 48,
						End:   96,
						Keep:  &keep,
						Transitions: []Transition{{
							Type:            TransitionScaling,
							From:            "ball",
							To:              2.0,
							ComputeFromOnce: true,
						}},
					},
				},
			},
			{
				Name:   "title",
				Type:   ObjectTypeText,
				Origin: geom.V(640, 80),
				Text:   "motion",
				HAlign: "center",
				VAlign: "middle",
				Style:  Style{Fill: "#ffffff", FontSize: 48, Opacity: &half},
				Actions: []Action{{
					Start:  1,
					End:    36,
					Easing: "cubicOut",
					Appear: "draw_text",
				}, {
					Start:     72,
					End:       96,
					Disappear: "fade",
				}},
			},
		},
	}

	// The literal sample is always valid.
	if err := doc.Normalize(); err != nil {
		panic(err)
	}
	return doc
}
