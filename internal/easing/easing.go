// Package easing maps easing names used in scene documents to curve functions.
package easing

import (
	"errors"
	"fmt"
	"sort"

	"github.com/fogleman/ease"

	"github.com/inamate/motion/internal/anim"
)

// ErrUnknownEasing is returned for names with no registered curve.
var ErrUnknownEasing = errors.New("unknown easing")

// Linear is the default curve.
const Linear = "linear"

var curves = map[string]anim.Easing{
	Linear: ease.Linear,

	"easeIn":    ease.InQuad,
	"easeOut":   ease.OutQuad,
	"easeInOut": ease.InOutQuad,

	"cubicIn":    ease.InCubic,
	"cubicOut":   ease.OutCubic,
	"cubicInOut": ease.InOutCubic,

	"quartIn":    ease.InQuart,
	"quartOut":   ease.OutQuart,
	"quartInOut": ease.InOutQuart,

	"sineIn":    ease.InSine,
	"sineOut":   ease.OutSine,
	"sineInOut": ease.InOutSine,

	"expoIn":    ease.InExpo,
	"expoOut":   ease.OutExpo,
	"expoInOut": ease.InOutExpo,

	"circIn":    ease.InCirc,
	"circOut":   ease.OutCirc,
	"circInOut": ease.InOutCirc,

	"backIn":    ease.InBack,
	"backOut":   ease.OutBack,
	"backInOut": ease.InOutBack,

	"elasticIn":    ease.InElastic,
	"elasticOut":   ease.OutElastic,
	"elasticInOut": ease.InOutElastic,

	"bounceIn":    ease.InBounce,
	"bounceOut":   ease.OutBounce,
	"bounceInOut": ease.InOutBounce,
}

// ByName returns the curve registered under name. The empty name is linear.
func ByName(name string) (anim.Easing, error) {
	if name == "" {
		name = Linear
	}
	fn, ok := curves[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEasing, name)
	}
	return fn, nil
}

// Names returns all registered easing names, sorted.
func Names() []string {
	names := make([]string, 0, len(curves))
	for name := range curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
