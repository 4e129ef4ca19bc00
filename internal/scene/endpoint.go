package scene

import (
	"fmt"

	"github.com/inamate/motion/internal/anim"
	"github.com/inamate/motion/internal/geom"
)

// parsePoint reads [x, y], {x, y} or an object name. nil yields def.
func parsePoint(v interface{}, def geom.Vec2) (anim.Endpoint[geom.Vec2], error) {
	switch p := v.(type) {
	case nil:
		return anim.Lit(def), nil
	case string:
		return anim.Ref[geom.Vec2](p), nil
	case []interface{}:
		if len(p) != 2 {
			return anim.Endpoint[geom.Vec2]{}, fmt.Errorf("point needs 2 components, got %d", len(p))
		}
		x, okx := toFloat64(p[0])
		y, oky := toFloat64(p[1])
		if !okx || !oky {
			return anim.Endpoint[geom.Vec2]{}, fmt.Errorf("point components must be numbers: %v", p)
		}
		return anim.Lit(geom.V(x, y)), nil
	case map[string]interface{}:
		return pointFromMap(func(k string) interface{} { return p[k] })
	case map[interface{}]interface{}:
		return pointFromMap(func(k string) interface{} { return p[k] })
	default:
		return anim.Endpoint[geom.Vec2]{}, fmt.Errorf("unsupported point %v (%T)", v, v)
	}
}

func pointFromMap(get func(string) interface{}) (anim.Endpoint[geom.Vec2], error) {
	x, okx := toFloat64(get("x"))
	y, oky := toFloat64(get("y"))
	if !okx || !oky {
		return anim.Endpoint[geom.Vec2]{}, fmt.Errorf("point map needs numeric x and y")
	}
	return anim.Lit(geom.V(x, y)), nil
}

// parseAngle reads a number of radians or an object name.
func parseAngle(v interface{}, def float64) (anim.Endpoint[float64], error) {
	switch a := v.(type) {
	case nil:
		return anim.Lit(def), nil
	case string:
		return anim.Ref[float64](a), nil
	default:
		f, ok := toFloat64(a)
		if !ok {
			return anim.Endpoint[float64]{}, fmt.Errorf("unsupported angle %v (%T)", v, v)
		}
		return anim.Lit(f), nil
	}
}

// parseScale reads a uniform number, a point or an object name.
func parseScale(v interface{}, def geom.Vec2) (anim.Endpoint[geom.Vec2], error) {
	if f, ok := toFloat64(v); ok {
		return anim.Lit(geom.V(f, f)), nil
	}
	return parsePoint(v, def)
}

// toFloat64 converts decoded JSON or YAML numbers.
func toFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
