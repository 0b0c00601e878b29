package formschema

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ObjectAt follows a dot path through nested objects. Anything missing or
// of the wrong shape yields an empty object.
func ObjectAt(data map[string]any, path string) map[string]any {
	cur := data
	if cur == nil {
		return map[string]any{}
	}
	if path == "" {
		return cur
	}
	for _, key := range strings.Split(path, ".") {
		next, ok := cur[key].(map[string]any)
		if !ok {
			return map[string]any{}
		}
		cur = next
	}
	return cur
}

// ArrayAt returns the array at a dot path, or nil.
func ArrayAt(data map[string]any, path string) []any {
	if data == nil || path == "" {
		return nil
	}
	i := strings.LastIndex(path, ".")
	parent, key := data, path
	if i >= 0 {
		parent = ObjectAt(data, path[:i])
		key = path[i+1:]
	}
	arr, _ := parent[key].([]any)
	return arr
}

// ToFloat accepts JSON numbers and numeric strings ("2,4" included).
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n) && !math.IsInf(n, 0)
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(n, ",", "."))
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Round2 rounds half away from zero to two decimals.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// GroundingResistance sums the seven resistance readings and averages them
// over seven. ok is false unless every reading is numeric.
func GroundingResistance(medicion map[string]any) (sum, rg float64, ok bool) {
	for _, id := range GroundingResistanceFields {
		v, isNum := ToFloat(medicion[id])
		if !isNum {
			return 0, 0, false
		}
		sum += v
	}
	rg = math.Round(sum/7*100) / 100
	return sum, rg, true
}
