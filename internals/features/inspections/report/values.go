package report

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"

	"ptiadmin_backend/internals/features/inspections/formschema"
)

const (
	Placeholder   = "—"
	Pending       = "⏳ Pendiente"
	UploadedPhoto = "📷 Foto subida"

	photoSentinel = "__photo__"
)

var statusLabels = map[string]string{
	"bueno":   "✅ Bueno",
	"regular": "⚠️ Regular",
	"malo":    "❌ Malo",
	"na":      "➖ N/A",
}

// StatusLabel maps a checklist status through the fixed vocabulary.
// Unknown values pass through unchanged.
func StatusLabel(v string) string {
	if v == "" {
		return Placeholder
	}
	if l, ok := statusLabels[v]; ok {
		return l
	}
	return v
}

// cleanValue renders a raw payload value as display text. ok is false for
// values that must not appear in a table: nil, empty strings, empty
// collections and inline data URIs (those are photos).
func cleanValue(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		switch {
		case x == "":
			return "", false
		case strings.HasPrefix(x, "data:"):
			return "", false
		case x == photoSentinel:
			return UploadedPhoto, true
		}
		return x, true
	case bool:
		if x {
			return "Sí", true
		}
		return "No", true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case json.Number:
		return x.String(), true
	case map[string]any:
		if len(x) == 0 {
			return "", false
		}
		return compactJSON(x)
	case []any:
		if len(x) == 0 {
			return "", false
		}
		return compactJSON(x)
	default:
		return fmt.Sprint(x), true
	}
}

func compactJSON(v any) (string, bool) {
	b, err := sonic.Marshal(v)
	if err != nil {
		return fmt.Sprint(v), true
	}
	return string(b), true
}

// fieldValue applies the field type on top of cleanValue.
func fieldValue(f formschema.Field, raw any) (string, bool) {
	s, ok := cleanValue(raw)
	if !ok {
		return "", false
	}
	switch f.Type {
	case formschema.FieldStatus:
		if str, isStr := raw.(string); isStr {
			return StatusLabel(str), true
		}
	case formschema.FieldCheckbox:
		if str, isStr := raw.(string); isStr {
			switch strings.ToLower(str) {
			case "true", "si", "sí", "yes":
				return "Sí", true
			case "false", "no":
				return "No", true
			}
		}
	}
	return s, true
}

// text reads a string-ish value, "" when absent.
func text(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, ok := cleanValue(m[key])
	if !ok || s == UploadedPhoto {
		return ""
	}
	return s
}
