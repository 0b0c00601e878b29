package formschema

import "strings"

// FormType is the closed set of inspection templates a submission can follow.
type FormType int

const (
	Generic FormType = iota
	Maintenance
	Inspection
	Grounding
	Safety
	Equipment
	Executed
)

var typeNames = map[FormType]string{
	Generic:     "generic",
	Maintenance: "maintenance",
	Inspection:  "inspection",
	Grounding:   "grounding",
	Safety:      "safety",
	Equipment:   "equipment",
	Executed:    "executed",
}

func (t FormType) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return "generic"
}

func (t FormType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *FormType) UnmarshalText(b []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(b)))
	for k, v := range typeNames {
		if v == s {
			*t = k
			return nil
		}
	}
	*t = Classify(s)
	return nil
}

/* ===============================
   Classification (form code → type)
=================================*/

type rule struct {
	typ      FormType
	contains []string
	exclude  []string
}

// Priority order matters: the first matching rule wins.
var rules = []rule{
	{typ: Maintenance, contains: []string{"preventive-maintenance", "mantenimiento"}, exclude: []string{"ejecutado", "executed"}},
	{typ: Inspection, contains: []string{"inspection", "inspeccion"}},
	{typ: Grounding, contains: []string{"grounding", "puesta-tierra"}},
	{typ: Safety, contains: []string{"safety", "ascenso"}},
	{typ: Equipment, contains: []string{"equipment", "inventario"}},
	{typ: Executed, contains: []string{"executed", "ejecutado"}},
}

func (r rule) match(code string) bool {
	for _, x := range r.exclude {
		if strings.Contains(code, x) {
			return false
		}
	}
	for _, frag := range r.contains {
		if strings.Contains(code, frag) {
			return true
		}
	}
	return false
}

// Classify maps a free-text form code to its FormType. Matching is
// case-insensitive and substring based; unknown codes are Generic.
func Classify(code string) FormType {
	c := strings.ToLower(strings.TrimSpace(code))
	if c == "" {
		return Generic
	}
	for _, r := range rules {
		if r.match(c) {
			return r.typ
		}
	}
	return Generic
}

/* ===============================
   Display metadata
=================================*/

type Meta struct {
	Type       FormType `json:"type"`
	Code       string   `json:"code"`
	Label      string   `json:"label"`
	ShortLabel string   `json:"short_label"`
}

var metas = []Meta{
	{Type: Inspection, Code: "inspection-general", Label: "Inspección General", ShortLabel: "Inspección"},
	{Type: Maintenance, Code: "preventive-maintenance", Label: "Mantenimiento Preventivo", ShortLabel: "Mant. Preventivo"},
	{Type: Executed, Code: "executed-maintenance", Label: "Mantenimiento Ejecutado", ShortLabel: "Mant. Ejecutado"},
	{Type: Equipment, Code: "equipment", Label: "Inventario de Equipos", ShortLabel: "Inventario"},
	{Type: Safety, Code: "safety-system", Label: "Sistema de Ascenso", ShortLabel: "Ascenso"},
	{Type: Grounding, Code: "grounding-system-test", Label: "Prueba de Puesta a Tierra", ShortLabel: "Puesta a Tierra"},
}

// AllMeta returns the known form types in dashboard order.
func AllMeta() []Meta {
	return append([]Meta(nil), metas...)
}

// MetaFor returns display metadata for a raw form code. Unknown codes keep
// the code itself as label.
func MetaFor(code string) Meta {
	t := Classify(code)
	for _, m := range metas {
		if m.Type == t && t != Generic {
			return m
		}
	}
	label := strings.TrimSpace(code)
	short := label
	if label == "" {
		label = "Desconocido"
		short = "?"
	}
	return Meta{Type: Generic, Code: code, Label: label, ShortLabel: short}
}
