package formschema

import "strings"

type FieldType string

const (
	FieldText      FieldType = "text"
	FieldNumber    FieldType = "number"
	FieldStatus    FieldType = "status"
	FieldPhoto     FieldType = "photo"
	FieldSignature FieldType = "signature"
	FieldCheckbox  FieldType = "checkbox"
)

type Field struct {
	ID    string
	Label string // empty → labelized id
	Type  FieldType
}

// Tabular reports whether the field is rendered as text. Photos and
// signatures are resolved through assets instead.
func (f Field) Tabular() bool {
	return f.Type != FieldPhoto && f.Type != FieldSignature
}

type SectionKind string

const (
	KindForm      SectionKind = "form"
	KindChecklist SectionKind = "checklist"
	KindTable     SectionKind = "table"
	KindComputed  SectionKind = "computed"
	KindPhotos    SectionKind = "photos"
)

// Item is a checklist catalog entry.
type Item struct {
	ID         string
	Name       string
	HasValue   bool
	ValueLabel string
}

type Column struct {
	ID    string
	Label string
}

// Computed is a synthesized aggregate value.
type Computed struct {
	Label string
	Value any
}

// ComputeFunc derives aggregate fields from the resolved form data.
// It returns nil when the inputs are not available.
type ComputeFunc func(data map[string]any) []Computed

type Section struct {
	ID    string
	Title string
	Icon  string
	Kind  SectionKind

	// Source is a dot path into the form data holding this section's
	// values. Empty means the data object itself.
	Source string

	Fields  []Field
	Items   []Item
	Columns []Column
	Index   bool // number table rows in a leading "#" column
	Extra   bool // also render source keys the schema does not declare
	Compute ComputeFunc
}

// DisplayTitle is the decorated title used as section heading.
func (s Section) DisplayTitle() string {
	icon := s.Icon
	if icon == "" {
		icon = "📋"
	}
	return icon + " " + s.Title
}

type FormSchema struct {
	Type     FormType
	Sections []Section

	// Anchors are top-level data keys of which at least one must be set
	// for the schema to apply. Payloads without any of them are rendered
	// by the generic walk. Empty means the schema always applies.
	Anchors []string
}

// Applies reports whether data carries one of the schema's anchors.
// Any value other than nil, "", false or 0 counts as set.
func (fs *FormSchema) Applies(data map[string]any) bool {
	if len(fs.Anchors) == 0 {
		return true
	}
	for _, key := range fs.Anchors {
		switch v := data[key].(type) {
		case nil:
		case string:
			if v != "" {
				return true
			}
		case bool:
			if v {
				return true
			}
		case float64:
			if v != 0 {
				return true
			}
		default:
			return true
		}
	}
	return false
}

// ClaimedKeys lists the top-level data keys read by form, checklist and
// table sections. all is true when a section reads the data object
// itself, so every key counts as claimed.
func (fs *FormSchema) ClaimedKeys() (keys map[string]bool, all bool) {
	keys = map[string]bool{}
	for _, s := range fs.Sections {
		switch s.Kind {
		case KindForm, KindChecklist, KindTable:
		default:
			continue
		}
		if s.Source == "" {
			return keys, true
		}
		head, _, _ := strings.Cut(s.Source, ".")
		keys[head] = true
	}
	return keys, false
}

// Section returns the schema section with the given id.
func (fs *FormSchema) Section(id string) (Section, bool) {
	for _, s := range fs.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}
