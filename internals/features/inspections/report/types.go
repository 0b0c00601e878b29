package report

import (
	"strconv"

	"github.com/bytedance/sonic"
)

type Kind string

const (
	KindFields    Kind = "fields"
	KindChecklist Kind = "checklist"
	KindTable     Kind = "table"
	KindPhotos    Kind = "photos"
)

type FieldValue struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// ChecklistRow has a fixed key set; Value and Observation are optional.
type ChecklistRow struct {
	Number      string `json:"number" yaml:"number"`
	Label       string `json:"label" yaml:"label"`
	Status      string `json:"status" yaml:"status"`
	Value       string `json:"value,omitempty" yaml:"value,omitempty"`
	Observation string `json:"observation,omitempty" yaml:"observation,omitempty"`
}

type Table struct {
	Columns []string   `json:"columns" yaml:"columns"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

// Section is one rendered block. Exactly one of Fields, Rows or Table is
// populated, according to Kind.
type Section struct {
	ID     string         `json:"id" yaml:"id"`
	Title  string         `json:"title" yaml:"title"`
	Kind   Kind           `json:"kind" yaml:"kind"`
	Fields []FieldValue   `json:"fields,omitempty" yaml:"fields,omitempty"`
	Rows   []ChecklistRow `json:"rows,omitempty" yaml:"rows,omitempty"`
	Table  *Table         `json:"table,omitempty" yaml:"table,omitempty"`
}

// Value returns the value of the field with the given label.
func (s Section) Value(label string) (string, bool) {
	for _, f := range s.Fields {
		if f.Label == label {
			return f.Value, true
		}
	}
	return "", false
}

/* ===============================
   SectionMap (insertion ordered)
=================================*/

// SectionMap keeps sections in insertion order with lookup by id.
// The zero value is ready to use.
type SectionMap struct {
	list []Section
	byID map[string]int
}

// Set appends s, or replaces in place a section with the same id.
func (m *SectionMap) Set(s Section) {
	if m.byID == nil {
		m.byID = map[string]int{}
	}
	if i, ok := m.byID[s.ID]; ok {
		m.list[i] = s
		return
	}
	m.byID[s.ID] = len(m.list)
	m.list = append(m.list, s)
}

func (m *SectionMap) Get(id string) (Section, bool) {
	if i, ok := m.byID[id]; ok {
		return m.list[i], true
	}
	return Section{}, false
}

func (m *SectionMap) ByTitle(title string) (Section, bool) {
	for _, s := range m.list {
		if s.Title == title {
			return s, true
		}
	}
	return Section{}, false
}

func (m *SectionMap) Has(id string) bool {
	_, ok := m.byID[id]
	return ok
}

func (m *SectionMap) Len() int { return len(m.list) }

// Sections returns a copy of the ordered sections.
func (m *SectionMap) Sections() []Section {
	return append([]Section(nil), m.list...)
}

func (m *SectionMap) Titles() []string {
	out := make([]string, 0, len(m.list))
	for _, s := range m.list {
		out = append(out, s.Title)
	}
	return out
}

// Append adds s at the end and returns the id it was stored under. A taken
// or reserved id gets a "-2", "-3", ... suffix instead of replacing.
func (m *SectionMap) Append(s Section, reserved map[string]bool) string {
	s.ID = m.freeID(s.ID, reserved)
	m.Set(s)
	return s.ID
}

func (m *SectionMap) freeID(id string, reserved map[string]bool) string {
	if !m.Has(id) && !reserved[id] {
		return id
	}
	for n := 2; ; n++ {
		c := id + "-" + strconv.Itoa(n)
		if !m.Has(c) && !reserved[c] {
			return c
		}
	}
}

// Merge appends every section of other, in order. Colliding ids are
// suffixed, never replaced.
func (m *SectionMap) Merge(other SectionMap) {
	for _, s := range other.list {
		m.Append(s, nil)
	}
}

// MarshalJSON renders the map as an ordered array.
func (m SectionMap) MarshalJSON() ([]byte, error) {
	if m.list == nil {
		return []byte("[]"), nil
	}
	return sonic.Marshal(m.list)
}

func (m *SectionMap) UnmarshalJSON(b []byte) error {
	var list []Section
	if err := sonic.Unmarshal(b, &list); err != nil {
		return err
	}
	*m = SectionMap{}
	for _, s := range list {
		m.Set(s)
	}
	return nil
}

func (m SectionMap) MarshalYAML() (any, error) {
	if m.list == nil {
		return []Section{}, nil
	}
	return m.list, nil
}
