package report

import (
	"sort"
	"strconv"

	"ptiadmin_backend/internals/features/inspections/formschema"
	helper "ptiadmin_backend/internals/helpers"
)

// top-level data keys that hold wizard state, not answers
var transientKeys = map[string]bool{
	"currentStep":    true,
	"completedSteps": true,
	"photos":         true,
}

// ids the normalizer places around the form sections
var reservedIDs = map[string]bool{
	MetaSectionID:      true,
	SubmitterSectionID: true,
	OtherPhotosID:      true,
}

// Build projects resolved form data into ordered sections following the
// schema registered for t. Types without a schema, and payloads missing
// every anchor of theirs, use the generic walk. Object-valued keys no
// schema section reads are appended as generic sections.
// Build never fails: missing data yields fewer sections.
func Build(t formschema.FormType, data map[string]any, reg *formschema.Registry) SectionMap {
	if data == nil {
		data = map[string]any{}
	}
	fs, ok := reg.Schema(t)
	if !ok || !fs.Applies(data) {
		return buildGeneric(data)
	}

	var out SectionMap
	for _, sec := range fs.Sections {
		var (
			s    Section
			keep bool
		)
		switch sec.Kind {
		case formschema.KindForm:
			s, keep = buildForm(sec, data)
		case formschema.KindChecklist:
			s, keep = buildChecklist(sec, data), true
		case formschema.KindTable:
			s, keep = buildTable(sec, data)
		case formschema.KindComputed:
			s, keep = buildComputed(sec, data)
		}
		if keep {
			out.Set(s)
		}
	}

	if claimed, all := fs.ClaimedKeys(); !all {
		appendGeneric(&out, data, claimed)
	}
	return out
}

func buildForm(sec formschema.Section, data map[string]any) (Section, bool) {
	src := formschema.ObjectAt(data, sec.Source)
	s := Section{ID: sec.ID, Title: sec.DisplayTitle(), Kind: KindFields}

	declared := make(map[string]bool, len(sec.Fields))
	for _, f := range sec.Fields {
		declared[f.ID] = true
		if !f.Tabular() {
			continue
		}
		if v, ok := fieldValue(f, src[f.ID]); ok {
			s.Fields = append(s.Fields, FieldValue{Label: labelFor(f.ID, f.Label), Value: v})
		}
	}

	if sec.Extra {
		for _, key := range sortedKeys(src) {
			if declared[key] {
				continue
			}
			if v, ok := cleanValue(src[key]); ok {
				s.Fields = append(s.Fields, FieldValue{Label: Labelize(key), Value: v})
			}
		}
	}
	return s, len(s.Fields) > 0
}

// buildChecklist emits one row per catalog item whether answered or not.
func buildChecklist(sec formschema.Section, data map[string]any) Section {
	src := formschema.ObjectAt(data, sec.Source)
	s := Section{ID: sec.ID, Title: sec.DisplayTitle(), Kind: KindChecklist}
	s.Rows = make([]ChecklistRow, 0, len(sec.Items))

	for _, it := range sec.Items {
		row := ChecklistRow{Number: it.ID, Label: it.Name, Status: Pending}
		entry, _ := src[it.ID].(map[string]any)
		status, value, obs := text(entry, "status"), text(entry, "value"), text(entry, "observation")
		if status != "" || value != "" || obs != "" {
			row.Status = StatusLabel(status)
			row.Value = value
			if value != "" && it.ValueLabel != "" {
				row.Value = value + " " + it.ValueLabel
			}
			row.Observation = obs
		}
		s.Rows = append(s.Rows, row)
	}
	return s
}

func buildTable(sec formschema.Section, data map[string]any) (Section, bool) {
	t := &Table{}
	if sec.Index {
		t.Columns = append(t.Columns, "#")
	}
	for _, c := range sec.Columns {
		t.Columns = append(t.Columns, labelFor(c.ID, c.Label))
	}

	for _, raw := range formschema.ArrayAt(data, sec.Source) {
		obj, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		cells := make([]string, 0, len(t.Columns))
		filled := false
		for _, c := range sec.Columns {
			v, ok := cleanValue(obj[c.ID])
			if ok {
				filled = true
			} else {
				v = ""
			}
			cells = append(cells, v)
		}
		if !filled {
			continue
		}
		if sec.Index {
			cells = append([]string{strconv.Itoa(len(t.Rows) + 1)}, cells...)
		}
		t.Rows = append(t.Rows, cells)
	}

	if len(t.Rows) == 0 {
		return Section{}, false
	}
	return Section{ID: sec.ID, Title: sec.DisplayTitle(), Kind: KindTable, Table: t}, true
}

func buildComputed(sec formschema.Section, data map[string]any) (Section, bool) {
	if sec.Compute == nil {
		return Section{}, false
	}
	s := Section{ID: sec.ID, Title: sec.DisplayTitle(), Kind: KindFields}
	for _, c := range sec.Compute(data) {
		if v, ok := cleanValue(c.Value); ok {
			s.Fields = append(s.Fields, FieldValue{Label: c.Label, Value: v})
		}
	}
	return s, len(s.Fields) > 0
}

// buildGeneric emits one field table per object-valued top-level key.
func buildGeneric(data map[string]any) SectionMap {
	var out SectionMap
	appendGeneric(&out, data, nil)
	return out
}

// appendGeneric adds a field table for every object-valued key of data not
// in skip. Ids are slugs of the key, suffixed when taken or reserved.
func appendGeneric(out *SectionMap, data map[string]any, skip map[string]bool) {
	for _, key := range sortedKeys(data) {
		if transientKeys[key] || skip[key] {
			continue
		}
		obj, ok := data[key].(map[string]any)
		if !ok {
			continue
		}
		s := Section{
			ID:    helper.Slugify(key, 60),
			Title: formschema.Section{Title: Labelize(key)}.DisplayTitle(),
			Kind:  KindFields,
		}
		for _, k := range sortedKeys(obj) {
			if v, ok := cleanValue(obj[k]); ok {
				s.Fields = append(s.Fields, FieldValue{Label: Labelize(k), Value: v})
			}
		}
		if len(s.Fields) > 0 {
			out.Append(s, reservedIDs)
		}
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
