package formschema

// Target locates a field or checklist item inside a schema.
type Target struct {
	SectionID string
	Title     string // decorated section title
	Field     *Field
	Item      *Item
}

// Lookup is the flattened view of one schema, keyed by field/item id.
type Lookup struct {
	fields map[string]Target
	items  map[string]Target
}

func (l Lookup) Field(id string) (Target, bool) {
	t, ok := l.fields[id]
	return t, ok
}

func (l Lookup) Item(id string) (Target, bool) {
	t, ok := l.items[id]
	return t, ok
}

func buildLookup(fs *FormSchema) Lookup {
	l := Lookup{fields: map[string]Target{}, items: map[string]Target{}}
	for _, sec := range fs.Sections {
		title := sec.DisplayTitle()
		for i := range sec.Fields {
			f := sec.Fields[i]
			if _, dup := l.fields[f.ID]; dup {
				continue
			}
			l.fields[f.ID] = Target{SectionID: sec.ID, Title: title, Field: &f}
		}
		for i := range sec.Items {
			it := sec.Items[i]
			if _, dup := l.items[it.ID]; dup {
				continue
			}
			l.items[it.ID] = Target{SectionID: sec.ID, Title: title, Item: &it}
		}
	}
	return l
}

// Registry holds the compiled-in schemas and their lookups. It is built
// once at start-up and never mutated afterwards.
type Registry struct {
	schemas map[FormType]*FormSchema
	lookups map[FormType]Lookup
}

func NewRegistry(schemas ...FormSchema) *Registry {
	r := &Registry{
		schemas: make(map[FormType]*FormSchema, len(schemas)),
		lookups: make(map[FormType]Lookup, len(schemas)),
	}
	for i := range schemas {
		fs := schemas[i]
		r.schemas[fs.Type] = &fs
		r.lookups[fs.Type] = buildLookup(&fs)
	}
	return r
}

// NewDefaultRegistry returns the registry with every known form catalog.
func NewDefaultRegistry() *Registry {
	return NewRegistry(
		MaintenanceSchema(),
		InspectionSchema(),
		GroundingSchema(),
		SafetySchema(),
		EquipmentSchema(),
		ExecutedSchema(),
	)
}

func (r *Registry) Schema(t FormType) (*FormSchema, bool) {
	if r == nil {
		return nil, false
	}
	fs, ok := r.schemas[t]
	return fs, ok
}

func (r *Registry) Lookup(t FormType) Lookup {
	if r == nil {
		return Lookup{}
	}
	return r.lookups[t]
}

// HasSection reports whether id names a section of any registered schema.
func (r *Registry) HasSection(t FormType, id string) bool {
	fs, ok := r.Schema(t)
	if !ok {
		return false
	}
	_, ok = fs.Section(id)
	return ok
}
