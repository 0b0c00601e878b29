package report

import (
	"fmt"
	"strings"
	"time"

	"ptiadmin_backend/internals/features/inspections/formschema"
)

const (
	MetaSectionID      = "inicio"
	SubmitterSectionID = "enviado-por"

	displayTimeLayout = "02/01/2006 15:04:05"
)

// Report is the fully normalized view of one submission.
type Report struct {
	FormType    formschema.FormType `json:"form_type" yaml:"form_type"`
	FormCode    string              `json:"form_code" yaml:"form_code"`
	FormLabel   string              `json:"form_label" yaml:"form_label"`
	Site        SiteInfo            `json:"site" yaml:"site"`
	Meta        MetaInfo            `json:"meta" yaml:"meta"`
	SubmittedBy *Submitter          `json:"submitted_by" yaml:"submitted_by"`
	Sections    SectionMap          `json:"sections" yaml:"sections"`
	Photos      []AssetGroup        `json:"photos" yaml:"photos"`
	Joined      []ReportSection     `json:"joined" yaml:"joined"`
	Summary     Summary             `json:"summary" yaml:"summary"`
}

// Normalizer turns stored submissions into reports using one immutable
// schema registry.
type Normalizer struct {
	reg *formschema.Registry
	loc *time.Location
}

// NewNormalizer builds a normalizer. loc is used to display capture
// timestamps; nil means UTC.
func NewNormalizer(reg *formschema.Registry, loc *time.Location) *Normalizer {
	if reg == nil {
		reg = formschema.NewDefaultRegistry()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Normalizer{reg: reg, loc: loc}
}

func (n *Normalizer) Registry() *formschema.Registry { return n.reg }

// Normalize resolves payload, builds its sections and groups its assets.
// column is the submission's form_code column, used when the payload
// does not declare one.
func (n *Normalizer) Normalize(payload map[string]any, column string, assets []Asset) Report {
	r := Resolve(payload)
	code := FormCode(r, column)
	meta := formschema.MetaFor(code)

	rep := Report{
		FormType:    meta.Type,
		FormCode:    code,
		FormLabel:   meta.Label,
		Site:        ExtractSiteInfo(r),
		Meta:        ExtractMeta(r),
		SubmittedBy: ExtractSubmittedBy(r),
	}

	if s, ok := n.metaSection(rep.Meta); ok {
		rep.Sections.Set(s)
	}
	if rep.SubmittedBy != nil {
		rep.Sections.Set(n.submitterSection(*rep.SubmittedBy))
	}
	rep.Sections.Merge(Build(rep.FormType, r.Data, n.reg))

	rep.Photos = GroupAssets(assets, rep.FormType, n.reg)
	if rep.Photos == nil {
		rep.Photos = []AssetGroup{}
	}
	rep.Joined = Join(rep.Sections, rep.Photos)
	rep.Summary = Summarize(rep.Sections)
	return rep
}

func (n *Normalizer) metaSection(m MetaInfo) (Section, bool) {
	if m.empty() {
		return Section{}, false
	}
	s := Section{ID: MetaSectionID, Title: "📍 Inicio de inspección", Kind: KindFields}
	add := func(label, value string) {
		if value != "" {
			s.Fields = append(s.Fields, FieldValue{Label: label, Value: value})
		}
	}
	add("Fecha", m.Date)
	add("Hora", m.Time)
	add("Inicio", n.displayTime(m.StartedAt))
	if m.Lat != nil {
		lng := 0.0
		if m.Lng != nil {
			lng = *m.Lng
		}
		add("GPS", fmt.Sprintf("%.5f, %.5f", *m.Lat, lng))
	}
	return s, len(s.Fields) > 0
}

func (n *Normalizer) submitterSection(by Submitter) Section {
	orDash := func(v string) string {
		if v == "" {
			return Placeholder
		}
		return v
	}
	s := Section{ID: SubmitterSectionID, Title: "👤 Enviado por", Kind: KindFields}
	s.Fields = []FieldValue{
		{Label: "Nombre", Value: orDash(by.Name)},
		{Label: "Rol", Value: orDash(by.Role)},
		{Label: "Usuario", Value: orDash(by.Username)},
	}
	if by.SubmittedAt != "" {
		s.Fields = append(s.Fields, FieldValue{Label: "Fecha envío", Value: n.displayTime(by.SubmittedAt)})
	}
	return s
}

// displayTime formats RFC 3339 or epoch-millisecond stamps; anything else
// is shown as stored.
func (n *Normalizer) displayTime(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.In(n.loc).Format(displayTimeLayout)
	}
	if ms, ok := formschema.ToFloat(raw); ok && ms > 1e11 {
		return time.UnixMilli(int64(ms)).In(n.loc).Format(displayTimeLayout)
	}
	return raw
}
