package report

import (
	"strings"

	"github.com/paulmach/orb"

	"ptiadmin_backend/internals/features/inspections/formschema"
	helper "ptiadmin_backend/internals/helpers"
)

// Resolved is a submission payload with its envelope nesting removed.
// Every map is non-nil.
type Resolved struct {
	Outer map[string]any
	Inner map[string]any
	Data  map[string]any
	Meta  map[string]any
}

// Resolve unwraps the payload column. Older app versions store the form
// snapshot directly, newer ones wrap it once more under "payload".
func Resolve(payload map[string]any) Resolved {
	outer := payload
	if outer == nil {
		outer = map[string]any{}
	}
	inner := outer
	if p, ok := outer["payload"].(map[string]any); ok {
		inner = p
	}
	return Resolved{
		Outer: outer,
		Inner: inner,
		Data:  formschema.ObjectAt(inner, "data"),
		Meta:  formschema.ObjectAt(inner, "meta"),
	}
}

// ResolveRecord resolves a whole submission row ({id, form_code, payload, ...}).
func ResolveRecord(record map[string]any) Resolved {
	p, _ := record["payload"].(map[string]any)
	return Resolve(p)
}

// FormCode picks the declared form code: outer.form_code, then the inner
// autosave bucket, then the table column.
func FormCode(r Resolved, column string) string {
	if s := text(r.Outer, "form_code"); s != "" {
		return s
	}
	if s := text(r.Inner, "autosave_bucket"); s != "" {
		return s
	}
	return column
}

/* ===============================
   Extractors
=================================*/

type SiteInfo struct {
	NombreSitio string `json:"nombre_sitio" yaml:"nombre_sitio"`
	IDSitio     string `json:"id_sitio" yaml:"id_sitio"`
	Proveedor   string `json:"proveedor" yaml:"proveedor"`
	TipoSitio   string `json:"tipo_sitio" yaml:"tipo_sitio"`
	Coordenadas string `json:"coordenadas" yaml:"coordenadas"`
	Direccion   string `json:"direccion" yaml:"direccion"`
}

// ExtractSiteInfo reads site identity from whichever section the form
// type keeps it in (siteInfo, formData or datos).
func ExtractSiteInfo(r Resolved) SiteInfo {
	sources := []map[string]any{
		formschema.ObjectAt(r.Data, "siteInfo"),
		formschema.ObjectAt(r.Data, "formData"),
		formschema.ObjectAt(r.Data, "datos"),
	}
	first := func(key, fallback string) string {
		for _, src := range sources {
			if s := text(src, key); s != "" {
				return s
			}
		}
		return fallback
	}
	return SiteInfo{
		NombreSitio: first("nombreSitio", Placeholder),
		IDSitio:     first("idSitio", Placeholder),
		Proveedor:   first("proveedor", Placeholder),
		TipoSitio:   first("tipoSitio", ""),
		Coordenadas: first("coordenadas", ""),
		Direccion:   first("direccion", ""),
	}
}

type MetaInfo struct {
	Date      string   `json:"date,omitempty" yaml:"date,omitempty"`
	Time      string   `json:"time,omitempty" yaml:"time,omitempty"`
	StartedAt string   `json:"started_at,omitempty" yaml:"started_at,omitempty"`
	Lat       *float64 `json:"lat" yaml:"lat"`
	Lng       *float64 `json:"lng" yaml:"lng"`
}

// Point returns the capture location when both coordinates are present.
func (m MetaInfo) Point() (orb.Point, bool) {
	if m.Lat == nil || m.Lng == nil {
		return orb.Point{}, false
	}
	return orb.Point{*m.Lng, *m.Lat}, true
}

func (m MetaInfo) empty() bool {
	return m.Date == "" && m.Time == "" && m.StartedAt == "" && m.Lat == nil && m.Lng == nil
}

func ExtractMeta(r Resolved) MetaInfo {
	out := MetaInfo{
		Date:      text(r.Meta, "date"),
		Time:      text(r.Meta, "time"),
		StartedAt: text(r.Meta, "startedAt"),
	}
	if f, ok := formschema.ToFloat(r.Meta["lat"]); ok && f != 0 {
		out.Lat = &f
	}
	if f, ok := formschema.ToFloat(r.Meta["lng"]); ok && f != 0 {
		out.Lng = &f
	}
	return out
}

type Submitter struct {
	Name        string `json:"name" yaml:"name"`
	Role        string `json:"role" yaml:"role"`
	Username    string `json:"username" yaml:"username"`
	SubmittedAt string `json:"submitted_at,omitempty" yaml:"submitted_at,omitempty"`
}

// ExtractSubmittedBy returns nil when the payload carries no submitter.
func ExtractSubmittedBy(r Resolved) *Submitter {
	by, ok := r.Inner["submitted_by"].(map[string]any)
	if !ok {
		return nil
	}
	return &Submitter{
		Name:        text(by, "name"),
		Role:        text(by, "role"),
		Username:    text(by, "username"),
		SubmittedAt: text(r.Inner, "submitted_at"),
	}
}

// SearchText is the folded haystack the list filter matches against.
func SearchText(id, formCode, deviceID string, site SiteInfo, by *Submitter) string {
	parts := []string{id, formCode, deviceID, site.NombreSitio, site.IDSitio, site.Proveedor, site.Direccion}
	if by != nil {
		parts = append(parts, by.Name, by.Username)
	}
	kept := parts[:0]
	for _, p := range parts {
		if p != "" && p != Placeholder {
			kept = append(kept, p)
		}
	}
	return helper.FoldText(strings.Join(kept, " "))
}
