package report

import (
	"strings"
	"time"

	"ptiadmin_backend/internals/features/inspections/formschema"
)

const (
	OtherPhotosID    = "otras-fotos"
	OtherPhotosTitle = "📷 Otras fotos"
)

// Asset is a stored photo attached to a submission.
type Asset struct {
	ID           string    `json:"id" yaml:"id"`
	SubmissionID string    `json:"submission_id" yaml:"submission_id"`
	AssetType    string    `json:"asset_type" yaml:"asset_type"`
	PublicURL    string    `json:"public_url" yaml:"public_url"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
}

type LabeledAsset struct {
	Asset `yaml:",inline"`
	Label string `json:"label" yaml:"label"`
}

type AssetGroup struct {
	SectionID string         `json:"section_id" yaml:"section_id"`
	Title     string         `json:"title" yaml:"title"`
	Assets    []LabeledAsset `json:"assets" yaml:"assets"`
}

// placement is where one asset goes.
type placement struct {
	sectionID string
	title     string
	label     string
}

func other(label string) placement {
	return placement{sectionID: OtherPhotosID, title: OtherPhotosTitle, label: label}
}

// GroupAssets buckets photos by the section they document. Assets without
// a URL are skipped; every other asset lands in exactly one group, falling
// back to "Otras fotos". Groups keep first-appearance order.
func GroupAssets(assets []Asset, t formschema.FormType, reg *formschema.Registry) []AssetGroup {
	var (
		groups []AssetGroup
		index  = map[string]int{}
	)
	lookup := reg.Lookup(t)
	fs, _ := reg.Schema(t)

	for _, a := range assets {
		if a.PublicURL == "" {
			continue
		}
		p := place(a.AssetType, t, lookup, fs)

		i, ok := index[p.sectionID]
		if !ok {
			i = len(groups)
			index[p.sectionID] = i
			groups = append(groups, AssetGroup{SectionID: p.sectionID, Title: p.title})
		}
		groups[i].Assets = append(groups[i].Assets, LabeledAsset{Asset: a, Label: p.label})
	}
	return groups
}

func place(assetType string, t formschema.FormType, lookup formschema.Lookup, fs *formschema.FormSchema) placement {
	parts := strings.Split(assetType, ":")
	part := func(n int, def string) string {
		if n < len(parts) {
			return parts[n]
		}
		return def
	}
	fallback := assetType
	if fallback == "" {
		fallback = "Foto"
	}

	switch t {
	case formschema.Maintenance:
		itemID, variant := part(1, ""), part(2, "photo")
		if variant == "" {
			variant = "photo"
		}
		if tg, ok := lookup.Field(itemID); ok && !tg.Field.Tabular() {
			return placement{tg.SectionID, tg.Title, tg.Field.Label}
		}
		if tg, ok := lookup.Item(itemID); ok {
			return placement{tg.SectionID, tg.Title, tg.Item.Name + " (" + variantLabel(variant, "Foto") + ")"}
		}
		return other("Ítem " + itemID + " (" + variant + ")")

	case formschema.Inspection:
		itemID := part(1, "")
		if tg, ok := lookup.Item(itemID); ok {
			return placement{tg.SectionID, tg.Title, tg.Item.Name}
		}
		return other("Ítem " + itemID)

	case formschema.Executed:
		actID, variant := part(1, ""), part(2, "")
		sec, ok := photoSection(fs)
		if !ok {
			return other(fallback)
		}
		label := actID
		if variant != "" {
			label += " — " + variantLabel(variant, variant)
		}
		return placement{sec.ID, sec.DisplayTitle(), label}

	case formschema.Equipment:
		field := part(1, "")
		sec, ok := photoSection(fs)
		if !ok {
			return other(fallback)
		}
		label := field
		if tg, ok := lookup.Field(field); ok && tg.SectionID == sec.ID && tg.Field.Label != "" {
			label = tg.Field.Label
		}
		return placement{sec.ID, sec.DisplayTitle(), label}

	case formschema.Grounding, formschema.Safety:
		// these clients upload with the bare field id, no prefix
		if tg, ok := lookup.Field(assetType); ok && !tg.Field.Tabular() {
			return placement{tg.SectionID, tg.Title, labelFor(tg.Field.ID, tg.Field.Label)}
		}
		return other(fallback)
	}

	if len(parts) > 1 {
		if l := strings.Join(parts[1:], " · "); l != "" {
			return other(l)
		}
	}
	return other(fallback)
}

func variantLabel(v, otherwise string) string {
	switch v {
	case "before":
		return "Antes"
	case "after":
		return "Después"
	}
	return otherwise
}

// photoSection is the schema's photo-only section, if any.
func photoSection(fs *formschema.FormSchema) (formschema.Section, bool) {
	if fs == nil {
		return formschema.Section{}, false
	}
	for _, s := range fs.Sections {
		if s.Kind == formschema.KindPhotos {
			return s, true
		}
	}
	return formschema.Section{}, false
}
