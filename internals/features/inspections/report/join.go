package report

import (
	"strings"
	"unicode"
)

// ReportSection is a data section with the photos that document it.
// Photo-only sections have Kind "photos" and no data.
type ReportSection struct {
	Section `yaml:",inline"`
	Photos  []LabeledAsset `json:"photos" yaml:"photos"`
}

// MatchTitle compares two decorated section titles: exact match, else
// case-insensitive containment once leading icons are stripped.
func MatchTitle(a, b string) bool {
	if a == b {
		return true
	}
	x, y := bareTitle(a), bareTitle(b)
	if x == "" || y == "" {
		return false
	}
	return strings.Contains(x, y) || strings.Contains(y, x)
}

func bareTitle(s string) string {
	s = strings.TrimLeftFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.ToLower(strings.TrimSpace(s))
}

// Join attaches photo groups to data sections by section id, falling back
// to title matching. Groups for schema sections without data follow the
// data sections; unmatched photos end up in "Otras fotos", last.
func Join(sections SectionMap, groups []AssetGroup) []ReportSection {
	out := make([]ReportSection, 0, sections.Len()+len(groups))
	pos := make(map[string]int, sections.Len())
	for _, s := range sections.list {
		pos[s.ID] = len(out)
		out = append(out, ReportSection{Section: s, Photos: []LabeledAsset{}})
	}

	var others []LabeledAsset
	for _, g := range groups {
		if g.SectionID == OtherPhotosID {
			others = append(others, g.Assets...)
			continue
		}
		if i, ok := pos[g.SectionID]; ok {
			out[i].Photos = append(out[i].Photos, g.Assets...)
			continue
		}
		if i, ok := matchByTitle(out, g.Title); ok {
			out[i].Photos = append(out[i].Photos, g.Assets...)
			continue
		}
		if g.SectionID == "" {
			others = append(others, g.Assets...)
			continue
		}
		pos[g.SectionID] = len(out)
		out = append(out, ReportSection{
			Section: Section{ID: g.SectionID, Title: g.Title, Kind: KindPhotos},
			Photos:  append([]LabeledAsset(nil), g.Assets...),
		})
	}

	if len(others) > 0 {
		out = append(out, ReportSection{
			Section: Section{ID: OtherPhotosID, Title: OtherPhotosTitle, Kind: KindPhotos},
			Photos:  others,
		})
	}
	return out
}

func matchByTitle(out []ReportSection, title string) (int, bool) {
	for i, rs := range out {
		if rs.Kind == KindPhotos {
			continue
		}
		if MatchTitle(rs.Title, title) {
			return i, true
		}
	}
	return 0, false
}
