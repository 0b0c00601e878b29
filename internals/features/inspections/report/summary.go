package report

// Summary counts checklist answers across a report.
type Summary struct {
	Total     int `json:"total" yaml:"total"`
	Bueno     int `json:"bueno" yaml:"bueno"`
	Regular   int `json:"regular" yaml:"regular"`
	Malo      int `json:"malo" yaml:"malo"`
	NA        int `json:"na" yaml:"na"`
	Pendiente int `json:"pendiente" yaml:"pendiente"`
}

func Summarize(sections SectionMap) Summary {
	var s Summary
	for _, sec := range sections.list {
		if sec.Kind != KindChecklist {
			continue
		}
		for _, r := range sec.Rows {
			s.Total++
			switch r.Status {
			case statusLabels["bueno"]:
				s.Bueno++
			case statusLabels["regular"]:
				s.Regular++
			case statusLabels["malo"]:
				s.Malo++
			case statusLabels["na"]:
				s.NA++
			case Pending, Placeholder:
				s.Pendiente++
			}
		}
	}
	return s
}
