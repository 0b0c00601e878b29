package report

import (
	"regexp"
	"strings"
)

var (
	reSeparators = regexp.MustCompile(`[_-]+`)
	reCamel      = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// Labelize turns a raw field id into a display label:
// "tipo_de_torre" → "Tipo de torre", "idSitio" → "Id Sitio".
// Only an ASCII first letter is capitalized; "ágil" stays as is.
func Labelize(id string) string {
	s := reSeparators.ReplaceAllString(id, " ")
	s = reCamel.ReplaceAllString(s, "$1 $2")
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if c := s[0]; c >= 'a' && c <= 'z' {
		return strings.ToUpper(s[:1]) + s[1:]
	}
	return s
}

// labelFor prefers the explicit schema label.
func labelFor(id, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return Labelize(id)
}
