package helper

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reHyphen   = regexp.MustCompile(`-+`)
	reSpaces   = regexp.MustCompile(`\s+`)
)

// stripMarks drops diacritics (é → e) after NFD decomposition.
func stripMarks(s string) string {
	var buf []rune
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		buf = append(buf, r)
	}
	return norm.NFC.String(string(buf))
}

// Slugify turns free text into [a-z0-9-], without diacritics, hyphens
// compressed and trimmed, capped at maxLen (100 when <= 0). Falls back to "item".
func Slugify(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = 100
	}
	s = stripMarks(strings.ToLower(strings.TrimSpace(s)))

	s = reNonAlnum.ReplaceAllString(s, "-")
	s = reHyphen.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if utf8.RuneCountInString(s) > maxLen {
		rs := []rune(s)
		s = strings.Trim(string(rs[:maxLen]), "-")
	}
	if s == "" {
		s = "item"
	}
	return s
}

// FoldText lowercases, strips diacritics and collapses whitespace, so
// "José  Pérez" and "jose perez" compare equal.
func FoldText(s string) string {
	s = stripMarks(strings.ToLower(s))
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}
