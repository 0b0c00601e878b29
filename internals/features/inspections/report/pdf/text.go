package pdf

import (
	"strings"
	"unicode"
)

// cp1252 runes above Latin-1 that the core fonts can draw.
var cp1252Extra = map[rune]bool{
	'€': true, '‚': true, 'ƒ': true, '„': true, '…': true, '†': true, '‡': true,
	'ˆ': true, '‰': true, 'Š': true, '‹': true, 'Œ': true, 'Ž': true, '‘': true,
	'’': true, '“': true, '”': true, '•': true, '–': true, '—': true, '˜': true,
	'™': true, 'š': true, '›': true, 'œ': true, 'ž': true, 'Ÿ': true,
}

var replacements = strings.NewReplacer("Ω", "ohm", "≥", ">=", "≤", "<=")

// plain drops emoji and other glyphs the core fonts lack, then trims
// what is left.
func plain(s string) string {
	s = replacements.Replace(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n' || r == '\t':
			b.WriteRune(' ')
		case r < 0x20:
		case r <= 0xFF, cp1252Extra[r]:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// heading strips the leading icon of a decorated title.
func heading(title string) string {
	t := strings.TrimLeftFunc(title, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return plain(t)
}
