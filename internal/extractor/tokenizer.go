package extractor

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Token is a normalized word or number unit with its offsets in the
// normalized text. Offsets are rune positions, kept for highlighting and
// for the assembler's position tie-break.
type Token struct {
	Text  string
	Start int
	End   int
}

// accentStripper removes combining marks after NFD decomposition,
// turning "é" into "e", "è" into "e", etc.
var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// specialReplacer maps characters that survive decomposition but have a
// plain equivalent in listing text ("m²" must become "m2" so the budget
// extractor can tell surface units from price scales).
var specialReplacer = strings.NewReplacer(
	"²", "2",
	"œ", "oe",
	"æ", "ae",
	"'", " ",
	"’", " ",
)

// Normalize lower-cases the input and strips accents and special
// characters. Safe on any UTF-8 input, including empty strings.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = specialReplacer.Replace(s)
	stripped, _, err := transform.String(accentStripper, s)
	if err != nil {
		// Transform only fails on invalid UTF-8; fall back to the
		// lowercased input rather than dropping the query.
		return s
	}
	return stripped
}

// Tokenize normalizes the input and splits it into ordered tokens.
// Letters and digits group together ("30m", "500m2" stay whole), decimal
// and thousand separators stay inside numbers ("1,5", "1.500.000"), and a
// hyphen is kept only between digits so range shorthand like "50-100"
// survives as a single token. Everything else separates tokens.
// Whitespace-only input yields an empty slice.
func Tokenize(s string) []Token {
	text := Normalize(s)
	rs := []rune(text)

	var tokens []Token
	start := -1

	flush := func(end int) {
		if start >= 0 {
			tokens = append(tokens, Token{Text: string(rs[start:end]), Start: start, End: end})
			start = -1
		}
	}

	for i, r := range rs {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if start < 0 {
				start = i
			}
		case r == ',' || r == '.' || r == '-':
			// Keep the separator only when wedged between digits.
			if start >= 0 && i > 0 && i+1 < len(rs) &&
				unicode.IsDigit(rs[i-1]) && unicode.IsDigit(rs[i+1]) {
				continue
			}
			flush(i)
		default:
			flush(i)
		}
	}
	flush(len(rs))

	return tokens
}
