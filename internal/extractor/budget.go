package extractor

import (
	"regexp"
	"strconv"
	"strings"
)

// Price scale words. "m" alone is ambiguous with metres but in price
// position ("30m", "moins de 30 m") listings always mean millions of FCFA.
var scaleWords = map[string]float64{
	"k":         1_000,
	"mille":     1_000,
	"m":         1_000_000,
	"million":   1_000_000,
	"millions":  1_000_000,
	"milliard":  1_000_000_000,
	"milliards": 1_000_000_000,
}

// Currency words that may trail an amount without changing it
var currencyWords = map[string]bool{
	"fcfa":   true,
	"cfa":    true,
	"f":      true,
	"franc":  true,
	"francs": true,
}

// Surface units: a number carrying one of these is an area, never a price
var surfaceUnits = map[string]bool{
	"m2":      true,
	"metre":   true,
	"metres":  true,
	"ha":      true,
	"hectare": true,
}

// Words whose neighboring number is a count, not an amount
var countWords = map[string]bool{
	"chambre":  true,
	"chambres": true,
	"piece":    true,
	"pieces":   true,
	"salle":    true,
	"salles":   true,
	"salon":    true,
	"salons":   true,
	"etage":    true,
	"etages":   true,
	"niveau":   true,
	"niveaux":  true,
}

// Direction words read in the window before an amount
var maxBoundWords = map[string]bool{
	"moins":   true,
	"max":     true,
	"maximum": true,
	"jusqu":   true,
	"plafond": true,
	"sous":    true,
}

var minBoundWords = map[string]bool{
	"plus":    true,
	"min":     true,
	"minimum": true,
	"partir":  true, // "à partir de"
	"dessus":  true, // "au dessus de"
}

// numberToken splits a token into its numeric part and an attached
// alphabetic suffix ("30m" -> "30", "m"; "500m2" -> "500", "m2")
var numberToken = regexp.MustCompile(`^([0-9][0-9.,]*)([a-z][a-z0-9]*)?$`)

// rangeToken matches hyphenated range shorthand like "50-100"
var rangeToken = regexp.MustCompile(`^([0-9][0-9.,]*)-([0-9][0-9.,]*)$`)

var thousandGroups = regexp.MustCompile(`^\d{1,3}([.,]\d{3})+$`)

// parseAmount parses a numeric literal with French separators: dot or
// comma groups of three are thousand separators, otherwise a comma is a
// decimal comma.
func parseAmount(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	if thousandGroups.MatchString(s) {
		s = strings.NewReplacer(".", "", ",", "").Replace(s)
	} else {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// BudgetExtractor turns numeric mentions into price bound candidates.
// BareThreshold is the amount above which a unit-less number is taken as
// an absolute FCFA price.
type BudgetExtractor struct {
	BareThreshold float64
}

// boundKind describes which side of the range an amount constrains
type boundKind int

const (
	boundNone boundKind = iota
	boundMin
	boundMax
)

// amount is a parsed numeric mention
type amount struct {
	value float64
	scale float64 // 1 when no scale word was attached
	end   int     // index past the consumed tokens
}

func (a amount) scaled() bool { return a.scale != 1 }

// Extract scans the token sequence for budget mentions
func (b *BudgetExtractor) Extract(tokens []Token) []Entity {
	var entities []Entity

	for i := 0; i < len(tokens); i++ {
		// "entre X et Y", "de X a Y"
		if tokens[i].Text == "entre" || tokens[i].Text == "de" {
			if e, next, ok := b.matchRangePhrase(tokens, i); ok {
				entities = append(entities, e)
				i = next - 1
				continue
			}
		}

		// "50-100" with an optional shared scale after
		if m := rangeToken.FindStringSubmatch(tokens[i].Text); m != nil {
			lo, okLo := parseAmount(m[1])
			hi, okHi := parseAmount(m[2])
			if okLo && okHi {
				scale, consumed := scaleAfter(tokens, i+1)
				lo *= scale
				hi *= scale
				if lo > hi {
					lo, hi = hi, lo
				}
				entities = append(entities, Entity{
					Category:   CategoryBudget,
					Confidence: confidenceExplicit,
					SpanStart:  i,
					SpanEnd:    i + consumed,
					MinPrice:   &lo,
					MaxPrice:   &hi,
				})
				i += consumed
				continue
			}
		}

		amt, ok := b.readAmount(tokens, i)
		if !ok {
			continue
		}
		if isCount(tokens, i, amt.end) {
			i = amt.end - 1
			continue
		}

		bound, strength := boundBefore(tokens, i)
		value := amt.value

		e := Entity{Category: CategoryBudget, SpanStart: i, SpanEnd: amt.end - 1}
		switch {
		case bound == boundMin:
			e.MinPrice = &value
			e.Confidence = strength
		case bound == boundMax:
			e.MaxPrice = &value
			e.Confidence = strength
		case amt.scaled() || value >= b.BareThreshold:
			// No direction word: assume the user states a ceiling
			e.MaxPrice = &value
			e.Confidence = confidenceImplied
		default:
			// Bare small number, probably not a price at all
			e.MaxPrice = &value
			e.Confidence = confidenceAmbiguous
		}

		entities = append(entities, e)
		i = amt.end - 1
	}

	return entities
}

// matchRangePhrase reads "entre <amount> et <amount>" or
// "de <amount> a <amount>" starting at the introducing token. An unscaled
// lower figure inherits the upper bound's scale ("entre 50 et 100
// millions" reads as 50M..100M).
func (b *BudgetExtractor) matchRangePhrase(tokens []Token, start int) (Entity, int, bool) {
	lo, ok := b.readAmount(tokens, start+1)
	if !ok {
		return Entity{}, 0, false
	}
	i := lo.end
	connective := i < len(tokens) && (tokens[i].Text == "et" || tokens[i].Text == "a")
	if connective {
		i++
	}
	// "de" introduces far more than ranges; without the connective it is
	// not one ("moins de 30 millions" must stay a single bound)
	if tokens[start].Text == "de" && !connective {
		return Entity{}, 0, false
	}
	hi, ok := b.readAmount(tokens, i)
	if !ok {
		return Entity{}, 0, false
	}
	// "entre 3 et 4 chambres" quantifies rooms, not money
	if isCount(tokens, start+1, hi.end) {
		return Entity{}, 0, false
	}

	loValue, hiValue := lo.value, hi.value
	if hi.scaled() && !lo.scaled() && loValue < 1000 {
		loValue *= hi.scale
	}
	if loValue > hiValue {
		loValue, hiValue = hiValue, loValue
	}

	return Entity{
		Category:   CategoryBudget,
		Confidence: confidenceExplicit,
		SpanStart:  start,
		SpanEnd:    hi.end - 1,
		MinPrice:   &loValue,
		MaxPrice:   &hiValue,
	}, hi.end, true
}

// readAmount parses an amount starting at index i, consuming an attached
// or following scale word and trailing currency words. Numbers carrying a
// surface unit are rejected outright.
func (b *BudgetExtractor) readAmount(tokens []Token, i int) (amount, bool) {
	if i >= len(tokens) {
		return amount{}, false
	}
	m := numberToken.FindStringSubmatch(tokens[i].Text)
	if m == nil {
		return amount{}, false
	}
	value, ok := parseAmount(m[1])
	if !ok {
		return amount{}, false
	}

	a := amount{value: value, scale: 1, end: i + 1}

	if suffix := m[2]; suffix != "" {
		if surfaceUnits[suffix] {
			return amount{}, false
		}
		scale, isScale := scaleWords[suffix]
		if !isScale && !currencyWords[suffix] {
			return amount{}, false
		}
		if isScale {
			a.value *= scale
			a.scale = scale
		}
	} else if a.end < len(tokens) {
		next := tokens[a.end].Text
		if surfaceUnits[next] {
			return amount{}, false
		}
		if scale, isScale := scaleWords[next]; isScale {
			a.value *= scale
			a.scale = scale
			a.end++
		}
	}

	// Swallow trailing currency words ("30 millions de fcfa")
	for a.end < len(tokens) {
		w := tokens[a.end].Text
		if currencyWords[w] {
			a.end++
			continue
		}
		if w == "de" && a.end+1 < len(tokens) && currencyWords[tokens[a.end+1].Text] {
			a.end += 2
			continue
		}
		break
	}

	return a, true
}

// scaleAfter reads an optional scale word at index i, returning the factor
// and how many tokens it consumed
func scaleAfter(tokens []Token, i int) (float64, int) {
	if i < len(tokens) {
		if scale, ok := scaleWords[tokens[i].Text]; ok {
			return scale, 1
		}
	}
	return 1, 0
}

// isCount reports whether the number at [i, end) quantifies rooms, floors
// or another countable rather than money. The forward scan steps over
// connectives and further numbers so "3 et 4 chambres" counts too.
func isCount(tokens []Token, i, end int) bool {
	j := end
	for j < len(tokens) && (tokens[j].Text == "et" || tokens[j].Text == "a" || isNumeric(tokens[j].Text)) {
		j++
	}
	if j < len(tokens) && countWords[tokens[j].Text] {
		return true
	}
	if i > 0 && countWords[tokens[i-1].Text] {
		return true
	}
	return false
}

// boundBefore inspects up to three tokens before the amount for a
// direction word, skipping the connectives "de", "d" and "a"
func boundBefore(tokens []Token, i int) (boundKind, float64) {
	seen := 0
	for j := i - 1; j >= 0 && seen < 3; j-- {
		w := tokens[j].Text
		if w == "de" || w == "d" || w == "a" || w == "au" {
			continue
		}
		seen++
		if maxBoundWords[w] {
			return boundMax, confidenceExplicit
		}
		if minBoundWords[w] {
			return boundMin, confidenceExplicit
		}
	}
	return boundNone, 0
}
