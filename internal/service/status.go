package service

import (
	"regexp"

	"immosearch/internal/extractor"
	"immosearch/internal/model"
)

// Scraped listings often carry no usable sale/rent status, so the search
// layer re-derives one from the title, the property type and the price.
// The detection is scoring-based: explicit cue words dominate, temporal
// markers ("/mois") and legal vocabulary ("titre foncier") rank next,
// and the price threshold arbitrates what remains.

// statusRule is one weighted pattern voting for a status
type statusRule struct {
	re     *regexp.Regexp
	status model.TransactionType
	weight int
}

// Patterns match the normalized (lowercase, accent-free) title
var statusRules = []statusRule{
	// Explicit rental words
	{regexp.MustCompile(`\b(louer|loue|location|a louer)\b`), model.TransactionRent, 10},
	{regexp.MustCompile(`\b(rent|rental|for rent|to let)\b`), model.TransactionRent, 10},
	// Temporal markers
	{regexp.MustCompile(`(/mois|\bpar mois\b|\bmensuel(le)?\b|\bmensualite\b)`), model.TransactionRent, 8},
	{regexp.MustCompile(`(/jour|\bpar jour\b|\bjournalier\b|/semaine)`), model.TransactionRent, 8},
	// Rental context
	{regexp.MustCompile(`\b(bail|locataire|loyer|garantie locative)\b`), model.TransactionRent, 5},
	{regexp.MustCompile(`\b(meuble|meublee|furnished)\b`), model.TransactionRent, 3},

	// Explicit sale words
	{regexp.MustCompile(`\b(vendre|vend|vente|a vendre)\b`), model.TransactionSale, 10},
	{regexp.MustCompile(`\b(sell|sale|for sale|selling)\b`), model.TransactionSale, 10},
	// Purchase process
	{regexp.MustCompile(`\b(acquisition|achat|acheter|acquerir)\b`), model.TransactionSale, 7},
	// Legal vocabulary
	{regexp.MustCompile(`\b(titre foncier|tf|notaire|acte de vente|immatriculation)\b`), model.TransactionSale, 7},
	// Investment context
	{regexp.MustCompile(`\b(investissement|investir|rentabilite|plus-value)\b`), model.TransactionSale, 2},
}

var landTypes = regexp.MustCompile(`\b(terrain|parcelle|lot|lotissement|plot|land)\b`)
var roomTypes = regexp.MustCompile(`\b(chambre|room)\b`)

// rentSaleThreshold is the FCFA price under which an undecided listing is
// assumed to be a rental
const rentSaleThreshold = 1_500_000

// StatusDetector classifies a listing as sale or rental
type StatusDetector struct{}

// Detect derives the listing status. Priority: a trustworthy stored
// status, then title patterns, then the property type (land always means
// sale), then the price threshold.
func (d *StatusDetector) Detect(title, propertyType *string, price *float64, stored *string) model.TransactionType {
	if stored != nil {
		switch extractor.Normalize(*stored) {
		case "vente", "sale", "a vendre", "vendre":
			return model.TransactionSale
		case "location", "rent", "rental", "a louer", "louer":
			return model.TransactionRent
		}
	}

	rentScore, saleScore := 0, 0

	if title != nil {
		text := extractor.Normalize(*title)
		for _, rule := range statusRules {
			if rule.re.MatchString(text) {
				if rule.status == model.TransactionRent {
					rentScore += rule.weight
				} else {
					saleScore += rule.weight
				}
			}
		}
	}

	if propertyType != nil {
		propText := extractor.Normalize(*propertyType)
		if landTypes.MatchString(propText) {
			// Land is never listed for rent on these sources
			return model.TransactionSale
		}
		if roomTypes.MatchString(propText) {
			rentScore += 3
		}
	}

	if price != nil && *price > 0 {
		rScore, sScore := priceScores(*price)
		rentScore += rScore
		saleScore += sScore
	}

	switch {
	case rentScore > saleScore:
		return model.TransactionRent
	case saleScore > rentScore:
		return model.TransactionSale
	case price != nil && *price >= rentSaleThreshold:
		return model.TransactionSale
	default:
		return model.TransactionRent
	}
}

// priceScores maps an FCFA price to (rent, sale) evidence. Rents in the
// Dakar market sit below 1.5M/month; sales start in the millions.
func priceScores(price float64) (int, int) {
	switch {
	case price < 500_000:
		return 8, 0
	case price < 1_500_000:
		return 6, 0
	case price < 5_000_000:
		return 1, 2
	case price < 20_000_000:
		return 0, 4
	case price < 50_000_000:
		return 0, 6
	default:
		return 0, 8
	}
}
