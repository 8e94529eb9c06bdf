package extractor

import (
	"immosearch/internal/model"
)

// TransactionRule is one (keyword, vote) pair of the classifier. The table
// is exported through Rules so tests can enumerate every pattern.
type TransactionRule struct {
	Keyword string
	Vote    model.TransactionType
	Weight  int
}

// transactionRules mirrors the cue words found in listing titles: rental
// queries talk about rent and months, sale queries about buying and deeds.
var transactionRules = []TransactionRule{
	{"louer", model.TransactionRent, 3},
	{"loue", model.TransactionRent, 3},
	{"location", model.TransactionRent, 3},
	{"loyer", model.TransactionRent, 3},
	{"bail", model.TransactionRent, 2},
	{"locataire", model.TransactionRent, 2},
	{"mois", model.TransactionRent, 2},
	{"mensuel", model.TransactionRent, 2},
	{"mensuelle", model.TransactionRent, 2},
	{"meuble", model.TransactionRent, 1},
	{"meublee", model.TransactionRent, 1},

	{"acheter", model.TransactionSale, 3},
	{"achat", model.TransactionSale, 3},
	{"vendre", model.TransactionSale, 3},
	{"vente", model.TransactionSale, 3},
	{"vend", model.TransactionSale, 2},
	{"acquisition", model.TransactionSale, 2},
	{"acquerir", model.TransactionSale, 2},
	{"foncier", model.TransactionSale, 2},
	{"notaire", model.TransactionSale, 2},
	{"investissement", model.TransactionSale, 1},
}

// TransactionClassifier classifies a query as sale or rental by weighted
// keyword votes. TieDefault decides ties between non-zero scores; a query
// with no cue words produces no entity at all so an unrelated query stays
// unfiltered.
type TransactionClassifier struct {
	TieDefault model.TransactionType
}

// Rules exposes the vote table
func (t *TransactionClassifier) Rules() []TransactionRule {
	return transactionRules
}

// Extract tallies keyword votes over the token sequence
func (t *TransactionClassifier) Extract(tokens []Token) []Entity {
	index := make(map[string]TransactionRule, len(transactionRules))
	for _, rule := range transactionRules {
		index[rule.Keyword] = rule
	}

	rentScore, saleScore := 0, 0
	lastMatch := -1
	for i, tok := range tokens {
		rule, ok := index[tok.Text]
		if !ok {
			continue
		}
		lastMatch = i
		if rule.Vote == model.TransactionRent {
			rentScore += rule.Weight
		} else {
			saleScore += rule.Weight
		}
	}

	if rentScore == 0 && saleScore == 0 {
		return nil
	}

	kind := t.TieDefault
	confidence := confidenceImplied
	switch {
	case rentScore > saleScore:
		kind = model.TransactionRent
		confidence = confidenceExplicit
	case saleScore > rentScore:
		kind = model.TransactionSale
		confidence = confidenceExplicit
	}

	return []Entity{{
		Category:    CategoryTransaction,
		Confidence:  confidence,
		SpanStart:   lastMatch,
		SpanEnd:     lastMatch,
		Transaction: kind,
	}}
}
