// Package query translates structured filters into parameterized SQL
// predicates for the repository, and back into human-readable summaries.
package query

import (
	"fmt"
	"strings"

	"immosearch/internal/model"
)

// Predicate is one translated, parameter-bound condition. Predicates are
// immutable after translation; the repository only reads them.
type Predicate struct {
	Column string
	Op     string
	Value  interface{}
	// Field names the filter slot the predicate came from, so summaries
	// can be rebuilt without consulting the original filter
	Field string
}

// Filter slot names carried on predicates
const (
	FieldMinPrice     = "min_price"
	FieldMaxPrice     = "max_price"
	FieldCity         = "city"
	FieldPropertyType = "property_type"
	FieldBedrooms     = "bedrooms"
	FieldTransaction  = "transaction_type"
)

// Translate maps a structured filter to its predicate set. Absent slots
// emit nothing: filters are conjunctive over present categories only.
func Translate(f *model.StructuredFilter) []Predicate {
	if f == nil {
		return nil
	}

	var preds []Predicate
	if f.MinPrice != nil {
		preds = append(preds, Predicate{Column: "price", Op: ">=", Value: *f.MinPrice, Field: FieldMinPrice})
	}
	if f.MaxPrice != nil {
		preds = append(preds, Predicate{Column: "price", Op: "<=", Value: *f.MaxPrice, Field: FieldMaxPrice})
	}
	if f.City != nil {
		preds = append(preds, Predicate{Column: "city", Op: "ILIKE", Value: "%" + *f.City + "%", Field: FieldCity})
	}
	if f.PropertyType != nil {
		preds = append(preds, Predicate{Column: "property_type", Op: "ILIKE", Value: "%" + string(*f.PropertyType) + "%", Field: FieldPropertyType})
	}
	if f.Bedrooms != nil {
		preds = append(preds, Predicate{Column: "bedrooms", Op: "=", Value: *f.Bedrooms, Field: FieldBedrooms})
	}
	if f.TransactionType != nil {
		preds = append(preds, Predicate{Column: "statut", Op: "=", Value: string(*f.TransactionType), Field: FieldTransaction})
	}
	return preds
}

// BuildWhere renders the predicates as $n-parameterized SQL clauses,
// continuing from argIndex. Returns the clauses, their arguments and the
// next free index.
func BuildWhere(preds []Predicate, argIndex int) ([]string, []interface{}, int) {
	clauses := make([]string, 0, len(preds))
	args := make([]interface{}, 0, len(preds))
	for _, p := range preds {
		clauses = append(clauses, fmt.Sprintf("%s %s $%d", p.Column, p.Op, argIndex))
		args = append(args, p.Value)
		argIndex++
	}
	return clauses, args, argIndex
}

// Describe renders one predicate in user-facing French
func (p Predicate) Describe() string {
	switch p.Field {
	case FieldMinPrice:
		return fmt.Sprintf("prix ≥ %s FCFA", formatAmount(p.Value))
	case FieldMaxPrice:
		return fmt.Sprintf("prix ≤ %s FCFA", formatAmount(p.Value))
	case FieldCity:
		return "zone: " + trimPattern(p.Value)
	case FieldPropertyType:
		return "type: " + trimPattern(p.Value)
	case FieldBedrooms:
		return fmt.Sprintf("chambres: %v", p.Value)
	case FieldTransaction:
		return fmt.Sprintf("transaction: %v", p.Value)
	default:
		return fmt.Sprintf("%s %s %v", p.Column, p.Op, p.Value)
	}
}

// Summarize renders the whole predicate set as one line. Every predicate
// contributes exactly one clause, so no extracted field is lost between
// the filter and what the user sees.
func Summarize(preds []Predicate) string {
	if len(preds) == 0 {
		return "aucun filtre"
	}
	parts := make([]string, len(preds))
	for i, p := range preds {
		parts[i] = p.Describe()
	}
	return strings.Join(parts, " · ")
}

// trimPattern strips the ILIKE wildcards off a pattern value
func trimPattern(v interface{}) string {
	s, _ := v.(string)
	return strings.Trim(s, "%")
}

// formatAmount renders an FCFA amount with thin grouping
func formatAmount(v interface{}) string {
	f, ok := v.(float64)
	if !ok {
		return fmt.Sprintf("%v", v)
	}
	n := int64(f)
	if n == 0 {
		return "0"
	}
	var groups []string
	for n > 0 {
		if n >= 1000 {
			groups = append([]string{fmt.Sprintf("%03d", n%1000)}, groups...)
		} else {
			groups = append([]string{fmt.Sprintf("%d", n%1000)}, groups...)
		}
		n /= 1000
	}
	return strings.Join(groups, " ")
}
