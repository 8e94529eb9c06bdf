package extractor

import (
	"strings"
)

// Place is a known city, commune or neighborhood
type Place struct {
	Name      string // canonical display form
	Region    string
	Latitude  float64
	Longitude float64
	// City is set for neighborhoods and names the containing city
	City string
}

// Gazetteer is the fixed reference list of known place names. It is built
// once at startup and read-only afterwards, so concurrent lookups need no
// coordination.
type Gazetteer struct {
	byKey    map[string]*Place
	maxWords int
}

// NewGazetteer builds the default gazetteer: Senegalese cities with their
// coordinates plus the Dakar neighborhoods that show up in listings.
func NewGazetteer() *Gazetteer {
	g := &Gazetteer{byKey: make(map[string]*Place)}

	cities := []Place{
		{Name: "Dakar", Region: "Cap-Vert", Latitude: 14.6928, Longitude: -17.4467},
		{Name: "Pikine", Region: "Cap-Vert", Latitude: 14.7640, Longitude: -17.3900},
		{Name: "Guédiawaye", Region: "Cap-Vert", Latitude: 14.7739, Longitude: -17.3367},
		{Name: "Rufisque", Region: "Cap-Vert", Latitude: 14.7167, Longitude: -17.2667},
		{Name: "Thiès", Region: "Thiès", Latitude: 14.7956, Longitude: -16.9981},
		{Name: "Mbour", Region: "Thiès", Latitude: 14.4167, Longitude: -16.9667},
		{Name: "Saint-Louis", Region: "Saint-Louis", Latitude: 16.0179, Longitude: -16.4896},
		{Name: "Kaolack", Region: "Kaolack", Latitude: 14.1500, Longitude: -16.0833},
		{Name: "Ziguinchor", Region: "Ziguinchor", Latitude: 12.5833, Longitude: -16.2667},
		{Name: "Tambacounda", Region: "Tambacounda", Latitude: 13.7667, Longitude: -13.6833},
		{Name: "Kolda", Region: "Kolda", Latitude: 12.8833, Longitude: -14.9500},
		{Name: "Louga", Region: "Louga", Latitude: 15.6181, Longitude: -16.2244},
		{Name: "Diourbel", Region: "Diourbel", Latitude: 14.6500, Longitude: -16.2333},
		{Name: "Fatick", Region: "Fatick", Latitude: 14.3389, Longitude: -16.4111},
		{Name: "Kaffrine", Region: "Kaffrine", Latitude: 14.1053, Longitude: -15.5508},
		{Name: "Kédougou", Region: "Kédougou", Latitude: 12.5579, Longitude: -12.1784},
		{Name: "Sédhiou", Region: "Sédhiou", Latitude: 12.7081, Longitude: -15.5569},
		{Name: "Matam", Region: "Matam", Latitude: 15.6556, Longitude: -13.2553},
		{Name: "Bambey", Region: "Diourbel", Latitude: 14.6984, Longitude: -16.2738},
		{Name: "Richard-Toll", Region: "Saint-Louis", Latitude: 16.4625, Longitude: -15.7008},
		{Name: "Touba", Region: "Diourbel", Latitude: 14.8500, Longitude: -15.8833},
	}

	neighborhoods := []Place{
		{Name: "Plateau", City: "Dakar"},
		{Name: "Médina", City: "Dakar"},
		{Name: "Almadies", City: "Dakar"},
		{Name: "Mermoz", City: "Dakar"},
		{Name: "Ouakam", City: "Dakar"},
		{Name: "Yoff", City: "Dakar"},
		{Name: "Ngor", City: "Dakar"},
		{Name: "Fann", City: "Dakar"},
		{Name: "Point E", City: "Dakar"},
		{Name: "Sacré-Cœur", City: "Dakar"},
		{Name: "Liberté", City: "Dakar"},
		{Name: "Grand Yoff", City: "Dakar"},
		{Name: "Parcelles Assainies", City: "Dakar"},
		{Name: "HLM", City: "Dakar"},
		{Name: "Hann", City: "Dakar"},
		{Name: "Keur Massar", City: "Dakar"},
		{Name: "Mamelles", City: "Dakar"},
		{Name: "Sicap", City: "Dakar"},
	}

	for i := range cities {
		g.add(cities[i].Name, &cities[i])
	}
	for i := range neighborhoods {
		g.add(neighborhoods[i].Name, &neighborhoods[i])
	}

	// Spellings seen in scraped listings
	aliases := map[string]string{
		"st louis":     "Saint-Louis",
		"saint louis":  "Saint-Louis",
		"richard toll": "Richard-Toll",
		"sacre coeur":  "Sacré-Cœur",
		"parcelles":    "Parcelles Assainies",
	}
	for alias, canonical := range aliases {
		if p := g.byKey[normalizeKey(canonical)]; p != nil {
			g.add(alias, p)
		}
	}

	return g
}

func (g *Gazetteer) add(name string, p *Place) {
	key := normalizeKey(name)
	if _, exists := g.byKey[key]; !exists {
		g.byKey[key] = p
	}
	if n := len(strings.Fields(key)); n > g.maxWords {
		g.maxWords = n
	}
}

// normalizeKey reduces a place name to the token form the tokenizer
// produces: lowercase, accent-free, space-separated words.
func normalizeKey(name string) string {
	toks := Tokenize(name)
	parts := make([]string, len(toks))
	for i, t := range toks {
		parts[i] = t.Text
	}
	return strings.Join(parts, " ")
}

// Lookup returns the place matching the given normalized word sequence,
// or nil. Matching is exact; unknown names are simply not locations.
func (g *Gazetteer) Lookup(words ...string) *Place {
	return g.byKey[strings.Join(words, " ")]
}

// MaxWords is the longest place name in words, bounding the n-gram window
// the location extractor scans with.
func (g *Gazetteer) MaxWords() int {
	return g.maxWords
}
