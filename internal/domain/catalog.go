package domain

// Destination is one (airport code, display name) pair the aggregation
// engine fans out over.
type Destination struct {
	// Code is the IATA airport code (e.g., "BCN")
	Code string `json:"code"`

	// City is the human-readable city name (e.g., "Barcelona")
	City string `json:"city"`
}

// Catalog is the static set of destinations a search fans out over.
type Catalog []Destination

// DefaultCatalog returns the curated destination list for searches out of
// Berlin. Callers with a different origin inject their own catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		{Code: "BCN", City: "Barcelona"},
		{Code: "ALC", City: "Alicante"},
		{Code: "AGP", City: "Malaga"},
		{Code: "ATH", City: "Athens"},
		{Code: "VLC", City: "Valencia"},
		{Code: "NAP", City: "Naples"},
		{Code: "CIA", City: "Rome"},
		{Code: "PMI", City: "Palma de Mallorca"},
		{Code: "LIS", City: "Lisbon"},
		{Code: "PRG", City: "Prague"},
		{Code: "MXP", City: "Milan"},
		{Code: "BUD", City: "Budapest"},
		{Code: "BRU", City: "Brussels"},
		{Code: "DUB", City: "Dublin"},
		{Code: "EDI", City: "Edinburgh"},
		{Code: "FAO", City: "Faro"},
		{Code: "OPO", City: "Porto"},
		{Code: "PSA", City: "Pisa"},
		{Code: "VIE", City: "Vienna"},
		{Code: "ZAG", City: "Zagreb"},
	}
}

// LabelFor returns the display name for a destination code, or the code
// itself when the destination is not in the catalog.
func (c Catalog) LabelFor(code string) string {
	for _, d := range c {
		if d.Code == code {
			return d.City
		}
	}
	return code
}

// Contains reports whether the catalog includes the given code.
func (c Catalog) Contains(code string) bool {
	for _, d := range c {
		if d.Code == code {
			return true
		}
	}
	return false
}
