package ryanair

// Response DTOs for the one-way fare search endpoint. Every nested level
// is a plain value type that zero-fills when the upstream omits it, so
// absence of any key yields zero fares rather than a parse error. Only a
// body that fails to decode at all is treated as a transient failure.

// oneWayFaresResponse is the top level of a fare search response.
type oneWayFaresResponse struct {
	// Currency is the ISO 4217 code all amounts are quoted in.
	// Defaults to EUR when absent.
	Currency string `json:"currency"`

	// Trips holds one entry per searched route.
	Trips []tripDTO `json:"trips"`
}

// tripDTO is the fare data for a single route.
type tripDTO struct {
	Origin      string        `json:"origin"`
	Destination string        `json:"destination"`
	Dates       []tripDateDTO `json:"dates"`
}

// tripDateDTO groups the flights departing on one calendar date.
type tripDateDTO struct {
	// DateOut is the departure date, ISO 8601 (may carry a time part).
	DateOut string `json:"dateOut"`

	Flights []flightDTO `json:"flights"`
}

// flightDTO is one departing flight with its fare classes.
type flightDTO struct {
	// Time holds the local departure and arrival timestamps, in that
	// order. May be empty; the date-level DateOut is the fallback.
	Time []string `json:"time"`

	// FaresLeft is the remaining seat count at the listed fares.
	// -1 means the upstream did not disclose it.
	FaresLeft int `json:"faresLeft"`

	RegularFare fareClassDTO `json:"regularFare"`
}

// fareClassDTO is a fare class with its priced entries.
type fareClassDTO struct {
	FareKey   string    `json:"fareKey"`
	FareClass string    `json:"fareClass"`
	Fares     []fareDTO `json:"fares"`
}

// fareDTO is one priced fare entry.
type fareDTO struct {
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`

	// Count is the number of passengers this amount covers.
	Count int `json:"count"`
}
