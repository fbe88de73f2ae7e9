package http

// SearchResponseDTO is the data transfer object for aggregation
// responses. It matches the expected API output format with snake_case
// fields.
type SearchResponseDTO struct {
	SearchCriteria SearchCriteriaDTO `json:"search_criteria"`
	Metadata       MetadataDTO       `json:"metadata"`
	Fares          []FareDTO         `json:"fares"`
}

// SearchCriteriaDTO echoes the resolved search parameters in the
// response.
type SearchCriteriaDTO struct {
	Origin   string `json:"origin"`
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
	Currency string `json:"currency"`
}

// MetadataDTO contains metadata about the aggregation run.
type MetadataDTO struct {
	TotalResults   int   `json:"total_results"`
	ItemsScheduled int   `json:"items_scheduled"`
	ItemsExhausted int   `json:"items_exhausted"`
	RecordsFetched int   `json:"records_fetched"`
	SearchTimeMs   int64 `json:"search_time_ms"`
}

// FareDTO is the data transfer object for a single ranked fare.
type FareDTO struct {
	Destination   DestinationDTO `json:"destination"`
	Price         PriceDTO       `json:"price"`
	DepartureTime string         `json:"departure_time"`
	BookingLink   string         `json:"booking_link"`
}

// DestinationDTO represents a destination airport.
type DestinationDTO struct {
	Code string `json:"code" example:"BCN"`
	City string `json:"city" example:"Barcelona"`
}

// PriceDTO represents price information.
type PriceDTO struct {
	Amount   float64 `json:"amount" example:"19.99"`
	Currency string  `json:"currency" example:"EUR"`
}

// RouteResponseDTO is the response for a raw single-route lookup.
type RouteResponseDTO struct {
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Fares       []FareDTO `json:"fares"`
	Total       int       `json:"total"`
}

// DestinationsResponseDTO is the response for the catalog listing.
type DestinationsResponseDTO struct {
	Destinations []DestinationDTO `json:"destinations"`
	Total        int              `json:"total"`
}
