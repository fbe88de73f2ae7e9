package http

import (
	"github.com/farescout/fare-aggregation-service/internal/currency"
	"github.com/farescout/fare-aggregation-service/internal/domain"
)

// ToSearchResponseDTO converts an aggregation result to the API shape,
// applying the display currency and the result cap. A limit of zero or
// less leaves the ranking untouched.
func ToSearchResponseDTO(result *domain.AggregationResult, criteria SearchCriteriaDTO, limit int) *SearchResponseDTO {
	if result == nil {
		return nil
	}

	records := result.Records
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	fares := make([]FareDTO, len(records))
	for i := range records {
		fares[i] = ToFareDTO(&records[i], criteria.Currency)
	}

	return &SearchResponseDTO{
		SearchCriteria: criteria,
		Metadata: MetadataDTO{
			TotalResults:   len(fares),
			ItemsScheduled: result.Metadata.ItemsScheduled,
			ItemsExhausted: result.Metadata.ItemsExhausted,
			RecordsFetched: result.Metadata.RecordsFetched,
			SearchTimeMs:   result.Metadata.SearchTimeMs,
		},
		Fares: fares,
	}
}

// ToFareDTO converts a fare record, converting the price into the
// display currency. An empty or unsupported display currency leaves the
// price as quoted.
func ToFareDTO(record *domain.FareRecord, displayCurrency string) FareDTO {
	amount := record.Price
	code := record.Currency
	if displayCurrency != "" && currency.Supported(displayCurrency) {
		amount = currency.Convert(record.Price, record.Currency, displayCurrency)
		code = displayCurrency
	}

	return FareDTO{
		Destination: DestinationDTO{
			Code: record.DestinationCode,
			City: record.DestinationLabel,
		},
		Price: PriceDTO{
			Amount:   amount,
			Currency: code,
		},
		DepartureTime: record.DepartureTime,
		BookingLink:   record.BookingLink,
	}
}

// ToRouteResponseDTO converts a raw route lookup result. Route fares
// are always returned in the quoted currency.
func ToRouteResponseDTO(origin, destination string, records []domain.FareRecord) *RouteResponseDTO {
	fares := make([]FareDTO, len(records))
	for i := range records {
		fares[i] = ToFareDTO(&records[i], "")
	}
	return &RouteResponseDTO{
		Origin:      origin,
		Destination: destination,
		Fares:       fares,
		Total:       len(fares),
	}
}

// ToDestinationsResponseDTO converts the destination catalog.
func ToDestinationsResponseDTO(catalog domain.Catalog) *DestinationsResponseDTO {
	destinations := make([]DestinationDTO, len(catalog))
	for i, d := range catalog {
		destinations[i] = DestinationDTO{Code: d.Code, City: d.City}
	}
	return &DestinationsResponseDTO{
		Destinations: destinations,
		Total:        len(destinations),
	}
}
