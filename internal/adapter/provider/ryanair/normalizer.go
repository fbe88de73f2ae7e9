package ryanair

import (
	"fmt"
	"strings"

	"github.com/farescout/fare-aggregation-service/internal/domain"
)

// SourceName is the unique identifier for this fare source.
const SourceName = "ryanair"

// defaultCurrency is assumed when the response omits the currency field.
const defaultCurrency = "EUR"

// bookingLinkFormat is the flight-selection deep link. The only variable
// parts are origin, destination, and the departure date.
const bookingLinkFormat = "https://www.ryanair.com/ua/uk/trip/flights/select" +
	"?adults=1&teens=0&children=0&infants=0" +
	"&dateOut=%[3]s&dateIn=&isConnectedFlight=false&isReturn=false&discount=0&promoCode=" +
	"&originIata=%[1]s&destinationIata=%[2]s" +
	"&tpAdults=1&tpTeens=0&tpChildren=0&tpInfants=0" +
	"&tpStartDate=%[3]s&tpEndDate=&tpDiscount=0&tpPromoCode=" +
	"&tpOriginIata=%[1]s&tpDestinationIata=%[2]s"

// BookingLink builds the booking deep link for a fare. It is a pure
// function of origin, destination, and the date portion of the departure
// timestamp.
func BookingLink(origin, destination, departureTime string) string {
	date, _, _ := strings.Cut(departureTime, "T")
	return fmt.Sprintf(bookingLinkFormat, origin, destination, date)
}

// normalize converts a fare search response into domain fare records.
// Rows that violate record invariants (missing timestamps, negative
// amounts) are skipped rather than failing the whole response.
func normalize(resp *oneWayFaresResponse, query domain.FareQuery) []domain.FareRecord {
	currency := resp.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	var records []domain.FareRecord
	for _, trip := range resp.Trips {
		destination := trip.Destination
		if destination == "" {
			destination = query.Destination
		}

		for _, date := range trip.Dates {
			for _, flight := range date.Flights {
				departure := departureTimestamp(flight, date)
				for _, fare := range flight.RegularFare.Fares {
					record := domain.FareRecord{
						DestinationCode: destination,
						Price:           fare.Amount,
						Currency:        currency,
						DepartureTime:   departure,
						BookingLink:     BookingLink(query.Origin, destination, departure),
					}
					if err := record.Validate(); err != nil {
						continue
					}
					records = append(records, record)
				}
			}
		}
	}
	return records
}

// departureTimestamp picks the flight-level departure time when present,
// falling back to the date-level departure date.
func departureTimestamp(flight flightDTO, date tripDateDTO) string {
	if len(flight.Time) > 0 && flight.Time[0] != "" {
		return flight.Time[0]
	}
	return date.DateOut
}
