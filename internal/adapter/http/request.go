// Package http provides the HTTP handler layer for the fare aggregation
// API. It handles request parsing, validation, response formatting, and
// error mapping.
package http

import (
	"regexp"
	"strings"
	"time"

	"github.com/farescout/fare-aggregation-service/internal/domain"
)

// Period presets accepted as an alternative to an explicit date_to.
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"

	periodWeekDays  = 7
	periodMonthDays = 30
)

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	currencyPattern    = regexp.MustCompile(`^[A-Z]{3}$`)
)

// SearchFaresRequest is the request body for a horizon search. The
// horizon end is either an explicit date_to or a period preset counted
// from date_from.
type SearchFaresRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "BER")
	Origin string `json:"origin"`

	// DateFrom is the start of the search horizon in YYYY-MM-DD format
	DateFrom string `json:"date_from"`

	// DateTo is the end of the search horizon in YYYY-MM-DD format.
	// Mutually exclusive with Period.
	DateTo string `json:"date_to,omitempty"`

	// Period is a horizon preset: "week" (7 days) or "month" (30 days)
	// from DateFrom. Mutually exclusive with DateTo.
	Period string `json:"period,omitempty"`

	// Currency is an optional ISO 4217 code to display prices in.
	// Unsupported codes leave prices in EUR.
	Currency string `json:"currency,omitempty"`

	// Limit caps the number of returned fares. Zero means the configured
	// default.
	Limit int `json:"limit,omitempty"`
}

// SearchFaresByDateRequest is the request body for a single-date search.
type SearchFaresByDateRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "BER")
	Origin string `json:"origin"`

	// Date is the target departure date in YYYY-MM-DD format
	Date string `json:"date"`

	// Currency is an optional ISO 4217 code to display prices in
	Currency string `json:"currency,omitempty"`

	// Limit caps the number of returned fares. Zero means the configured
	// default.
	Limit int `json:"limit,omitempty"`
}

// LookupRouteRequest is the request body for a raw single-route lookup.
type LookupRouteRequest struct {
	// Origin is the IATA code of the departure airport
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination"`

	// DateFrom is the start of the departure window in YYYY-MM-DD format
	DateFrom string `json:"date_from"`

	// DateTo is the optional end of the departure window. When empty the
	// upstream searches its default flexible window around DateFrom.
	DateTo string `json:"date_to,omitempty"`
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the horizon search request and returns any
// validation errors. Fields are normalized to uppercase in place.
func (r *SearchFaresRequest) Validate() error {
	errs := &ValidationErrors{}

	validateAirport(errs, "origin", &r.Origin)
	validateDate(errs, "date_from", r.DateFrom, true)
	r.validateHorizonEnd(errs)
	validateCurrency(errs, &r.Currency)
	validateLimit(errs, r.Limit)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validateHorizonEnd checks the date_to / period pair: exactly one must
// be supplied, and an explicit date_to must not precede date_from.
func (r *SearchFaresRequest) validateHorizonEnd(errs *ValidationErrors) {
	r.Period = strings.ToLower(r.Period)

	switch {
	case r.DateTo == "" && r.Period == "":
		errs.Add("date_to", "either date_to or period is required")
	case r.DateTo != "" && r.Period != "":
		errs.Add("period", "date_to and period are mutually exclusive")
	case r.Period != "":
		if r.Period != PeriodWeek && r.Period != PeriodMonth {
			errs.Add("period", "period must be one of: week, month")
		}
	default:
		validateDate(errs, "date_to", r.DateTo, true)
		from, errFrom := time.Parse(domain.DateLayout, r.DateFrom)
		to, errTo := time.Parse(domain.DateLayout, r.DateTo)
		if errFrom == nil && errTo == nil && to.Before(from) {
			errs.Add("date_to", "date_to must not be before date_from")
		}
	}
}

// Horizon resolves the request into a search horizon, expanding a period
// preset into date_from plus the preset length. Call only after Validate.
func (r *SearchFaresRequest) Horizon() (domain.SearchHorizon, error) {
	dateTo := r.DateTo
	if dateTo == "" {
		from, err := time.Parse(domain.DateLayout, r.DateFrom)
		if err != nil {
			return domain.SearchHorizon{}, err
		}
		days := periodWeekDays
		if r.Period == PeriodMonth {
			days = periodMonthDays
		}
		dateTo = from.AddDate(0, 0, days).Format(domain.DateLayout)
	}
	return domain.NewSearchHorizon(r.DateFrom, dateTo)
}

// Validate validates the single-date search request.
func (r *SearchFaresByDateRequest) Validate() error {
	errs := &ValidationErrors{}

	validateAirport(errs, "origin", &r.Origin)
	validateDate(errs, "date", r.Date, true)
	validateCurrency(errs, &r.Currency)
	validateLimit(errs, r.Limit)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate validates the route lookup request.
func (r *LookupRouteRequest) Validate() error {
	errs := &ValidationErrors{}

	validateAirport(errs, "origin", &r.Origin)
	validateAirport(errs, "destination", &r.Destination)
	if r.Origin != "" && r.Destination != "" && strings.EqualFold(r.Origin, r.Destination) {
		errs.Add("destination", "origin and destination must be different")
	}
	validateDate(errs, "date_from", r.DateFrom, true)
	validateDate(errs, "date_to", r.DateTo, false)
	if r.DateFrom != "" && r.DateTo != "" {
		from, errFrom := time.Parse(domain.DateLayout, r.DateFrom)
		to, errTo := time.Parse(domain.DateLayout, r.DateTo)
		if errFrom == nil && errTo == nil && to.Before(from) {
			errs.Add("date_to", "date_to must not be before date_from")
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validateAirport checks an IATA code field and normalizes it to
// uppercase in place.
func validateAirport(errs *ValidationErrors, field string, code *string) {
	if *code == "" {
		errs.Add(field, field+" is required")
		return
	}
	normalized := strings.ToUpper(*code)
	if !airportCodePattern.MatchString(normalized) {
		errs.Add(field, field+" must be a valid 3-letter IATA airport code")
		return
	}
	*code = normalized
}

// validateDate checks a YYYY-MM-DD field. Past dates are accepted; the
// upstream decides what it can still sell.
func validateDate(errs *ValidationErrors, field, value string, required bool) {
	if value == "" {
		if required {
			errs.Add(field, field+" is required")
		}
		return
	}
	if !datePattern.MatchString(value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return
	}
	if _, err := time.Parse(domain.DateLayout, value); err != nil {
		errs.Add(field, field+" is not a valid date")
	}
}

// validateCurrency checks an optional display currency and normalizes it
// to uppercase in place. Unknown but well-formed codes are accepted and
// degrade to EUR prices at the conversion layer.
func validateCurrency(errs *ValidationErrors, code *string) {
	if *code == "" {
		return
	}
	normalized := strings.ToUpper(*code)
	if !currencyPattern.MatchString(normalized) {
		errs.Add("currency", "currency must be a 3-letter ISO 4217 code")
		return
	}
	*code = normalized
}

// validateLimit checks the optional result cap.
func validateLimit(errs *ValidationErrors, limit int) {
	if limit < 0 {
		errs.Add("limit", "limit must be a positive number")
	}
}
