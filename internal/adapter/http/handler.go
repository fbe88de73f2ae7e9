package http

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/farescout/fare-aggregation-service/internal/adapter/http/response"
	"github.com/farescout/fare-aggregation-service/internal/domain"
	"github.com/farescout/fare-aggregation-service/internal/usecase"
)

// FareHandler handles HTTP requests for fare aggregation endpoints.
type FareHandler struct {
	aggregator   usecase.FareAggregator
	catalog      domain.Catalog
	defaultLimit int
}

// NewFareHandler creates a new FareHandler. defaultLimit caps the number
// of fares returned when a request does not carry its own limit; zero
// disables the cap.
func NewFareHandler(aggregator usecase.FareAggregator, catalog domain.Catalog, defaultLimit int) *FareHandler {
	return &FareHandler{
		aggregator:   aggregator,
		catalog:      catalog,
		defaultLimit: defaultLimit,
	}
}

// SearchFares handles POST /api/v1/fares/search
//
// @Summary Search cheapest fares over a date horizon
// @Description Finds the cheapest one-way fare per destination across the horizon, ranked ascending by price
// @Tags fares
// @Accept json
// @Produce json
// @Param request body SearchFaresRequest true "Search criteria"
// @Success 200 {object} SearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/fares/search [post]
func (h *FareHandler) SearchFares(c echo.Context) error {
	var req SearchFaresRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	horizon, err := req.Horizon()
	if err != nil {
		return h.handleError(c, err)
	}

	result, err := h.aggregator.AggregateOverHorizon(c.Request().Context(), req.Origin, horizon)
	if err != nil {
		return h.handleError(c, err)
	}

	criteria := SearchCriteriaDTO{
		Origin:   req.Origin,
		DateFrom: horizon.From.Format(domain.DateLayout),
		DateTo:   horizon.To.Format(domain.DateLayout),
		Currency: displayCurrency(req.Currency),
	}
	return response.SearchResults(c, ToSearchResponseDTO(result, criteria, h.limit(req.Limit)))
}

// SearchFaresByDate handles POST /api/v1/fares/search-date
//
// @Summary Search cheapest fares for a specific date
// @Description Finds the cheapest one-way fare per destination departing within one day of the target date
// @Tags fares
// @Accept json
// @Produce json
// @Param request body SearchFaresByDateRequest true "Search criteria"
// @Success 200 {object} SearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/fares/search-date [post]
func (h *FareHandler) SearchFaresByDate(c echo.Context) error {
	var req SearchFaresByDateRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		return response.ValidationErrorWithMessage(c, "date is not a valid date")
	}

	result, err := h.aggregator.AggregateForDate(c.Request().Context(), req.Origin, date)
	if err != nil {
		return h.handleError(c, err)
	}

	criteria := SearchCriteriaDTO{
		Origin:   req.Origin,
		DateFrom: req.Date,
		DateTo:   req.Date,
		Currency: displayCurrency(req.Currency),
	}
	return response.SearchResults(c, ToSearchResponseDTO(result, criteria, h.limit(req.Limit)))
}

// LookupRoute handles POST /api/v1/fares/route
//
// @Summary Look up fares for one route
// @Description Fetches raw fares for a pinned origin-destination pair without aggregation
// @Tags fares
// @Accept json
// @Produce json
// @Param request body LookupRouteRequest true "Route and date window"
// @Success 200 {object} RouteResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/fares/route [post]
func (h *FareHandler) LookupRoute(c echo.Context) error {
	var req LookupRouteRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	records, err := h.aggregator.LookupRoute(c.Request().Context(), domain.FareQuery{
		Origin:      req.Origin,
		Destination: req.Destination,
		DateFrom:    req.DateFrom,
		DateTo:      req.DateTo,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, ToRouteResponseDTO(req.Origin, req.Destination, records))
}

// Destinations handles GET /api/v1/destinations
//
// @Summary List the destination catalog
// @Description Returns the destinations a search fans out over
// @Tags destinations
// @Produce json
// @Success 200 {object} DestinationsResponseDTO
// @Router /api/v1/destinations [get]
func (h *FareHandler) Destinations(c echo.Context) error {
	return response.OK(c, ToDestinationsResponseDTO(h.catalog))
}

// Health handles GET /health
// Simple health check endpoint.
func (h *FareHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// limit resolves the effective result cap for a request.
func (h *FareHandler) limit(requested int) int {
	if requested > 0 {
		return requested
	}
	return h.defaultLimit
}

// displayCurrency resolves the currency echoed in the response criteria.
func displayCurrency(requested string) string {
	if requested == "" {
		return "EUR"
	}
	return requested
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *FareHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses. Partial
// upstream failures never reach here; the engine degrades them to fewer
// records. Only whole-run failures surface.
func (h *FareHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}
	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	return response.InternalServerError(c)
}
