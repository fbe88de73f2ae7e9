// Package ryanair implements the fare source port against the one-way
// fare search endpoint. It issues a single HTTP lookup per query,
// randomizes the client identity per call, and classifies every failure
// for the retry policy upstream of it.
package ryanair

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/farescout/fare-aggregation-service/internal/domain"
	"github.com/farescout/fare-aggregation-service/internal/infrastructure/logger"
)

// faresPath is the endpoint path below the configured base URL.
const faresPath = "/oneWayFares"

// Config holds the adapter settings.
type Config struct {
	// BaseURL is the root of the fare search API.
	BaseURL string

	// Timeout bounds a single request, including the pre-call delay.
	Timeout time.Duration

	// ResultLimit is the maximum fares requested per lookup.
	ResultLimit int

	// MaxPrecallDelay is the upper bound of the random pause before each
	// call. Zero disables the pause (useful in tests).
	MaxPrecallDelay time.Duration
}

// DefaultConfig returns production-ready adapter settings.
func DefaultConfig() Config {
	return Config{
		BaseURL:         "https://www.ryanair.com/api/farfnd/v4",
		Timeout:         12 * time.Second,
		ResultLimit:     16,
		MaxPrecallDelay: 1500 * time.Millisecond,
	}
}

// Adapter implements domain.FareSource over HTTP.
type Adapter struct {
	cfg    Config
	client *http.Client
	log    *logger.Logger
}

// NewAdapter creates a fare source adapter with the given configuration.
// A nil logger disables adapter logging.
func NewAdapter(cfg Config, log *logger.Logger) *Adapter {
	if cfg.ResultLimit < 1 {
		cfg.ResultLimit = DefaultConfig().ResultLimit
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Adapter{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log.WithSource(SourceName),
	}
}

// Name returns the source identifier.
func (a *Adapter) Name() string {
	return SourceName
}

// Fetch implements domain.FareSource.Fetch. It performs one lookup and
// returns the normalized records, or a classified *domain.LookupError.
// A well-formed response with zero fares is a success with an empty slice.
func (a *Adapter) Fetch(ctx context.Context, query domain.FareQuery) ([]domain.FareRecord, error) {
	if err := a.precallDelay(ctx); err != nil {
		return nil, domain.NewTransient("cancelled before request", err)
	}

	req, err := a.buildRequest(ctx, query)
	if err != nil {
		return nil, domain.NewTransient("build request", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, domain.NewTransient("request failed", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// Fall through to decoding.
	case resp.StatusCode == http.StatusTooManyRequests:
		a.log.Warn().Str("destination", query.Destination).Msg("Upstream rate limit hit")
		return nil, domain.NewRateLimited(fmt.Sprintf("status %d", resp.StatusCode))
	default:
		return nil, domain.NewTransient(fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	var body oneWayFaresResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, domain.NewTransient("malformed response body", err)
	}

	records := normalize(&body, query)
	a.log.Debug().
		Str("destination", query.Destination).
		Str("date_from", query.DateFrom).
		Int("records", len(records)).
		Msg("Fare lookup resolved")

	return records, nil
}

// buildRequest assembles the GET request with browser-like headers and a
// randomized client identity.
func (a *Adapter) buildRequest(ctx context.Context, query domain.FareQuery) (*http.Request, error) {
	params := url.Values{}
	params.Set("departureAirportIataCode", query.Origin)
	params.Set("destinationAirportIataCode", query.Destination)
	params.Set("outboundDepartureDateFrom", query.DateFrom)
	if query.DateTo != "" {
		params.Set("outboundDepartureDateTo", query.DateTo)
	}
	params.Set("currency", defaultCurrency)
	params.Set("adultPaxCount", "1")
	params.Set("limit", strconv.Itoa(a.cfg.ResultLimit))

	endpoint := a.cfg.BaseURL + faresPath + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", randomUserAgent())
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", "https://www.ryanair.com/ua/uk/trip/flights/select")
	req.Header.Set("Origin", "https://www.ryanair.com")
	req.Header.Set("Accept-Language", "uk-UA,uk;q=0.9,en-US;q=0.8,en;q=0.7")

	return req, nil
}

// precallDelay sleeps a random duration below the configured bound to
// keep the request rate looking organic. Interruptible by the context.
func (a *Adapter) precallDelay(ctx context.Context) error {
	if a.cfg.MaxPrecallDelay <= 0 {
		return nil
	}
	delay := time.Duration(rand.Int63n(int64(a.cfg.MaxPrecallDelay)))
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

// Ensure Adapter implements domain.FareSource at compile time.
var _ domain.FareSource = (*Adapter)(nil)
