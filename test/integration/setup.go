// Package integration provides helpers and integration tests for the fare
// aggregation system. Integration tests verify that components work
// together correctly, including HTTP handlers, the aggregation engine,
// and the configurable mock source.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/farescout/fare-aggregation-service/internal/adapter/http"
	"github.com/farescout/fare-aggregation-service/internal/domain"
	"github.com/farescout/fare-aggregation-service/internal/usecase"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.FareHandler
}

// NewTestServer creates a new test server over the given aggregator.
// defaultLimit caps response lengths the way the production config does.
func NewTestServer(aggregator usecase.FareAggregator, defaultLimit int) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewFareHandler(aggregator, domain.DefaultCatalog(), defaultLimit)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
	Headers     map[string]string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts a horizon search with the given body.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/fares/search",
		Body:   body,
	})
}

// SearchDateRequest posts a single-date search with the given body.
func (ts *TestServer) SearchDateRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/fares/search-date",
		Body:   body,
	})
}

// RouteRequest posts a raw route lookup with the given body.
func (ts *TestServer) RouteRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/fares/route",
		Body:   body,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSearchResponse parses the response body as a search response DTO.
func (r *Response) ParseSearchResponse() (*httpAdapter.SearchResponseDTO, error) {
	var resp httpAdapter.SearchResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseRouteResponse parses the response body as a route response DTO.
func (r *Response) ParseRouteResponse() (*httpAdapter.RouteResponseDTO, error) {
	var resp httpAdapter.RouteResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// FastEngineConfig returns an engine configuration with negligible
// delays so integration tests run quickly.
func FastEngineConfig() *usecase.Config {
	return &usecase.Config{
		BatchSize:      3,
		BatchPause:     0,
		MaxAttempts:    2,
		InitialDelay:   time.Millisecond,
		MaxDelay:       2 * time.Millisecond,
		Multiplier:     1.0,
		JitterFactor:   0,
		RateLimitFloor: time.Millisecond,
	}
}

// CreateAggregator builds an engine over the given source with the fast
// test configuration, no logging, and the default catalog.
func CreateAggregator(source domain.FareSource) usecase.FareAggregator {
	return usecase.NewFareAggregator(source, domain.DefaultCatalog(), FastEngineConfig(), nil)
}

// CreateAggregatorWithCatalog builds an engine over a custom catalog.
func CreateAggregatorWithCatalog(source domain.FareSource, catalog domain.Catalog) usecase.FareAggregator {
	return usecase.NewFareAggregator(source, catalog, FastEngineConfig(), nil)
}

// DefaultSearchRequest returns a valid horizon search body.
func DefaultSearchRequest() map[string]interface{} {
	return map[string]interface{}{
		"origin":    "BER",
		"date_from": "2024-06-01",
		"date_to":   "2024-06-05",
	}
}
