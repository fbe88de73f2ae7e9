// Package http provides the HTTP handler layer for the fare aggregation API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all fare aggregation API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *FareHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	api.GET("/destinations", h.Destinations)

	// Fares group
	fares := api.Group("/fares")
	fares.POST("/search", h.SearchFares)
	fares.POST("/search-date", h.SearchFaresByDate)
	fares.POST("/route", h.LookupRoute)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *FareHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	// API v1 group with middleware
	api := e.Group("/api/v1", middleware...)

	api.GET("/destinations", h.Destinations)

	// Fares group
	fares := api.Group("/fares")
	fares.POST("/search", h.SearchFares)
	fares.POST("/search-date", h.SearchFaresByDate)
	fares.POST("/route", h.LookupRoute)
}
