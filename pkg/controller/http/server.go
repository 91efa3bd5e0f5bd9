package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/epistat/casetrend/pkg/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates a new HTTP server exposing the chart series API
func NewServer(ctx context.Context, addr string, chart usecase.ChartData) *Server {
	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	chartHandler := NewChartHandler(chart)

	// Health check
	router.Get("/health", handleHealth)

	// API routes, consumed by the chart-rendering frontend
	router.Route("/api", func(r chi.Router) {
		r.Get("/modes", chartHandler.HandleModes)
		r.Get("/series", chartHandler.HandleSeries)
		r.Get("/summary", chartHandler.HandleSummary)
	})

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "casetrend",
	})
}

// writeJSON writes a JSON response with the given status
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctxlog.From(ctx).Error("Failed to encode response", "error", err)
	}
}

// writeError writes an error response
func writeError(ctx context.Context, w http.ResponseWriter, err error, status int) {
	var message string
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	} else {
		message = err.Error()
	}

	writeJSON(ctx, w, status, map[string]string{
		"error": message,
	})
}
