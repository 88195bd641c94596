package middleware

import (
	"itemsvc/internal/server"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// Middlewares is a container that groups all middleware components used
// by the HTTP server, so router setup receives one wired object instead
// of constructing middleware inline.
type Middlewares struct {
	// Global holds common middleware used across the whole API: CORS,
	// request logging, recovery, secure headers, and the global error
	// handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped logger
	// (request_id, method, path, ip, optional trace metadata).
	ContextEnhancer *ContextEnhancer

	// Tracing provides the New Relic middleware and helpers; it is a
	// no-op when New Relic is not configured.
	Tracing *TracingMiddleware
}

// NewMiddlewares constructs all middleware components from the
// application container. When New Relic is not configured nrApp stays nil
// and the tracing middleware degrades into a pass-through.
func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
	}
}
