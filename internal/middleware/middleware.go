// Package middleware contains the Echo middleware stack: the global error
// handler, request logging, request IDs, the request-scoped logger, and
// the optional New Relic tracing layer.
package middleware
