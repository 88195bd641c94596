// Package handler is the HTTP layer: the first entry point for business
// logic after the router.
//
// It parses requests, validates input through the validation package, and
// calls the appropriate service. Handlers return results and errors;
// responses and error bodies are written by the shared pipeline and the
// global error handler.
package handler

import (
	"time"

	"itemsvc/internal/middleware"
	"itemsvc/internal/server"
	"itemsvc/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler is the base handler type holding shared application
// dependencies. Concrete handlers embed it to reach config/logger/db
// through *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler. Returning by value is fine: the
// struct only holds a pointer, so copies share the same Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// ValidatablePtr constrains a request pointer type: *Req must implement
// validation.Validatable. It lets Handle allocate a fresh payload per
// request, so concurrent requests never bind into shared state.
type ValidatablePtr[Req any] interface {
	*Req
	validation.Validatable
}

// Handle wraps a typed endpoint function with binding, validation, error
// handling, logging, and tracing, and returns an echo.HandlerFunc ready
// for route registration.
//
// Usage:
//
//	g.POST("/", handler.Handle(h.Item.Handler, h.Item.Create, http.StatusCreated))
func Handle[Req any, PReq ValidatablePtr[Req], Res any](
	h Handler,
	fn func(c echo.Context, req PReq) (Res, error),
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := PReq(new(Req))
		return handleRequest(c, req, func(c echo.Context, req PReq) (any, error) {
			return fn(c, req)
		}, status)
	}
}

// handleRequest is the shared execution pipeline for all endpoints:
// receive -> validate -> execute -> respond. It centralizes structured
// logging, New Relic attributes, and phase timing so endpoint methods
// stay one-liners.
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	fn func(c echo.Context, req Req) (any, error),
	status int,
) error {
	start := time.Now()
	method := c.Request().Method
	route := c.Path()

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", "handler").
		Str("method", method).
		Str("route", route).
		Logger()

	logger.Debug().Msg("handling request")

	validationStart := time.Now()

	if err := validation.BindAndValidate(c, req); err != nil {
		validationDuration := time.Since(validationStart)

		logger.Warn().
			Err(err).
			Dur("validation_duration", validationDuration).
			Msg("request validation failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("validation.status", "failed")
			txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
		}

		// The global error handler formats the response.
		return err
	}

	validationDuration := time.Since(validationStart)
	if txn != nil {
		txn.AddAttribute("validation.status", "success")
		txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
	}

	handlerStart := time.Now()
	result, err := fn(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		totalDuration := time.Since(start)

		logger.Warn().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", totalDuration).
			Msg("handler execution failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		}
		return err
	}

	totalDuration := time.Since(start)

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
	}

	logger.Debug().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", totalDuration).
		Msg("request completed")

	return c.JSON(status, result)
}
