// Package router initializes the HTTP router (using Echo).
//
// It installs the middleware stack in order, registers the global error
// handler, and maps API route groups to their handlers.
package router

import (
	"itemsvc/internal/handler"
	"itemsvc/internal/middleware"
	"itemsvc/internal/server"

	"github.com/labstack/echo/v4"
)

// New builds the Echo instance for the service.
//
// Middleware order matters: recovery first so panics anywhere below
// become 500s, then the New Relic transaction so everything downstream
// can attach to it, then request IDs before the context enhancer that
// reads them, then request logging and the outer policy middleware.
func New(s *server.Server, h *handler.Handlers, mw *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	e.Use(
		mw.Global.Recover(),
		mw.Tracing.NewRelicMiddleware(),
		middleware.RequestID(),
		mw.ContextEnhancer.EnhanceContext(),
		mw.Global.RequestLogger(),
		mw.Global.CORS(),
		mw.Global.Secure(),
		mw.Tracing.EnhanceTracing(),
	)

	registerSystemRoutes(e, h)
	registerItemRoutes(e, h)

	return e
}
