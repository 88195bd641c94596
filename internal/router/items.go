package router

import (
	"net/http"

	"itemsvc/internal/handler"

	"github.com/labstack/echo/v4"
)

// registerItemRoutes maps the /items API surface onto the item handler.
// The summary route is static, so Echo matches it ahead of /:id.
func registerItemRoutes(r *echo.Echo, h *handler.Handlers) {
	g := r.Group("/items")

	g.POST("/", handler.Handle(h.Item.Handler, h.Item.Create, http.StatusCreated))
	g.GET("/", handler.Handle(h.Item.Handler, h.Item.List, http.StatusOK))
	g.GET("/summary/", handler.Handle(h.Item.Handler, h.Item.Summary, http.StatusOK))
	g.GET("/:id", handler.Handle(h.Item.Handler, h.Item.Get, http.StatusOK))
	g.PUT("/:id", handler.Handle(h.Item.Handler, h.Item.Update, http.StatusOK))
	g.DELETE("/:id", handler.Handle(h.Item.Handler, h.Item.Delete, http.StatusOK))
}
