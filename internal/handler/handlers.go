package handler

import (
	"itemsvc/internal/server"
	"itemsvc/internal/service"
)

// Handlers is the container that groups all HTTP handlers, so router
// setup receives one wired object.
type Handlers struct {
	Health *HealthHandler
	Item   *ItemHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health: NewHealthHandler(s),
		Item:   NewItemHandler(s, services.Item),
	}
}
