package service

import (
	"itemsvc/internal/repository"
	"itemsvc/internal/server"
)

// Services is the container for all business-layer services.
type Services struct {
	Item *ItemService
}

// NewServices constructs the service container from the app container and
// the repositories.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Item: NewItemService(s, repos),
	}, nil
}
