package repository

import (
	"context"

	"itemsvc/internal/server"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the minimal pgx surface repository methods need. It is
// satisfied by *pgxpool.Pool and by pgx.Tx, which is what lets a service
// run the same repository calls inside or outside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Repositories is the container for all repository instances.
type Repositories struct {
	Item *ItemRepository
}

// NewRepositories constructs the repository container. Repositories are
// stateless; connections come in per call through the Querier handle, so
// the app container is only here to keep the constructor signature stable
// as shared deps grow.
func NewRepositories(s *server.Server) *Repositories {
	_ = s
	return &Repositories{
		Item: NewItemRepository(),
	}
}
