package service

import (
	"context"
	"fmt"

	"itemsvc/internal/errs"
	"itemsvc/internal/model"
	"itemsvc/internal/repository"
	"itemsvc/internal/server"

	"github.com/rs/zerolog"
)

// relatedUpdateMarker is appended to the related item's description by
// the transactional create. The leading newline matches the upstream
// wire contract.
const relatedUpdateMarker = "\nUpdated by transaction"

// ItemService implements the item business operations. It holds the
// shared store handle (the pool) and opens transactions where an
// operation spans more than one statement.
type ItemService struct {
	db   repository.Querier
	repo *repository.ItemRepository
	log  *zerolog.Logger
}

// NewItemService constructs an ItemService bound to the shared pool.
func NewItemService(s *server.Server, repos *repository.Repositories) *ItemService {
	return &ItemService{
		db:   s.DB.Pool,
		repo: repos.Item,
		log:  s.Logger,
	}
}

// Create inserts a new item inside a single transaction.
//
// When relatedUpdateID is set, the referenced item is loaded within the
// same transaction and the update marker is appended to its description.
// A missing related item aborts the whole unit: the new item is rolled
// back too and the caller gets a 404. Constraint violations likewise roll
// back and propagate for sqlerr to classify.
func (s *ItemService) Create(ctx context.Context, title string, description *string, relatedUpdateID *int64) (*model.Item, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning create transaction: %w", err)
	}
	// Rollback after a successful commit is a no-op.
	defer func() { _ = tx.Rollback(ctx) }()

	item, err := s.repo.Create(ctx, tx, title, description)
	if err != nil {
		return nil, err
	}

	if relatedUpdateID != nil {
		related, err := s.repo.Get(ctx, tx, *relatedUpdateID)
		if err != nil {
			return nil, err
		}
		if related == nil {
			return nil, errs.NewNotFoundError("Related item to update not found", nil)
		}

		var desc string
		if related.Description != nil {
			desc = *related.Description
		}
		desc += relatedUpdateMarker

		if _, err := s.repo.Update(ctx, tx, related.ID, model.ItemPatch{Description: &desc}); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing create transaction: %w", err)
	}

	s.log.Debug().Int64("item_id", item.ID).Msg("item created")

	return item, nil
}

// Get returns the item with the given id, or a not-found error.
func (s *ItemService) Get(ctx context.Context, id int64) (*model.Item, error) {
	item, err := s.repo.Get(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errs.NewNotFoundError("Item not found", nil)
	}
	return item, nil
}

// List returns up to limit items starting after offset, optionally
// filtered by title substring.
func (s *ItemService) List(ctx context.Context, limit, offset int, titleContains string) ([]model.Item, error) {
	return s.repo.List(ctx, s.db, limit, offset, titleContains)
}

// Update applies a partial patch to an existing item and returns the
// refreshed row. A missing item is a 404 before any write happens.
func (s *ItemService) Update(ctx context.Context, id int64, patch model.ItemPatch) (*model.Item, error) {
	existing, err := s.repo.Get(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errs.NewNotFoundError("Item not found", nil)
	}

	return s.repo.Update(ctx, s.db, id, patch)
}

// Delete removes an existing item. A missing item is a 404.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.Get(ctx, s.db, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return errs.NewNotFoundError("Item not found", nil)
	}

	if err := s.repo.Delete(ctx, s.db, id); err != nil {
		return err
	}

	s.log.Debug().Int64("item_id", id).Msg("item deleted")

	return nil
}

// Summary returns the total number of items matching the optional
// substring filter, using the dedicated count query.
func (s *ItemService) Summary(ctx context.Context, contains string) (*model.ItemSummary, error) {
	total, err := s.repo.Count(ctx, s.db, contains)
	if err != nil {
		return nil, err
	}
	return &model.ItemSummary{Total: total}, nil
}
