package repository

import (
	"context"
	"errors"
	"fmt"

	"itemsvc/internal/model"

	"github.com/jackc/pgx/v5"
)

const (
	getItemSQL = `SELECT id, title, description, created_at FROM items WHERE id = $1`

	// The filter parameter is compared against the empty string inside
	// the query so the same statement serves filtered and unfiltered
	// listings. LIKE keeps the match case-sensitive.
	listItemsSQL = `SELECT id, title, description, created_at FROM items
		WHERE ($3::text = '' OR title LIKE '%' || $3 || '%')
		ORDER BY id ASC LIMIT $1 OFFSET $2`

	createItemSQL = `INSERT INTO items (title, description) VALUES ($1, $2)
		RETURNING id, title, description, created_at`

	// COALESCE keeps the stored value whenever a patch field arrives as
	// NULL, which is how "field omitted" stays a no-op.
	updateItemSQL = `UPDATE items SET title = COALESCE($2, title), description = COALESCE($3, description)
		WHERE id = $1 RETURNING id, title, description, created_at`

	deleteItemSQL = `DELETE FROM items WHERE id = $1`

	// Count runs its own aggregate instead of deriving from a listing;
	// the filter expression is kept identical to listItemsSQL so the two
	// never disagree.
	countItemsSQL = `SELECT COUNT(*) FROM items WHERE ($1::text = '' OR title LIKE '%' || $1 || '%')`
)

// ItemRepository performs CRUD operations against the items table.
// It is stateless; every method receives its store handle explicitly.
type ItemRepository struct{}

// NewItemRepository constructs an ItemRepository.
func NewItemRepository() *ItemRepository {
	return &ItemRepository{}
}

func scanItem(row pgx.Row) (*model.Item, error) {
	var item model.Item
	if err := row.Scan(&item.ID, &item.Title, &item.Description, &item.CreatedAt); err != nil {
		return nil, err
	}
	return &item, nil
}

// Get returns the item with the given id, or (nil, nil) when no such row
// exists. Absence is an expected outcome, not an error; the service layer
// decides whether it becomes a 404.
func (r *ItemRepository) Get(ctx context.Context, db Querier, id int64) (*model.Item, error) {
	item, err := scanItem(db.QueryRow(ctx, getItemSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting item %d: %w", id, err)
	}
	return item, nil
}

// List returns up to limit items starting after offset, ordered by id
// ascending, optionally filtered to titles containing titleContains.
func (r *ItemRepository) List(ctx context.Context, db Querier, limit, offset int, titleContains string) ([]model.Item, error) {
	rows, err := db.Query(ctx, listItemsSQL, limit, offset, titleContains)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	items := make([]model.Item, 0, limit)
	for rows.Next() {
		var item model.Item
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning item row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating item rows: %w", err)
	}

	return items, nil
}

// Create inserts a new item and returns it with the assigned id and
// created_at. Durability is the caller's concern: when db is a
// transaction, nothing is committed here.
func (r *ItemRepository) Create(ctx context.Context, db Querier, title string, description *string) (*model.Item, error) {
	item, err := scanItem(db.QueryRow(ctx, createItemSQL, title, description))
	if err != nil {
		// No wrapping: constraint violations must reach sqlerr intact.
		return nil, err
	}
	return item, nil
}

// Update applies the non-nil fields of patch to the item with the given
// id and returns the refreshed row. Nil patch fields leave the stored
// values untouched.
func (r *ItemRepository) Update(ctx context.Context, db Querier, id int64, patch model.ItemPatch) (*model.Item, error) {
	item, err := scanItem(db.QueryRow(ctx, updateItemSQL, id, patch.Title, patch.Description))
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes the item with the given id. Deleting an id that does
// not exist reports an error so callers cannot mistake it for success.
func (r *ItemRepository) Delete(ctx context.Context, db Querier, id int64) error {
	tag, err := db.Exec(ctx, deleteItemSQL, id)
	if err != nil {
		return fmt.Errorf("deleting item %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Count returns the total number of items whose title contains the given
// substring, or of all items when contains is empty. The filter semantics
// match List exactly.
func (r *ItemRepository) Count(ctx context.Context, db Querier, contains string) (int64, error) {
	var total int64
	if err := db.QueryRow(ctx, countItemsSQL, contains).Scan(&total); err != nil {
		return 0, fmt.Errorf("counting items: %w", err)
	}
	return total, nil
}
