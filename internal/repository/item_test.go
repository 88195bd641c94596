package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"itemsvc/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	// Exact matching keeps the tests honest about the SQL that ships.
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func itemRows(id int64, title string, description *string, createdAt time.Time) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "title", "description", "created_at"}).
		AddRow(id, title, description, &createdAt)
}

func TestGetReturnsItem(t *testing.T) {
	mock := newMockPool(t)
	repo := NewItemRepository()

	desc := "first"
	now := time.Now().UTC()
	mock.ExpectQuery(getItemSQL).
		WithArgs(int64(1)).
		WillReturnRows(itemRows(1, "alpha", &desc, now))

	item, err := repo.Get(context.Background(), mock, 1)

	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, int64(1), item.ID)
	assert.Equal(t, "alpha", item.Title)
	require.NotNil(t, item.Description)
	assert.Equal(t, "first", *item.Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAbsentReturnsNilNil(t *testing.T) {
	mock := newMockPool(t)
	repo := NewItemRepository()

	mock.ExpectQuery(getItemSQL).
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	item, err := repo.Get(context.Background(), mock, 99)

	require.NoError(t, err)
	assert.Nil(t, item)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPassesPaginationAndFilter(t *testing.T) {
	mock := newMockPool(t)
	repo := NewItemRepository()

	now := time.Now().UTC()
	rows := pgxmock.NewRows([]string{"id", "title", "description", "created_at"}).
		AddRow(int64(1), "alpha", (*string)(nil), &now).
		AddRow(int64(2), "alphabet", (*string)(nil), &now)

	mock.ExpectQuery(listItemsSQL).
		WithArgs(5, 10, "alp").
		WillReturnRows(rows)

	items, err := repo.List(context.Background(), mock, 5, 10, "alp")

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, "alphabet", items[1].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEmptyResultIsEmptySlice(t *testing.T) {
	mock := newMockPool(t)
	repo := NewItemRepository()

	mock.ExpectQuery(listItemsSQL).
		WithArgs(10, 0, "").
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "description", "created_at"}))

	items, err := repo.List(context.Background(), mock, 10, 0, "")

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReturnsInsertedRow(t *testing.T) {
	mock := newMockPool(t)
	repo := NewItemRepository()

	desc := "first"
	now := time.Now().UTC()
	mock.ExpectQuery(createItemSQL).
		WithArgs("alpha", &desc).
		WillReturnRows(itemRows(7, "alpha", &desc, now))

	item, err := repo.Create(context.Background(), mock, "alpha", &desc)

	require.NoError(t, err)
	assert.Equal(t, int64(7), item.ID)
	require.NotNil(t, item.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateLeavesDriverErrorIntact(t *testing.T) {
	mock := newMockPool(t)
	repo := NewItemRepository()

	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "items_title_key", TableName: "items"}
	mock.ExpectQuery(createItemSQL).
		WithArgs("alpha", (*string)(nil)).
		WillReturnError(pgErr)

	_, err := repo.Create(context.Background(), mock, "alpha", nil)

	// Unwrapped so the error funnel can still classify the SQLSTATE.
	var got *pgconn.PgError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, "23505", got.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateSendsPatchFields(t *testing.T) {
	mock := newMockPool(t)
	repo := NewItemRepository()

	title := "renamed"
	now := time.Now().UTC()
	mock.ExpectQuery(updateItemSQL).
		WithArgs(int64(3), &title, (*string)(nil)).
		WillReturnRows(itemRows(3, "renamed", nil, now))

	item, err := repo.Update(context.Background(), mock, 3, model.ItemPatch{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, "renamed", item.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRemovesRow(t *testing.T) {
	mock := newMockPool(t)
	repo := NewItemRepository()

	mock.ExpectExec(deleteItemSQL).
		WithArgs(int64(4)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.Delete(context.Background(), mock, 4))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAbsentReportsNoRows(t *testing.T) {
	mock := newMockPool(t)
	repo := NewItemRepository()

	mock.ExpectExec(deleteItemSQL).
		WithArgs(int64(99)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), mock, 99)

	assert.ErrorIs(t, err, pgx.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountWithFilter(t *testing.T) {
	mock := newMockPool(t)
	repo := NewItemRepository()

	mock.ExpectQuery(countItemsSQL).
		WithArgs("alp").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	total, err := repo.Count(context.Background(), mock, "alp")

	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountUnfiltered(t *testing.T) {
	mock := newMockPool(t)
	repo := NewItemRepository()

	mock.ExpectQuery(countItemsSQL).
		WithArgs("").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(12)))

	total, err := repo.Count(context.Background(), mock, "")

	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
