package handler

import (
	"context"

	"itemsvc/internal/model"
	"itemsvc/internal/server"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// validate is the shared validator instance for request structs.
var validate = validator.New()

// ItemService is the business surface the item endpoints depend on.
// It is an interface here so handler tests can stub the layer below.
type ItemService interface {
	Create(ctx context.Context, title string, description *string, relatedUpdateID *int64) (*model.Item, error)
	Get(ctx context.Context, id int64) (*model.Item, error)
	List(ctx context.Context, limit, offset int, titleContains string) ([]model.Item, error)
	Update(ctx context.Context, id int64, patch model.ItemPatch) (*model.Item, error)
	Delete(ctx context.Context, id int64) error
	Summary(ctx context.Context, contains string) (*model.ItemSummary, error)
}

// ItemHandler exposes the /items endpoints.
type ItemHandler struct {
	Handler
	items ItemService
}

// NewItemHandler constructs an ItemHandler.
func NewItemHandler(s *server.Server, items ItemService) *ItemHandler {
	return &ItemHandler{
		Handler: NewHandler(s),
		items:   items,
	}
}

// --- Request/response payloads ----------------------------------------------

// CreateItemRequest is the POST /items/ payload. RelatedUpdateID comes
// from the query string and opts into the transactional related-item
// update.
type CreateItemRequest struct {
	Title           string  `json:"title" validate:"required,min=1,max=200"`
	Description     *string `json:"description"`
	RelatedUpdateID *int64  `query:"related_update_id"`
}

func (r *CreateItemRequest) Validate() error {
	return validate.Struct(r)
}

// ListItemsRequest carries the GET /items/ query parameters. Limit and
// Offset are pointers so "parameter absent" (use the default) stays
// distinguishable from "parameter present and out of range" (reject).
type ListItemsRequest struct {
	Limit  *int   `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset *int   `query:"offset" validate:"omitempty,min=0"`
	Title  string `query:"title"`
}

func (r *ListItemsRequest) Validate() error {
	return validate.Struct(r)
}

// GetItemRequest carries the GET /items/:id path parameter.
type GetItemRequest struct {
	ID int64 `param:"id"`
}

func (r *GetItemRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateItemRequest is the PUT /items/:id payload. Both fields are
// optional; an omitted field leaves the stored value untouched, and a
// present title is still bound to 1-200 characters.
type UpdateItemRequest struct {
	ID          int64   `param:"id"`
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
}

func (r *UpdateItemRequest) Validate() error {
	return validate.Struct(r)
}

// DeleteItemRequest carries the DELETE /items/:id path parameter.
type DeleteItemRequest struct {
	ID int64 `param:"id"`
}

func (r *DeleteItemRequest) Validate() error {
	return validate.Struct(r)
}

// SummaryItemsRequest carries the GET /items/summary/ filter.
type SummaryItemsRequest struct {
	Contains string `query:"contains"`
}

func (r *SummaryItemsRequest) Validate() error {
	return validate.Struct(r)
}

// DeleteItemResponse is the body of a successful delete. The endpoint
// responds 200 with this payload rather than a bare 204; existing
// clients depend on the body.
type DeleteItemResponse struct {
	Msg string `json:"msg"`
}

// --- Endpoints --------------------------------------------------------------

const (
	defaultListLimit  = 10
	defaultListOffset = 0
)

// Create handles POST /items/.
func (h *ItemHandler) Create(c echo.Context, req *CreateItemRequest) (*model.Item, error) {
	return h.items.Create(c.Request().Context(), req.Title, req.Description, req.RelatedUpdateID)
}

// List handles GET /items/.
func (h *ItemHandler) List(c echo.Context, req *ListItemsRequest) ([]model.Item, error) {
	limit, offset := defaultListLimit, defaultListOffset
	if req.Limit != nil {
		limit = *req.Limit
	}
	if req.Offset != nil {
		offset = *req.Offset
	}

	return h.items.List(c.Request().Context(), limit, offset, req.Title)
}

// Get handles GET /items/:id.
func (h *ItemHandler) Get(c echo.Context, req *GetItemRequest) (*model.Item, error) {
	return h.items.Get(c.Request().Context(), req.ID)
}

// Update handles PUT /items/:id.
func (h *ItemHandler) Update(c echo.Context, req *UpdateItemRequest) (*model.Item, error) {
	patch := model.ItemPatch{
		Title:       req.Title,
		Description: req.Description,
	}
	return h.items.Update(c.Request().Context(), req.ID, patch)
}

// Delete handles DELETE /items/:id.
func (h *ItemHandler) Delete(c echo.Context, req *DeleteItemRequest) (*DeleteItemResponse, error) {
	if err := h.items.Delete(c.Request().Context(), req.ID); err != nil {
		return nil, err
	}
	return &DeleteItemResponse{Msg: "item deleted successfully"}, nil
}

// Summary handles GET /items/summary/.
func (h *ItemHandler) Summary(c echo.Context, req *SummaryItemsRequest) (*model.ItemSummary, error) {
	return h.items.Summary(c.Request().Context(), req.Contains)
}
