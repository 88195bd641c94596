// Package model defines the domain entities persisted by the service.
package model

import "time"

// Item is the sole entity of the service, backed by the items table.
//
// ID is assigned by the database on insert and never changes afterwards.
// Description and CreatedAt are pointers because both columns are nullable
// on the wire: description is optional, and created_at serializes as null
// for rows predating the column default (mirrors the upstream contract).
type Item struct {
	ID          int64      `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description" db:"description"`
	CreatedAt   *time.Time `json:"created_at" db:"created_at"`
}

// ItemPatch carries a partial update. A nil field means "leave untouched";
// there is deliberately no way to clear a field to null through a patch.
type ItemPatch struct {
	Title       *string
	Description *string
}

// ItemSummary is the payload of the summary endpoint.
type ItemSummary struct {
	Total int64 `json:"total"`
}
