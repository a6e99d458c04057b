package domain

import (
	"context"
	"errors"
)

// ErrNotFound is returned by repositories when a row is absent or soft-deleted.
var ErrNotFound = errors.New("resource not found")

// Entity status values shared by User, Candidate and Company.
const (
	StatusActive   = "ACTIVE"
	StatusDisabled = "DISABLED"
)

// Transactor runs fn inside a single database transaction. Repository calls
// made with the context passed to fn join that transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Page is one slice of a paginated listing. Page numbers are zero-based.
type Page[T any] struct {
	Items         []T   `json:"items"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

func NewPage[T any](items []T, page, size int, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if size > 0 {
		pages = int((total + int64(size) - 1) / int64(size))
	}
	return Page[T]{
		Items:         items,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    pages,
	}
}
