package store

import (
	"context"
	"errors"

	"github.com/edunsouza/meeting-workbook/internal/workbook"
)

var (
	// ErrNotFound reports a cache miss for a week key.
	ErrNotFound = errors.New("workbook not found")
	// ErrDuplicateKey reports a create for a week key that is already stored.
	ErrDuplicateKey = errors.New("workbook already stored for week")
)

// Store is the week-keyed workbook cache.
type Store interface {
	// Find returns the workbook stored for weekKey, or ErrNotFound.
	Find(ctx context.Context, weekKey string) (*workbook.Workbook, error)
	// Create stores a new workbook. It fails with ErrDuplicateKey when an
	// entry for the same week key exists; it never replaces one.
	Create(ctx context.Context, wb *workbook.Workbook) error
	// Delete removes the workbook for weekKey. Deleting an absent key is
	// not an error.
	Delete(ctx context.Context, weekKey string) error
	// PurgeOthers deletes every stored workbook whose key differs from
	// weekKey, bounding storage to the current week.
	PurgeOthers(ctx context.Context, weekKey string) error
}
