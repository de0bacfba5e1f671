package repository

import (
	"context"

	"tasktracker/internal/domain"
)

// Store defines the persistence capability for tasks. Implementations
// own the canonical copy of every stored task and hand out copies, so
// callers can only change stored state by saving through the interface
// again.
//
// Every method takes a context because non-memory implementations may
// perform I/O.
type Store interface {
	// Save inserts or overwrites the entry for task.ID. Last write
	// wins; there is no merging. A save is atomic at the entry level:
	// concurrent readers never observe a partially written task.
	Save(ctx context.Context, task domain.Task) error

	// Get returns the stored task for the given id, or (nil, nil) if
	// the id is unknown. Absence is a normal outcome, not an error.
	Get(ctx context.Context, id string) (*domain.Task, error)

	// ListAll returns every stored task as a snapshot taken at call
	// time. Order is unspecified. The returned slice does not alias
	// internal state.
	ListAll(ctx context.Context) ([]domain.Task, error)

	// Count returns the number of stored tasks.
	Count(ctx context.Context) (int, error)

	// Close releases any resources held by the store.
	Close() error
}
