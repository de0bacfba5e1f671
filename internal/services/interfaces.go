package services

import (
	"context"

	"tasktracker/internal/domain"
)

// CompleteResult is the three-way outcome of completing a task. The
// boolean shim (CompleteTask) collapses it back to the historical
// true/false contract.
type CompleteResult int

const (
	// CompleteNotFound means no task exists for the given id. This is
	// a normal outcome, not an error.
	CompleteNotFound CompleteResult = iota
	// CompleteSaved means the task was marked completed and re-saved.
	CompleteSaved
	// CompleteFailed means the task was found but the store rejected
	// the re-save. The prior entry is unchanged.
	CompleteFailed
)

// String returns the string representation of the result
func (r CompleteResult) String() string {
	switch r {
	case CompleteNotFound:
		return "not_found"
	case CompleteSaved:
		return "saved"
	case CompleteFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// TaskService handles task lifecycle policy: it is the only component
// that mints identifiers, normalizes fields, and interprets "pending".
type TaskService interface {
	// CreateTask creates a task from the given inputs. The title and
	// description are stored trimmed; a blank title is a validation
	// error. Out-of-range priorities are silently clamped into
	// [domain.MinPriority, domain.MaxPriority].
	CreateTask(ctx context.Context, title, description string, priority int) (*domain.Task, error)

	// Complete marks the task with the given id as completed and
	// re-saves it. Completing an already-completed task is a no-op
	// transition that still re-saves and reports CompleteSaved.
	Complete(ctx context.Context, id string) (CompleteResult, error)

	// CompleteTask is the boolean-compatible form of Complete: true
	// iff the task was saved. "Not found" and "save failed" both
	// collapse to false.
	CompleteTask(ctx context.Context, id string) bool

	// GetTask returns the task for the given id, or (nil, nil) if it
	// does not exist.
	GetTask(ctx context.Context, id string) (*domain.Task, error)

	// ListTasks returns every stored task in store order.
	ListTasks(ctx context.Context) ([]domain.Task, error)

	// GetPendingTasks returns the tasks that have not been completed,
	// in store order.
	GetPendingTasks(ctx context.Context) ([]domain.Task, error)
}
