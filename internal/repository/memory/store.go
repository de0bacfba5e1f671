package memory

import (
	"context"
	"sync"

	"tasktracker/internal/domain"
	"tasktracker/internal/repository"
)

// Store is an in-memory implementation of repository.Store backed by
// a mutex-guarded map. Writers are fully serialized; readers may run
// concurrently once no write is in flight.
type Store struct {
	mu    sync.RWMutex
	tasks map[string]domain.Task
}

// New creates a new in-memory store instance
func New() *Store {
	return &Store{
		tasks: make(map[string]domain.Task),
	}
}

// Save inserts or overwrites the entry for task.ID.
func (s *Store) Save(ctx context.Context, task domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks[task.ID] = task
	return nil
}

// Get returns a copy of the stored task, or (nil, nil) if the id is
// unknown.
func (s *Store) Get(ctx context.Context, id string) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, nil
	}
	return &task, nil
}

// ListAll returns a snapshot of every stored task.
func (s *Store) ListAll(ctx context.Context) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]domain.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// Count returns the number of stored tasks.
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.tasks), nil
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error {
	return nil
}

var _ repository.Store = (*Store)(nil)
