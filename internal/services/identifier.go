package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"tasktracker/internal/repository"
)

// IDGenerator mints unique task identifiers.
type IDGenerator interface {
	NextID(ctx context.Context) (string, error)
}

// sequentialGenerator mints "task_<n>" identifiers from a counter
// seeded with the store's task count on first use. The counter is
// incremented under a lock, so concurrent creations through the same
// service cannot mint duplicate ids. Duplicates remain possible when
// separate processes share a store; use RandomID there.
type sequentialGenerator struct {
	store repository.Store

	mu     sync.Mutex
	seeded bool
	next   int64
}

// NewSequentialID creates the default id generator for the given store.
func NewSequentialID(store repository.Store) IDGenerator {
	return &sequentialGenerator{store: store}
}

func (g *sequentialGenerator) NextID(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.seeded {
		count, err := g.store.Count(ctx)
		if err != nil {
			return "", err
		}
		g.next = int64(count)
		g.seeded = true
	}

	g.next++
	return fmt.Sprintf("task_%d", g.next), nil
}

type randomGenerator struct{}

// RandomID creates a collision-resistant id generator. Identifiers
// are random UUIDs, decoupled from the stored task count.
func RandomID() IDGenerator {
	return randomGenerator{}
}

func (randomGenerator) NextID(context.Context) (string, error) {
	return uuid.NewString(), nil
}
