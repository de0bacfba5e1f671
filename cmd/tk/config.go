package main

import (
	"fmt"
	"os"

	"tasktracker/internal/config"
	"tasktracker/internal/logging"
	"tasktracker/internal/repository"
	"tasktracker/internal/repository/memory"
	"tasktracker/internal/repository/sqlite"
	"tasktracker/internal/services"
	"tasktracker/internal/validation"
)

// StoreFactory creates Store instances based on configuration
type StoreFactory struct {
	config *config.Config
}

// NewStoreFactory creates a new store factory for the given configuration
func NewStoreFactory(cfg *config.Config) *StoreFactory {
	return &StoreFactory{config: cfg}
}

// CreateStore creates a store instance for the configured backend
func (sf *StoreFactory) CreateStore() (repository.Store, error) {
	switch sf.config.Storage.Backend {
	case config.BackendMemory:
		return memory.New(), nil
	case config.BackendSQLite:
		return sf.createSQLiteStore()
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", sf.config.Storage.Backend)
	}
}

// createSQLiteStore creates a sqlite-backed store, creating the
// database directory if needed
func (sf *StoreFactory) createSQLiteStore() (repository.Store, error) {
	if err := os.MkdirAll(sf.config.Storage.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	store, err := sqlite.New(sf.config.GetDatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return store, nil
}

// serviceOptions derives TaskService options from configuration
func serviceOptions(cfg *config.Config) []services.Option {
	opts := []services.Option{
		WithConfiguredValidator(cfg),
		services.WithLogger(logging.NewDebugLogger()),
	}
	if cfg.Application.IDScheme == config.IDSchemeRandom {
		opts = append(opts, services.WithIDGenerator(services.RandomID()))
	}
	return opts
}

// WithConfiguredValidator applies the configured title length limits
func WithConfiguredValidator(cfg *config.Config) services.Option {
	return services.WithTaskValidator(validation.NewTaskValidatorWithConfig(cfg))
}
