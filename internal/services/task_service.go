package services

import (
	"context"
	"strings"

	"tasktracker/internal/domain"
	"tasktracker/internal/errors"
	"tasktracker/internal/logging"
	"tasktracker/internal/repository"
	"tasktracker/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	store         repository.Store
	taskValidator *validation.TaskValidator
	idGenerator   IDGenerator
	logger        logging.Logger
}

// Option configures a TaskService at construction.
type Option func(*taskServiceImpl)

// WithIDGenerator replaces the default sequential id generator.
func WithIDGenerator(generator IDGenerator) Option {
	return func(t *taskServiceImpl) {
		t.idGenerator = generator
	}
}

// WithLogger injects the diagnostic sink used by the service.
func WithLogger(logger logging.Logger) Option {
	return func(t *taskServiceImpl) {
		t.logger = logger
	}
}

// WithTaskValidator replaces the default task validator, typically to
// apply configured title length limits.
func WithTaskValidator(validator *validation.TaskValidator) Option {
	return func(t *taskServiceImpl) {
		t.taskValidator = validator
	}
}

// NewTaskService creates a new TaskService instance backed by the
// given store.
func NewTaskService(store repository.Store, opts ...Option) TaskService {
	service := &taskServiceImpl{
		store:         store,
		taskValidator: validation.NewTaskValidator(),
		idGenerator:   NewSequentialID(store),
		logger:        logging.Nop(),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateTask creates a new task with the given title, description and
// priority
func (t *taskServiceImpl) CreateTask(ctx context.Context, title, description string, priority int) (*domain.Task, error) {
	trimmedTitle, err := t.taskValidator.GetValidTitle(title)
	if err != nil {
		return nil, errors.NewValidationError("invalid task title", err)
	}

	task := domain.NewTask(trimmedTitle, strings.TrimSpace(description), priority)

	id, err := t.idGenerator.NextID(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("mint task id", err)
	}
	task.ID = id

	if err := t.store.Save(ctx, task); err != nil {
		// The task must not be considered created.
		return nil, errors.NewPersistenceError(id, err)
	}

	t.logger.Debugf("created task %s (priority %d)", task.ID, task.Priority)
	return &task, nil
}

// Complete marks a task as completed and re-saves it
func (t *taskServiceImpl) Complete(ctx context.Context, id string) (CompleteResult, error) {
	task, err := t.store.Get(ctx, id)
	if err != nil {
		return CompleteFailed, err
	}
	if task == nil {
		t.logger.Debugf("complete: task %s not found", id)
		return CompleteNotFound, nil
	}

	task.Completed = true
	if err := t.store.Save(ctx, *task); err != nil {
		return CompleteFailed, errors.NewPersistenceError(id, err)
	}

	t.logger.Debugf("completed task %s", id)
	return CompleteSaved, nil
}

// CompleteTask collapses Complete into the boolean contract: the same
// false covers "not found" and "save failed".
func (t *taskServiceImpl) CompleteTask(ctx context.Context, id string) bool {
	result, _ := t.Complete(ctx, id)
	return result == CompleteSaved
}

// GetTask retrieves a task by its id
func (t *taskServiceImpl) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	return t.store.Get(ctx, id)
}

// ListTasks retrieves every stored task
func (t *taskServiceImpl) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return t.store.ListAll(ctx)
}

// GetPendingTasks retrieves the tasks that have not been completed
func (t *taskServiceImpl) GetPendingTasks(ctx context.Context) ([]domain.Task, error) {
	tasks, err := t.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	pending := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.IsPending() {
			pending = append(pending, task)
		}
	}
	return pending, nil
}
