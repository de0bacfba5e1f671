package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"tasktracker/internal/domain"
	apperrors "tasktracker/internal/errors"
	"tasktracker/internal/repository"
	"tasktracker/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore wraps a real store and fails saves on demand.
type failingStore struct {
	repository.Store
	saveErr error
}

func (s *failingStore) Save(ctx context.Context, task domain.Task) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	return s.Store.Save(ctx, task)
}

func setupTaskService(t *testing.T) (TaskService, repository.Store) {
	t.Helper()

	store := memory.New()
	t.Cleanup(func() { store.Close() })

	return NewTaskService(store), store
}

func TestTaskService_CreateTask(t *testing.T) {
	tests := []struct {
		name                string
		title               string
		description         string
		priority            int
		expectedTitle       string
		expectedDescription string
		expectedPriority    int
		errorAssertion      func(t *testing.T, err error)
	}{
		{
			name:                "should create task with valid inputs",
			title:               "Buy milk",
			description:         "2 litres",
			priority:            3,
			expectedTitle:       "Buy milk",
			expectedDescription: "2 litres",
			expectedPriority:    3,
		},
		{
			name:                "should trim title and description",
			title:               " Buy milk ",
			description:         "  semi-skimmed  ",
			priority:            1,
			expectedTitle:       "Buy milk",
			expectedDescription: "semi-skimmed",
			expectedPriority:    1,
		},
		{
			name:             "should clamp priority below range",
			title:            "Buy milk",
			priority:         -5,
			expectedTitle:    "Buy milk",
			expectedPriority: 1,
		},
		{
			name:             "should clamp priority above range",
			title:            "Buy milk",
			priority:         99,
			expectedTitle:    "Buy milk",
			expectedPriority: 5,
		},
		{
			name:             "should clamp zero priority to minimum",
			title:            "Buy milk",
			priority:         0,
			expectedTitle:    "Buy milk",
			expectedPriority: 1,
		},
		{
			name:        "should return validation error for empty title",
			title:       "",
			description: "x",
			priority:    1,
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeValidation))
			},
		},
		{
			name:        "should return validation error for whitespace-only title",
			title:       "   ",
			description: "x",
			priority:    1,
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeValidation))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := setupTaskService(t)
			ctx := context.Background()

			result, err := service.CreateTask(ctx, tt.title, tt.description, tt.priority)

			if tt.errorAssertion != nil {
				require.Error(t, err)
				tt.errorAssertion(t, err)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.NotEmpty(t, result.ID)
				assert.Equal(t, tt.expectedTitle, result.Title)
				assert.Equal(t, tt.expectedDescription, result.Description)
				assert.Equal(t, tt.expectedPriority, result.Priority)
				assert.False(t, result.Completed)
			}
		})
	}
}

func TestTaskService_CreateTask_StoredTaskMatchesResult(t *testing.T) {
	service, store := setupTaskService(t)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, "Buy milk", "2 litres", 2)
	require.NoError(t, err)

	stored, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, *created, *stored)

	tasks, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, *created, tasks[0])
}

func TestTaskService_CreateTask_SequentialIDs(t *testing.T) {
	service, _ := setupTaskService(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		task, err := service.CreateTask(ctx, fmt.Sprintf("Task %d", i), "", 1)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("task_%d", i), task.ID)
	}
}

func TestTaskService_CreateTask_SequentialIDsSeededFromCount(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.Task{ID: "task_1", Title: "Existing", Priority: 1}))
	require.NoError(t, store.Save(ctx, domain.Task{ID: "task_2", Title: "Existing", Priority: 1}))

	service := NewTaskService(store)

	task, err := service.CreateTask(ctx, "New", "", 1)
	require.NoError(t, err)
	assert.Equal(t, "task_3", task.ID)
}

func TestTaskService_CreateTask_ConcurrentIDsAreUnique(t *testing.T) {
	service, store := setupTaskService(t)
	ctx := context.Background()

	const creators = 20

	var wg sync.WaitGroup
	for i := 0; i < creators; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.CreateTask(ctx, "Concurrent", "", 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, creators, count)
}

func TestTaskService_CreateTask_RandomIDs(t *testing.T) {
	store := memory.New()
	service := NewTaskService(store, WithIDGenerator(RandomID()))
	ctx := context.Background()

	first, err := service.CreateTask(ctx, "First", "", 1)
	require.NoError(t, err)
	second, err := service.CreateTask(ctx, "Second", "", 1)
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestTaskService_CreateTask_PersistenceFailure(t *testing.T) {
	store := memory.New()
	failing := &failingStore{Store: store, saveErr: errors.New("disk full")}
	service := NewTaskService(failing)
	ctx := context.Background()

	result, err := service.CreateTask(ctx, "Buy milk", "", 1)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeDatabase))

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	taskID, ok := appErr.GetContext("task_id")
	require.True(t, ok)
	assert.Equal(t, "task_1", taskID)

	// The task must not exist in the store.
	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestTaskService_Complete(t *testing.T) {
	service, _ := setupTaskService(t)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, "Buy milk", "", 1)
	require.NoError(t, err)

	result, err := service.Complete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, CompleteSaved, result)

	got, err := service.GetTask(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Completed)

	pending, err := service.GetPendingTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestTaskService_Complete_UnknownIDLeavesStoreUnchanged(t *testing.T) {
	service, store := setupTaskService(t)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, "Buy milk", "", 1)
	require.NoError(t, err)

	result, err := service.Complete(ctx, "task_999")
	require.NoError(t, err)
	assert.Equal(t, CompleteNotFound, result)
	assert.False(t, service.CompleteTask(ctx, "task_999"))

	tasks, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, *created, tasks[0])
}

func TestTaskService_CompleteTask_Idempotent(t *testing.T) {
	service, _ := setupTaskService(t)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, "Buy milk", "", 1)
	require.NoError(t, err)

	assert.True(t, service.CompleteTask(ctx, created.ID))
	assert.True(t, service.CompleteTask(ctx, created.ID))

	got, err := service.GetTask(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Completed)
}

func TestTaskService_Complete_SaveFailure(t *testing.T) {
	store := memory.New()
	failing := &failingStore{Store: store}
	service := NewTaskService(failing)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, "Buy milk", "", 1)
	require.NoError(t, err)

	failing.saveErr = errors.New("disk full")

	result, err := service.Complete(ctx, created.ID)
	require.Error(t, err)
	assert.Equal(t, CompleteFailed, result)

	// The boolean shim conflates this with "not found".
	assert.False(t, service.CompleteTask(ctx, created.ID))

	// The stored entry is unchanged.
	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Completed)
}

func TestTaskService_GetPendingTasks(t *testing.T) {
	service, _ := setupTaskService(t)
	ctx := context.Background()

	first, err := service.CreateTask(ctx, "Learn X", "Y", 3)
	require.NoError(t, err)
	_, err = service.CreateTask(ctx, "Build Y", "Z", 4)
	require.NoError(t, err)
	_, err = service.CreateTask(ctx, "Write tests", "W", 5)
	require.NoError(t, err)

	pending, err := service.GetPendingTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 3)

	require.True(t, service.CompleteTask(ctx, first.ID))

	pending, err = service.GetPendingTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 2)
	for _, task := range pending {
		assert.NotEqual(t, first.ID, task.ID)
	}
}

func TestTaskService_GetTask_AbsentIsNotAnError(t *testing.T) {
	service, _ := setupTaskService(t)

	got, err := service.GetTask(context.Background(), "task_999")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTaskService_ListTasks(t *testing.T) {
	service, _ := setupTaskService(t)
	ctx := context.Background()

	tasks, err := service.ListTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	_, err = service.CreateTask(ctx, "First", "", 1)
	require.NoError(t, err)
	_, err = service.CreateTask(ctx, "Second", "", 2)
	require.NoError(t, err)

	tasks, err = service.ListTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestCompleteResult_String(t *testing.T) {
	assert.Equal(t, "not_found", CompleteNotFound.String())
	assert.Equal(t, "saved", CompleteSaved.String())
	assert.Equal(t, "failed", CompleteFailed.String())
	assert.Equal(t, "unknown", CompleteResult(99).String())
}
