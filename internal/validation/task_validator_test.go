package validation

import (
	"strings"
	"testing"

	"tasktracker/internal/config"
	"tasktracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskValidator_ValidateTitle(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		expectError bool
	}{
		{
			name:  "should accept valid title",
			title: "Buy milk",
		},
		{
			name:  "should accept title with surrounding whitespace",
			title: "  Buy milk  ",
		},
		{
			name:        "should reject empty title",
			title:       "",
			expectError: true,
		},
		{
			name:        "should reject whitespace-only title",
			title:       "   ",
			expectError: true,
		},
		{
			name:        "should reject title over the length limit",
			title:       strings.Repeat("a", 300),
			expectError: true,
		},
	}

	validator := NewTaskValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateTitle(tt.title)

			if tt.expectError {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTaskValidator_ValidateTitle_ReportsRequiredField(t *testing.T) {
	validator := NewTaskValidator()

	err := validator.ValidateTitle("   ")
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)

	fieldErrors := validationErr.GetFieldErrors("title")
	require.Len(t, fieldErrors, 1)
	assert.Equal(t, ErrorTypeRequired, fieldErrors[0].Type)
}

func TestTaskValidator_GetValidTitle(t *testing.T) {
	validator := NewTaskValidator()

	title, err := validator.GetValidTitle("  Buy milk  ")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", title)

	_, err = validator.GetValidTitle("   ")
	assert.Error(t, err)
}

func TestTaskValidator_ValidateTask(t *testing.T) {
	validator := NewTaskValidator()

	err := validator.ValidateTask(domain.Task{ID: "task_1", Title: "Buy milk", Priority: 3})
	assert.NoError(t, err)

	err = validator.ValidateTask(domain.Task{ID: "task_1", Title: "Buy milk", Priority: 9})
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Len(t, validationErr.GetFieldErrors("priority"), 1)
}

func TestTaskValidator_WithConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Validation.TitleMaxLength = 10

	validator := NewTaskValidatorWithConfig(cfg)

	assert.NoError(t, validator.ValidateTitle("short"))
	assert.Error(t, validator.ValidateTitle("a title well over ten characters"))
}

func TestValidator_IsValidPriority(t *testing.T) {
	validator := NewValidator()

	assert.True(t, validator.IsValidPriority(1))
	assert.True(t, validator.IsValidPriority(5))
	assert.False(t, validator.IsValidPriority(0))
	assert.False(t, validator.IsValidPriority(6))
}
