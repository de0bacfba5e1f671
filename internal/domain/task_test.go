package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTask(t *testing.T) {
	tests := []struct {
		name             string
		title            string
		description      string
		priority         int
		expectedPriority int
	}{
		{
			name:             "should keep in-range priority",
			title:            "Buy milk",
			description:      "2 litres",
			priority:         3,
			expectedPriority: 3,
		},
		{
			name:             "should clamp priority below minimum",
			title:            "Buy milk",
			priority:         -5,
			expectedPriority: MinPriority,
		},
		{
			name:             "should clamp priority above maximum",
			title:            "Buy milk",
			priority:         99,
			expectedPriority: MaxPriority,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := NewTask(tt.title, tt.description, tt.priority)

			assert.Equal(t, tt.title, task.Title)
			assert.Equal(t, tt.description, task.Description)
			assert.Equal(t, tt.expectedPriority, task.Priority)
			assert.False(t, task.Completed)
			assert.Empty(t, task.ID)
		})
	}
}

func TestTask_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		task     Task
		expected bool
	}{
		{
			name:     "should be valid with title and in-range priority",
			task:     Task{Title: "Buy milk", Priority: 1},
			expected: true,
		},
		{
			name:     "should be invalid with empty title",
			task:     Task{Priority: 1},
			expected: false,
		},
		{
			name:     "should be invalid with priority below range",
			task:     Task{Title: "Buy milk", Priority: 0},
			expected: false,
		},
		{
			name:     "should be invalid with priority above range",
			task:     Task{Title: "Buy milk", Priority: 6},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.IsValid())
		})
	}
}

func TestTask_IsPending(t *testing.T) {
	assert.True(t, Task{Title: "a", Priority: 1}.IsPending())
	assert.False(t, Task{Title: "a", Priority: 1, Completed: true}.IsPending())
}

func TestClampPriority(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{name: "below minimum", input: -5, expected: 1},
		{name: "at minimum", input: 1, expected: 1},
		{name: "in range", input: 3, expected: 3},
		{name: "at maximum", input: 5, expected: 5},
		{name: "above maximum", input: 99, expected: 5},
		{name: "zero", input: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClampPriority(tt.input))
		})
	}
}

func TestTask_String(t *testing.T) {
	task := Task{Title: "Write tests", Priority: 5}
	assert.Equal(t, "Write tests", task.String())
}
