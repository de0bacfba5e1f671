package domain

// Priority bounds for a task. Out-of-range priorities are clamped at
// creation time and never re-validated afterwards.
const (
	MinPriority = 1
	MaxPriority = 5
)

// Task represents a task in the domain model.
// This is a pure domain model without storage-specific concerns.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Priority    int    `json:"priority"`
}

// NewTask creates a new Task with the given title and description.
func NewTask(title, description string, priority int) Task {
	return Task{
		Title:       title,
		Description: description,
		Priority:    ClampPriority(priority),
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.Title != "" && t.Priority >= MinPriority && t.Priority <= MaxPriority
}

// IsPending reports whether the task has not been completed yet.
func (t Task) IsPending() bool {
	return !t.Completed
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}

// ClampPriority forces a priority into the [MinPriority, MaxPriority]
// range. Values below the minimum become MinPriority, values above the
// maximum become MaxPriority.
func ClampPriority(priority int) int {
	if priority < MinPriority {
		return MinPriority
	}
	if priority > MaxPriority {
		return MaxPriority
	}
	return priority
}
