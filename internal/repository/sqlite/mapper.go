package sqlite

import (
	"tasktracker/internal/domain"
)

// toModel converts a domain Task to a database Task.
func toModel(task domain.Task) Task {
	return Task{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		Priority:    task.Priority,
	}
}

// fromModel converts a database Task to a domain Task.
func fromModel(row Task) domain.Task {
	return domain.Task{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Completed:   row.Completed,
		Priority:    row.Priority,
	}
}

// fromModelSlice converts a slice of database Tasks to domain Tasks.
func fromModelSlice(rows []*Task) []domain.Task {
	tasks := make([]domain.Task, len(rows))
	for i, row := range rows {
		tasks[i] = fromModel(*row)
	}
	return tasks
}
