package sqlite

import (
	"context"
	"database/sql"

	"tasktracker/internal/domain"
	"tasktracker/internal/errors"
	"tasktracker/internal/repository"
	"tasktracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository is a sqlite-backed implementation of repository.Store.
// It exists to show that the Store contract admits non-memory
// backends; the service layer never depends on it directly.
type Repository struct {
	db *sql.DB
}

// New creates a new sqlite repository instance
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &Repository{db: db}, nil
}

// Close closes the database connection
func (r *Repository) Close() error {
	return r.db.Close()
}

// Save inserts or overwrites the row for task.ID. Last write wins.
func (r *Repository) Save(ctx context.Context, task domain.Task) error {
	row := toModel(task)
	query := `
	INSERT INTO tasks (id, title, description, completed, priority)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		title = excluded.title,
		description = excluded.description,
		completed = excluded.completed,
		priority = excluded.priority`

	return Execute(ctx, r.db, query, row.ID, row.Title, row.Description, row.Completed, row.Priority)
}

// Get retrieves a task by id, or (nil, nil) if the id is unknown.
func (r *Repository) Get(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT id, title, description, completed, priority FROM tasks WHERE id = ?`

	row, err := QuerySingle(ctx, r.db, query, ScanTask, "task", id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}

	task := fromModel(*row)
	return &task, nil
}

// ListAll retrieves every stored task.
func (r *Repository) ListAll(ctx context.Context) ([]domain.Task, error) {
	query := `SELECT id, title, description, completed, priority FROM tasks ORDER BY id ASC`

	rows, err := QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
	if err != nil {
		return nil, err
	}

	return fromModelSlice(rows), nil
}

// Count returns the number of stored tasks.
func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&count)
	if err != nil {
		return 0, HandleDatabaseError("count tasks", err)
	}
	return count, nil
}

var _ repository.Store = (*Repository)(nil)
