package sqlite

// Task represents a row in the tasks table
type Task struct {
	ID          string
	Title       string
	Description string
	Completed   bool
	Priority    int
}
