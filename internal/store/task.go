package store

import (
	"context"
	"database/sql"

	"github.com/taskward/taskward-api/internal/domain"
)

// TaskOrder selects the ordering of task listings by creation time.
type TaskOrder string

const (
	TaskOrderAsc  TaskOrder = "ASC"
	TaskOrderDesc TaskOrder = "DESC"
)

// TaskFilter narrows user task listings. Nil flag fields mean "don't filter".
type TaskFilter struct {
	Archived  *bool
	Completed *bool
	Order     TaskOrder
}

// TaskUpdate is an explicit field update set for partial task edits.
// A nil field means "leave unchanged".
type TaskUpdate struct {
	Title       *string
	Description *string
}

// IsEmpty reports whether the update would change nothing.
func (u TaskUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil
}

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// List returns all tasks regardless of owner.
	List(ctx context.Context) ([]domain.Task, error)

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// ListByUser returns the tasks owned by the given user, narrowed by the
	// filter's flags and ordered by creation time.
	ListByUser(ctx context.Context, userID int64, filter TaskFilter) ([]domain.Task, error)

	// Create saves a new task and fills in the generated ID and timestamps.
	// Returns ErrInvalidEntity if the owning user does not exist
	// (foreign key violation).
	Create(ctx context.Context, task *domain.Task) error

	// Update applies a partial field update to an existing task.
	// Returns ErrUpdateFailed if the update affects zero rows.
	Update(ctx context.Context, id int64, update TaskUpdate) error

	// SetCompleted sets the completion flag on a task.
	// Returns ErrTaskNotFound if the task does not exist.
	SetCompleted(ctx context.Context, id int64, completed bool) error

	// SetArchived sets the archival flag on a task.
	// Returns ErrTaskNotFound if the task does not exist.
	SetArchived(ctx context.Context, id int64, archived bool) error

	// Delete removes a task from the store by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new TaskStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) TaskStore
}
