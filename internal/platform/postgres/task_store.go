package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/taskward/taskward-api/internal/domain"
	"github.com/taskward/taskward-api/internal/platform/logger"
	"github.com/taskward/taskward-api/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db store.DBTX
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface.
func NewPostgresTaskStore(db store.DBTX) *PostgresTaskStore {
	return &PostgresTaskStore{db: db}
}

// WithTx returns a TaskStore bound to the given transaction.
func (s *PostgresTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &PostgresTaskStore{db: tx}
}

const taskColumns = "id, title, description, is_completed, is_archived, created_at, updated_at, user_id"

func scanTask(row interface{ Scan(dest ...any) error }, t *domain.Task) error {
	return row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.IsCompleted,
		&t.IsArchived,
		&t.CreatedAt,
		&t.UpdatedAt,
		&t.UserID,
	)
}

func (s *PostgresTaskStore) queryTasks(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	log := logger.FromContext(ctx)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query tasks", "error", err)
		return nil, fmt.Errorf("failed to query tasks: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		if err := scanTask(rows, &t); err != nil {
			log.Error("failed to scan task row", "error", err)
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating task rows", "error", err)
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}

	return tasks, nil
}

// List implements store.TaskStore.List
func (s *PostgresTaskStore) List(ctx context.Context) ([]domain.Task, error) {
	query := fmt.Sprintf("SELECT %s FROM tasks ORDER BY id ASC", taskColumns)
	return s.queryTasks(ctx, query)
}

// GetByID implements store.TaskStore.GetByID
func (s *PostgresTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE id = $1", taskColumns)

	var t domain.Task
	if err := scanTask(s.db.QueryRowContext(ctx, query, id), &t); err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task by ID: %w", MapError(err))
	}

	return &t, nil
}

// ListByUser implements store.TaskStore.ListByUser.
// Nil filter flags are not applied; ordering is by creation time and
// defaults to ascending.
func (s *PostgresTaskStore) ListByUser(
	ctx context.Context,
	userID int64,
	filter store.TaskFilter,
) ([]domain.Task, error) {
	whereClauses := []string{"user_id = $1"}
	args := []any{userID}

	if filter.Archived != nil {
		args = append(args, *filter.Archived)
		whereClauses = append(whereClauses, fmt.Sprintf("is_archived = $%d", len(args)))
	}
	if filter.Completed != nil {
		args = append(args, *filter.Completed)
		whereClauses = append(whereClauses, fmt.Sprintf("is_completed = $%d", len(args)))
	}

	order := "ASC"
	if filter.Order == store.TaskOrderDesc {
		order = "DESC"
	}

	query := fmt.Sprintf(
		"SELECT %s FROM tasks WHERE %s ORDER BY created_at %s",
		taskColumns,
		strings.Join(whereClauses, " AND "),
		order,
	)

	return s.queryTasks(ctx, query, args...)
}

// Create implements store.TaskStore.Create
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContext(ctx)

	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO tasks (title, description, is_completed, is_archived, created_at, updated_at, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		task.Title,
		task.Description,
		task.IsCompleted,
		task.IsArchived,
		task.CreatedAt,
		task.UpdatedAt,
		task.UserID,
	).Scan(&task.ID)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrUserNotFound, err)
		}
		log.Error("failed to insert task", "error", err, "user_id", task.UserID)
		return fmt.Errorf("failed to insert task: %w", MapError(err))
	}

	return nil
}

// Update implements store.TaskStore.Update.
// Only the fields present in the update set are written. Zero affected rows
// are reported as ErrUpdateFailed because callers load the task first.
func (s *PostgresTaskStore) Update(ctx context.Context, id int64, update store.TaskUpdate) error {
	if update.IsEmpty() {
		return nil
	}

	setClauses := make([]string, 0, 3)
	args := make([]any, 0, 4)

	appendSet := func(column string, value any) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Title != nil {
		appendSet("title", *update.Title)
	}
	if update.Description != nil {
		appendSet("description", *update.Description)
	}
	appendSet("updated_at", time.Now().UTC())

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE tasks SET %s WHERE id = $%d",
		strings.Join(setClauses, ", "),
		len(args),
	)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", MapError(err))
	}

	return CheckRowsAffected(result, store.ErrUpdateFailed)
}

// SetCompleted implements store.TaskStore.SetCompleted
func (s *PostgresTaskStore) SetCompleted(ctx context.Context, id int64, completed bool) error {
	query := "UPDATE tasks SET is_completed = $1, updated_at = $2 WHERE id = $3"

	result, err := s.db.ExecContext(ctx, query, completed, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to set task completion: %w", MapError(err))
	}

	return CheckRowsAffected(result, store.ErrTaskNotFound)
}

// SetArchived implements store.TaskStore.SetArchived
func (s *PostgresTaskStore) SetArchived(ctx context.Context, id int64, archived bool) error {
	query := "UPDATE tasks SET is_archived = $1, updated_at = $2 WHERE id = $3"

	result, err := s.db.ExecContext(ctx, query, archived, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to set task archival: %w", MapError(err))
	}

	return CheckRowsAffected(result, store.ErrTaskNotFound)
}

// Delete implements store.TaskStore.Delete
func (s *PostgresTaskStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", MapError(err))
	}

	return CheckRowsAffected(result, store.ErrTaskNotFound)
}
