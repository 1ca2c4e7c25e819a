package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taskward/taskward-api/internal/domain"
	"github.com/taskward/taskward-api/internal/store"
)

// TaskService provides task-related operations: listings with filters,
// creation against an existing owner, partial edits, flag toggles and deletion.
type TaskService interface {
	// ListAllTasks returns every task regardless of owner.
	ListAllTasks(ctx context.Context) ([]domain.Task, error)

	// GetTaskByID retrieves a task by its ID.
	GetTaskByID(ctx context.Context, id int64) (*domain.Task, error)

	// ListUserTasks returns the tasks owned by the given user, narrowed by
	// the filter and ordered by creation time.
	ListUserTasks(ctx context.Context, userID int64, filter store.TaskFilter) ([]domain.Task, error)

	// CreateTask creates a task owned by an existing user.
	// Returns store.ErrUserNotFound when the owner does not exist.
	CreateTask(ctx context.Context, title, description string, userID int64) (*domain.Task, error)

	// EditTask updates title/description when provided and different from the
	// current values, then returns the refreshed task.
	EditTask(ctx context.Context, id int64, update store.TaskUpdate) (*domain.Task, error)

	// ToggleCompleteTask flips the completion flag and returns the refreshed task.
	ToggleCompleteTask(ctx context.Context, id int64) (*domain.Task, error)

	// ToggleArchiveTask flips the archival flag and returns the refreshed task.
	ToggleArchiveTask(ctx context.Context, id int64) (*domain.Task, error)

	// DeleteTask removes a task permanently.
	DeleteTask(ctx context.Context, id int64) error
}

// TaskServiceImpl implements the TaskService interface
type TaskServiceImpl struct {
	taskStore store.TaskStore
	userStore store.UserStore
	logger    *slog.Logger
}

// Ensure TaskServiceImpl implements TaskService
var _ TaskService = (*TaskServiceImpl)(nil)

// NewTaskService creates a new TaskService
func NewTaskService(
	taskStore store.TaskStore,
	userStore store.UserStore,
	logger *slog.Logger,
) *TaskServiceImpl {
	return &TaskServiceImpl{
		taskStore: taskStore,
		userStore: userStore,
		logger:    logger.With("component", "task_service"),
	}
}

// ListAllTasks returns every task regardless of owner.
func (s *TaskServiceImpl) ListAllTasks(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.taskStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list tasks", "error", err)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetTaskByID retrieves a task by its ID.
func (s *TaskServiceImpl) GetTaskByID(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrTaskNotFound) {
			s.logger.Error("failed to retrieve task", "error", err, "task_id", id)
		}
		return nil, err
	}
	return task, nil
}

// ListUserTasks returns the tasks owned by the given user.
func (s *TaskServiceImpl) ListUserTasks(
	ctx context.Context,
	userID int64,
	filter store.TaskFilter,
) ([]domain.Task, error) {
	tasks, err := s.taskStore.ListByUser(ctx, userID, filter)
	if err != nil {
		s.logger.Error("failed to list user tasks", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list user tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask creates a task owned by an existing user.
func (s *TaskServiceImpl) CreateTask(
	ctx context.Context,
	title, description string,
	userID int64,
) (*domain.Task, error) {
	// The foreign key would catch a missing owner too, but checking first
	// gives the caller a clean not-found instead of a constraint violation.
	if _, err := s.userStore.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	task, err := domain.NewTask(title, description, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		s.logger.Error("failed to create task", "error", err, "user_id", userID)
		return nil, err
	}

	s.logger.Info("task created", "task_id", task.ID, "user_id", userID)
	return task, nil
}

// EditTask updates title/description when provided and different from the
// current values, then returns the refreshed task.
func (s *TaskServiceImpl) EditTask(
	ctx context.Context,
	id int64,
	update store.TaskUpdate,
) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Drop fields that would not change anything.
	effective := store.TaskUpdate{}
	if update.Title != nil && *update.Title != task.Title {
		effective.Title = update.Title
	}
	if update.Description != nil && *update.Description != task.Description {
		effective.Description = update.Description
	}

	if effective.IsEmpty() {
		return task, nil
	}

	if err := s.taskStore.Update(ctx, id, effective); err != nil {
		s.logger.Error("failed to update task", "error", err, "task_id", id)
		return nil, err
	}

	updated, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload task after update: %w", err)
	}

	s.logger.Info("task updated", "task_id", id)
	return updated, nil
}

// ToggleCompleteTask flips the completion flag and returns the refreshed task.
func (s *TaskServiceImpl) ToggleCompleteTask(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.taskStore.SetCompleted(ctx, id, !task.IsCompleted); err != nil {
		s.logger.Error("failed to toggle task completion", "error", err, "task_id", id)
		return nil, err
	}

	updated, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload task after toggle: %w", err)
	}

	s.logger.Info("task completion toggled",
		"task_id", id,
		"is_completed", updated.IsCompleted)
	return updated, nil
}

// ToggleArchiveTask flips the archival flag and returns the refreshed task.
func (s *TaskServiceImpl) ToggleArchiveTask(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.taskStore.SetArchived(ctx, id, !task.IsArchived); err != nil {
		s.logger.Error("failed to toggle task archival", "error", err, "task_id", id)
		return nil, err
	}

	updated, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload task after toggle: %w", err)
	}

	s.logger.Info("task archival toggled",
		"task_id", id,
		"is_archived", updated.IsArchived)
	return updated, nil
}

// DeleteTask removes a task permanently.
func (s *TaskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	if _, err := s.taskStore.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.taskStore.Delete(ctx, id); err != nil {
		if !errors.Is(err, store.ErrTaskNotFound) {
			s.logger.Error("failed to delete task", "error", err, "task_id", id)
		}
		return err
	}

	s.logger.Info("task deleted", "task_id", id)
	return nil
}
