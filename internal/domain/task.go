package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Field length limits enforced both here and by the database schema.
const (
	MaxTaskTitleLen       = 30
	MaxTaskDescriptionLen = 200
)

// Common task validation errors
var (
	ErrEmptyTaskTitle       = errors.New("task title cannot be empty")
	ErrEmptyTaskDescription = errors.New("task description cannot be empty")
	ErrTaskTitleTooLong     = fmt.Errorf(
		"task title must not exceed %d characters", MaxTaskTitleLen)
	ErrTaskDescriptionTooLong = fmt.Errorf(
		"task description must not exceed %d characters", MaxTaskDescriptionLen)
	ErrInvalidTaskOwner = errors.New("task must reference an existing user")
)

// Task is a unit of work owned by exactly one user.
// IsCompleted and IsArchived are independent flags; a task may be both or neither.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IsCompleted bool      `json:"is_completed"`
	IsArchived  bool      `json:"is_archived"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	UserID      int64     `json:"user_id"`
}

// NewTask creates a new Task owned by the given user.
// Completion and archival flags default to false; the ID is assigned on insert.
func NewTask(title, description string, userID int64) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		UserID:      userID,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTaskTitle
	}

	if len(t.Title) > MaxTaskTitleLen {
		return ErrTaskTitleTooLong
	}

	if strings.TrimSpace(t.Description) == "" {
		return ErrEmptyTaskDescription
	}

	if len(t.Description) > MaxTaskDescriptionLen {
		return ErrTaskDescriptionTooLong
	}

	if t.UserID <= 0 {
		return ErrInvalidTaskOwner
	}

	return nil
}
