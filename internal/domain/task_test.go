package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskward/taskward-api/internal/domain"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	t.Run("valid task", func(t *testing.T) {
		t.Parallel()

		task, err := domain.NewTask("Groceries", "Buy milk and eggs", 42)
		require.NoError(t, err)

		assert.Equal(t, "Groceries", task.Title)
		assert.Equal(t, "Buy milk and eggs", task.Description)
		assert.Equal(t, int64(42), task.UserID)
		assert.False(t, task.IsCompleted)
		assert.False(t, task.IsArchived)
		assert.Zero(t, task.ID)
		assert.False(t, task.CreatedAt.IsZero())
	})

	t.Run("title at maximum length", func(t *testing.T) {
		t.Parallel()

		title := strings.Repeat("a", domain.MaxTaskTitleLen)
		task, err := domain.NewTask(title, "description", 1)
		require.NoError(t, err)
		assert.Equal(t, title, task.Title)
	})

	tests := []struct {
		name        string
		title       string
		description string
		userID      int64
		wantErr     error
	}{
		{
			name:        "empty title",
			title:       "",
			description: "description",
			userID:      1,
			wantErr:     domain.ErrEmptyTaskTitle,
		},
		{
			name:        "whitespace title",
			title:       "   ",
			description: "description",
			userID:      1,
			wantErr:     domain.ErrEmptyTaskTitle,
		},
		{
			name:        "title too long",
			title:       strings.Repeat("a", domain.MaxTaskTitleLen+1),
			description: "description",
			userID:      1,
			wantErr:     domain.ErrTaskTitleTooLong,
		},
		{
			name:        "empty description",
			title:       "Groceries",
			description: "",
			userID:      1,
			wantErr:     domain.ErrEmptyTaskDescription,
		},
		{
			name:        "description too long",
			title:       "Groceries",
			description: strings.Repeat("a", domain.MaxTaskDescriptionLen+1),
			userID:      1,
			wantErr:     domain.ErrTaskDescriptionTooLong,
		},
		{
			name:        "zero owner",
			title:       "Groceries",
			description: "description",
			userID:      0,
			wantErr:     domain.ErrInvalidTaskOwner,
		},
		{
			name:        "negative owner",
			title:       "Groceries",
			description: "description",
			userID:      -5,
			wantErr:     domain.ErrInvalidTaskOwner,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			task, err := domain.NewTask(tt.title, tt.description, tt.userID)
			assert.Nil(t, task)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
