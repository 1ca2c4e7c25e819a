package mocks

import (
	"context"
	"database/sql"

	"github.com/taskward/taskward-api/internal/domain"
	"github.com/taskward/taskward-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	// Custom behavior functions
	ListFn         func(ctx context.Context) ([]domain.Task, error)
	GetByIDFn      func(ctx context.Context, id int64) (*domain.Task, error)
	ListByUserFn   func(ctx context.Context, userID int64, filter store.TaskFilter) ([]domain.Task, error)
	CreateFn       func(ctx context.Context, task *domain.Task) error
	UpdateFn       func(ctx context.Context, id int64, update store.TaskUpdate) error
	SetCompletedFn func(ctx context.Context, id int64, completed bool) error
	SetArchivedFn  func(ctx context.Context, id int64, archived bool) error
	DeleteFn       func(ctx context.Context, id int64) error

	// Default response values
	Tasks []domain.Task
	Task  *domain.Task
	Err   error

	// Call tracking for verification
	ListByUserCalls   []store.TaskFilter
	CreateCalls       []*domain.Task
	UpdateCalls       []store.TaskUpdate
	SetCompletedCalls []bool
	SetArchivedCalls  []bool
	DeleteCalls       []int64
}

var _ store.TaskStore = (*MockTaskStore)(nil)

// List implements the store.TaskStore interface
func (m *MockTaskStore) List(ctx context.Context) ([]domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Tasks, m.Err
}

// GetByID implements the store.TaskStore interface
func (m *MockTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Task == nil {
		return nil, store.ErrTaskNotFound
	}
	return m.Task, nil
}

// ListByUser implements the store.TaskStore interface
func (m *MockTaskStore) ListByUser(
	ctx context.Context,
	userID int64,
	filter store.TaskFilter,
) ([]domain.Task, error) {
	m.ListByUserCalls = append(m.ListByUserCalls, filter)
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID, filter)
	}
	return m.Tasks, m.Err
}

// Create implements the store.TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	m.CreateCalls = append(m.CreateCalls, task)
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	return m.Err
}

// Update implements the store.TaskStore interface
func (m *MockTaskStore) Update(ctx context.Context, id int64, update store.TaskUpdate) error {
	m.UpdateCalls = append(m.UpdateCalls, update)
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, update)
	}
	return m.Err
}

// SetCompleted implements the store.TaskStore interface
func (m *MockTaskStore) SetCompleted(ctx context.Context, id int64, completed bool) error {
	m.SetCompletedCalls = append(m.SetCompletedCalls, completed)
	if m.SetCompletedFn != nil {
		return m.SetCompletedFn(ctx, id, completed)
	}
	return m.Err
}

// SetArchived implements the store.TaskStore interface
func (m *MockTaskStore) SetArchived(ctx context.Context, id int64, archived bool) error {
	m.SetArchivedCalls = append(m.SetArchivedCalls, archived)
	if m.SetArchivedFn != nil {
		return m.SetArchivedFn(ctx, id, archived)
	}
	return m.Err
}

// Delete implements the store.TaskStore interface
func (m *MockTaskStore) Delete(ctx context.Context, id int64) error {
	m.DeleteCalls = append(m.DeleteCalls, id)
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

// WithTx implements the store.TaskStore interface.
// The mock ignores the transaction and returns itself.
func (m *MockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return m
}
