package mocks

import (
	"context"
	"database/sql"

	"github.com/taskward/taskward-api/internal/domain"
	"github.com/taskward/taskward-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Custom behavior functions
	ListFn           func(ctx context.Context) ([]domain.User, error)
	GetByIDFn        func(ctx context.Context, id int64) (*domain.User, error)
	GetByEmailFn     func(ctx context.Context, email string) (*domain.User, error)
	CreateFn         func(ctx context.Context, user *domain.User) error
	UpdateFn         func(ctx context.Context, id int64, update store.UserUpdate) error
	UpdatePasswordFn func(ctx context.Context, id int64, hashedPassword string) error
	DeleteFn         func(ctx context.Context, id int64) error

	// Default response values
	Users []domain.User
	User  *domain.User
	Err   error

	// Call tracking for verification
	CreateCalls         []*domain.User
	UpdateCalls         []store.UserUpdate
	UpdatePasswordCalls []string
	DeleteCalls         []int64
}

var _ store.UserStore = (*MockUserStore)(nil)

// List implements the store.UserStore interface
func (m *MockUserStore) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Users, m.Err
}

// GetByID implements the store.UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.User == nil {
		return nil, store.ErrUserNotFound
	}
	return m.User, nil
}

// GetByEmail implements the store.UserStore interface
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.User == nil {
		return nil, store.ErrUserNotFound
	}
	return m.User, nil
}

// Create implements the store.UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	m.CreateCalls = append(m.CreateCalls, user)
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return m.Err
}

// Update implements the store.UserStore interface
func (m *MockUserStore) Update(ctx context.Context, id int64, update store.UserUpdate) error {
	m.UpdateCalls = append(m.UpdateCalls, update)
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, update)
	}
	return m.Err
}

// UpdatePassword implements the store.UserStore interface
func (m *MockUserStore) UpdatePassword(ctx context.Context, id int64, hashedPassword string) error {
	m.UpdatePasswordCalls = append(m.UpdatePasswordCalls, hashedPassword)
	if m.UpdatePasswordFn != nil {
		return m.UpdatePasswordFn(ctx, id, hashedPassword)
	}
	return m.Err
}

// Delete implements the store.UserStore interface
func (m *MockUserStore) Delete(ctx context.Context, id int64) error {
	m.DeleteCalls = append(m.DeleteCalls, id)
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

// WithTx implements the store.UserStore interface.
// The mock ignores the transaction and returns itself.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}
