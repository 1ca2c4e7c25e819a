package store

import (
	"context"
	"database/sql"

	"github.com/taskward/taskward-api/internal/domain"
)

// UserUpdate is an explicit field update set for partial user edits.
// A nil field means "leave unchanged"; this avoids conflating "don't change"
// with "clear to empty".
type UserUpdate struct {
	Name     *string
	Lastname *string
	Email    *string
}

// IsEmpty reports whether the update would change nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Lastname == nil && u.Email == nil
}

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// List returns all users. No pagination is applied.
	List(ctx context.Context) ([]domain.User, error)

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Create saves a new user to the store and fills in the generated ID.
	// It hashes the plaintext Password field internally before persisting.
	// Returns ErrEmailExists if the email is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// Update applies a partial field update to an existing user.
	// Returns ErrUserNotFound if the user does not exist and
	// ErrEmailExists when updating to an email that is already taken.
	Update(ctx context.Context, id int64, update UserUpdate) error

	// UpdatePassword replaces the stored password hash for the user.
	// Returns ErrUserNotFound if the user does not exist.
	UpdatePassword(ctx context.Context, id int64, hashedPassword string) error

	// Delete removes a user from the store by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	// This operation is permanent; owned tasks are removed by the schema cascade.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new UserStore instance that uses the provided transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) UserStore
}
