package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taskward/taskward-api/internal/domain"
	"github.com/taskward/taskward-api/internal/service/auth"
	"github.com/taskward/taskward-api/internal/store"
)

// UserService provides user-related operations: lookups, registration,
// login, partial edits, password changes and deletion.
type UserService interface {
	// ListUsers returns all users. No pagination is applied.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// GetUserByID retrieves a user by their ID.
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)

	// GetUserByEmail retrieves a user by their email address.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// CreateUser registers a new user. Returns store.ErrEmailExists when the
	// email is already taken. The returned user never carries the plaintext
	// password.
	CreateUser(ctx context.Context, name, lastname, email, password string) (*domain.User, error)

	// Login verifies the credentials and issues a signed access token.
	// Unknown email and mismatched password both fail with
	// auth.ErrWrongCredentials so user existence does not leak.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)

	// EditUser applies a partial field update and returns the refreshed user.
	EditUser(ctx context.Context, id int64, update store.UserUpdate) (*domain.User, error)

	// ChangePassword verifies the current password and replaces it with the
	// new one. The new password must differ from the current one and satisfy
	// the password policy.
	ChangePassword(ctx context.Context, id int64, currentPassword, newPassword string) error

	// DeleteUser removes a user permanently.
	DeleteUser(ctx context.Context, id int64) error
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore store.UserStore
	db        *sql.DB
	hasher    auth.PasswordHasher
	verifier  auth.PasswordVerifier
	jwt       auth.JWTService
	logger    *slog.Logger
}

// Ensure UserServiceImpl implements UserService
var _ UserService = (*UserServiceImpl)(nil)

// NewUserService creates a new UserService
func NewUserService(
	userStore store.UserStore,
	db *sql.DB,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	jwtService auth.JWTService,
	logger *slog.Logger,
) *UserServiceImpl {
	return &UserServiceImpl{
		userStore: userStore,
		db:        db,
		hasher:    hasher,
		verifier:  verifier,
		jwt:       jwtService,
		logger:    logger.With("component", "user_service"),
	}
}

// ListUsers returns all users.
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUserByID retrieves a user by their ID.
func (s *UserServiceImpl) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			s.logger.Error("failed to retrieve user", "error", err, "user_id", id)
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return user, nil
}

// GetUserByEmail retrieves a user by their email address.
func (s *UserServiceImpl) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found by email")
		} else {
			s.logger.Error("failed to retrieve user by email", "error", err)
		}
		return nil, fmt.Errorf("failed to retrieve user by email: %w", err)
	}
	return user, nil
}

// CreateUser registers a new user inside a transaction.
// The store hashes the password and maps a duplicate email to ErrEmailExists.
func (s *UserServiceImpl) CreateUser(
	ctx context.Context,
	name, lastname, email, password string,
) (*domain.User, error) {
	if password == "" {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, ErrMissingPassword)
	}

	user, err := domain.NewUser(name, lastname, email, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("attempted to create user with existing email")
		} else {
			s.logger.Error("failed to create user", "error", err)
		}
		return nil, err
	}

	s.logger.Info("user created", "user_id", user.ID)
	return user, nil
}

// Login verifies the credentials and issues a signed access token.
func (s *UserServiceImpl) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, "", auth.ErrWrongCredentials
		}
		s.logger.Error("failed to look up user for login", "error", err)
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		s.logger.Debug("login rejected: password mismatch", "user_id", user.ID)
		return nil, "", auth.ErrWrongCredentials
	}

	token, err := s.jwt.GenerateToken(ctx, user.ID, user.Email)
	if err != nil {
		s.logger.Error("failed to generate token", "error", err, "user_id", user.ID)
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// EditUser applies a partial field update and returns the refreshed user.
// An empty update set is a no-op that returns the current state.
func (s *UserServiceImpl) EditUser(
	ctx context.Context,
	id int64,
	update store.UserUpdate,
) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.IsEmpty() {
		return user, nil
	}

	if err := s.userStore.Update(ctx, id, update); err != nil {
		if !errors.Is(err, store.ErrEmailExists) {
			s.logger.Error("failed to update user", "error", err, "user_id", id)
		}
		return nil, err
	}

	updated, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload user after update: %w", err)
	}

	s.logger.Info("user updated", "user_id", id)
	return updated, nil
}

// ChangePassword verifies the current password and replaces it with a new one.
func (s *UserServiceImpl) ChangePassword(
	ctx context.Context,
	id int64,
	currentPassword, newPassword string,
) error {
	if currentPassword == "" || newPassword == "" {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, ErrMissingPassword)
	}

	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.verifier.Compare(user.HashedPassword, currentPassword); err != nil {
		s.logger.Debug("password change rejected: current password mismatch", "user_id", id)
		return ErrCurrentPasswordIncorrect
	}

	// Reject before hashing: equality of plaintexts, not of digests.
	if currentPassword == newPassword {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, ErrSamePassword)
	}

	if err := domain.ValidatePassword(newPassword); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	hashed, err := s.hasher.Hash(newPassword)
	if err != nil {
		s.logger.Error("failed to hash new password", "error", err, "user_id", id)
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.userStore.UpdatePassword(ctx, id, hashed); err != nil {
		s.logger.Error("failed to persist new password", "error", err, "user_id", id)
		return err
	}

	s.logger.Info("password changed", "user_id", id)
	return nil
}

// DeleteUser removes a user permanently. Owned tasks go with it (schema cascade).
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	if _, err := s.userStore.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.userStore.Delete(ctx, id); err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			s.logger.Error("failed to delete user", "error", err, "user_id", id)
		}
		return err
	}

	s.logger.Info("user deleted", "user_id", id)
	return nil
}
