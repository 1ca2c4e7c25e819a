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
	"golang.org/x/crypto/bcrypt"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db         store.DBTX
	bcryptCost int
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore
// interface. It accepts a database connection managed by the caller and the
// bcrypt cost used when hashing passwords on Create.
func NewPostgresUserStore(db store.DBTX, bcryptCost int) *PostgresUserStore {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &PostgresUserStore{
		db:         db,
		bcryptCost: bcryptCost,
	}
}

// WithTx returns a UserStore bound to the given transaction.
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{
		db:         tx,
		bcryptCost: s.bcryptCost,
	}
}

const userColumns = "id, name, lastname, email, hashed_password, created_at, updated_at"

func scanUser(row interface{ Scan(dest ...any) error }, u *domain.User) error {
	return row.Scan(
		&u.ID,
		&u.Name,
		&u.Lastname,
		&u.Email,
		&u.HashedPassword,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
}

// List implements store.UserStore.List
func (s *PostgresUserStore) List(ctx context.Context) ([]domain.User, error) {
	log := logger.FromContext(ctx)

	query := fmt.Sprintf("SELECT %s FROM users ORDER BY id ASC", userColumns)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query users", "error", err)
		return nil, fmt.Errorf("failed to query users: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := scanUser(rows, &u); err != nil {
			log.Error("failed to scan user row", "error", err)
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating user rows", "error", err)
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

// GetByID implements store.UserStore.GetByID
func (s *PostgresUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE id = $1", userColumns)

	var u domain.User
	if err := scanUser(s.db.QueryRowContext(ctx, query, id), &u); err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", MapError(err))
	}

	return &u, nil
}

// GetByEmail implements store.UserStore.GetByEmail
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE email = $1", userColumns)

	var u domain.User
	if err := scanUser(s.db.QueryRowContext(ctx, query, email), &u); err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", MapError(err))
	}

	return &u, nil
}

// Create implements store.UserStore.Create.
// It validates the domain user, hashes the plaintext password with bcrypt and
// persists the record, filling in the generated ID.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContext(ctx)

	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	if user.Password == "" {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, domain.ErrEmptyPassword)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), s.bcryptCost)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = string(hashed)
	user.Password = ""

	query := `
		INSERT INTO users (name, lastname, email, hashed_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err = s.db.QueryRowContext(ctx, query,
		user.Name,
		user.Lastname,
		user.Email,
		user.HashedPassword,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)

	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrEmailExists, err)
		}
		log.Error("failed to insert user", "error", err)
		return fmt.Errorf("failed to insert user: %w", MapError(err))
	}

	return nil
}

// Update implements store.UserStore.Update.
// Only the fields present in the update set are written.
func (s *PostgresUserStore) Update(ctx context.Context, id int64, update store.UserUpdate) error {
	if update.IsEmpty() {
		return nil
	}

	setClauses := make([]string, 0, 4)
	args := make([]any, 0, 5)

	appendSet := func(column string, value any) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Name != nil {
		appendSet("name", *update.Name)
	}
	if update.Lastname != nil {
		appendSet("lastname", *update.Lastname)
	}
	if update.Email != nil {
		appendSet("email", *update.Email)
	}
	appendSet("updated_at", time.Now().UTC())

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE users SET %s WHERE id = $%d",
		strings.Join(setClauses, ", "),
		len(args),
	)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrEmailExists, err)
		}
		return fmt.Errorf("failed to update user: %w", MapError(err))
	}

	return CheckRowsAffected(result, store.ErrUserNotFound)
}

// UpdatePassword implements store.UserStore.UpdatePassword
func (s *PostgresUserStore) UpdatePassword(ctx context.Context, id int64, hashedPassword string) error {
	if hashedPassword == "" {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, domain.ErrEmptyHashedPassword)
	}

	query := "UPDATE users SET hashed_password = $1, updated_at = $2 WHERE id = $3"

	result, err := s.db.ExecContext(ctx, query, hashedPassword, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", MapError(err))
	}

	return CheckRowsAffected(result, store.ErrUserNotFound)
}

// Delete implements store.UserStore.Delete.
// Owned tasks are removed by the ON DELETE CASCADE on tasks.user_id.
func (s *PostgresUserStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", MapError(err))
	}

	return CheckRowsAffected(result, store.ErrUserNotFound)
}
