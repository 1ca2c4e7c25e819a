package domain

import (
	"errors"
	"strings"
	"time"
	"unicode"
)

// Common user validation errors
var (
	ErrEmptyName           = errors.New("name cannot be empty")
	ErrEmptyLastname       = errors.New("lastname cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrPasswordTooWeak     = errors.New(
		"password must contain an uppercase letter, a lowercase letter, a digit and a special character",
	)
)

// User represents a registered user of the application.
// HashedPassword and the transient plaintext Password are never serialized.
type User struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Lastname       string    `json:"lastname"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext, only set during registration/password change
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given identity fields and plaintext password.
// The ID is assigned by the store on insert. The caller is responsible for hashing
// the password before the user is persisted.
func NewUser(name, lastname, email, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		Name:      name,
		Lastname:  lastname,
		Email:     email,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return ErrEmptyName
	}

	if strings.TrimSpace(u.Lastname) == "" {
		return ErrEmptyLastname
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.Password != "" {
		return ValidatePassword(u.Password)
	}

	// Users loaded from the database carry only the hash.
	if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

// ValidatePassword checks the password policy: 8 to 72 characters with at least
// one uppercase letter, one lowercase letter, one digit and one special character.
// The 72-character ceiling is bcrypt's practical input limit.
func ValidatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) < 8 {
		return ErrPasswordTooShort
	}
	if len(password) > 72 {
		return ErrPasswordTooLong
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}

	if !upper || !lower || !digit || !special {
		return ErrPasswordTooWeak
	}

	return nil
}

// validateEmailFormat performs basic validation of email format.
// It requires a non-edge "@" and a dotted domain part. Anything stricter
// belongs to the request-validation layer.
func validateEmailFormat(email string) bool {
	atIndex := strings.IndexByte(email, '@')
	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}

	domain := email[atIndex+1:]
	dotIndex := strings.IndexByte(domain, '.')
	return dotIndex > 0 && dotIndex < len(domain)-1
}
