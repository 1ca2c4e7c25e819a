package api

import (
	"time"

	"github.com/taskward/taskward-api/internal/domain"
)

// Request and response structures. JSON field names follow the public API
// contract (camelCase), not the internal entity tags.

// CreateUserRequest defines the payload for the user registration endpoint.
// Password complexity beyond length is enforced by the domain policy.
type CreateUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Lastname string `json:"lastname" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for the login endpoint.
type AuthResponse struct {
	UserID int64  `json:"userId"`
	Token  string `json:"token"`
}

// EditUserRequest defines the payload for partial user edits.
// Nil fields are left unchanged.
type EditUserRequest struct {
	Name     *string `json:"name,omitempty"     validate:"omitempty,min=1"`
	Lastname *string `json:"lastname,omitempty" validate:"omitempty,min=1"`
	Email    *string `json:"email,omitempty"    validate:"omitempty,email"`
}

// EditUserResponse returns the editable fields after an edit.
// The password hash is never part of any response.
type EditUserResponse struct {
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Email    string `json:"email"`
}

// ChangePasswordRequest defines the payload for the password-change endpoint.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=8,max=72"`
}

// UserResponse is the public representation of a user.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Lastname  string    `json:"lastname"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Lastname:  u.Lastname,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func newUserResponses(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, newUserResponse(&users[i]))
	}
	return out
}

// CreateTaskRequest defines the payload for the task creation endpoint.
type CreateTaskRequest struct {
	Title       string `json:"title"       validate:"required,max=30"`
	Description string `json:"description" validate:"required,max=200"`
	UserID      int64  `json:"userId"      validate:"required,gt=0"`
}

// EditTaskRequest defines the payload for partial task edits.
// Nil fields are left unchanged.
type EditTaskRequest struct {
	Title       *string `json:"title,omitempty"       validate:"omitempty,min=1,max=30"`
	Description *string `json:"description,omitempty" validate:"omitempty,min=1,max=200"`
}

// TaskResponse is the public representation of a task.
type TaskResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IsCompleted bool      `json:"isCompleted"`
	IsArchived  bool      `json:"isArchived"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	UserID      int64     `json:"userId"`
}

func newTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		IsCompleted: t.IsCompleted,
		IsArchived:  t.IsArchived,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		UserID:      t.UserID,
	}
}

func newTaskResponses(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, newTaskResponse(&tasks[i]))
	}
	return out
}
