package api

import (
	"context"
	"io"
	"log/slog"

	"github.com/taskward/taskward-api/internal/domain"
	"github.com/taskward/taskward-api/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubUserService implements service.UserService with per-method functions.
type stubUserService struct {
	listUsersFn      func(ctx context.Context) ([]domain.User, error)
	getUserByIDFn    func(ctx context.Context, id int64) (*domain.User, error)
	getUserByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	createUserFn     func(ctx context.Context, name, lastname, email, password string) (*domain.User, error)
	loginFn          func(ctx context.Context, email, password string) (*domain.User, string, error)
	editUserFn       func(ctx context.Context, id int64, update store.UserUpdate) (*domain.User, error)
	changePasswordFn func(ctx context.Context, id int64, currentPassword, newPassword string) error
	deleteUserFn     func(ctx context.Context, id int64) error
}

func (s *stubUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.listUsersFn(ctx)
}

func (s *stubUserService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.getUserByIDFn(ctx, id)
}

func (s *stubUserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.getUserByEmailFn(ctx, email)
}

func (s *stubUserService) CreateUser(
	ctx context.Context,
	name, lastname, email, password string,
) (*domain.User, error) {
	return s.createUserFn(ctx, name, lastname, email, password)
}

func (s *stubUserService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubUserService) EditUser(
	ctx context.Context,
	id int64,
	update store.UserUpdate,
) (*domain.User, error) {
	return s.editUserFn(ctx, id, update)
}

func (s *stubUserService) ChangePassword(
	ctx context.Context,
	id int64,
	currentPassword, newPassword string,
) error {
	return s.changePasswordFn(ctx, id, currentPassword, newPassword)
}

func (s *stubUserService) DeleteUser(ctx context.Context, id int64) error {
	return s.deleteUserFn(ctx, id)
}

// stubTaskService implements service.TaskService with per-method functions.
type stubTaskService struct {
	listAllTasksFn       func(ctx context.Context) ([]domain.Task, error)
	getTaskByIDFn        func(ctx context.Context, id int64) (*domain.Task, error)
	listUserTasksFn      func(ctx context.Context, userID int64, filter store.TaskFilter) ([]domain.Task, error)
	createTaskFn         func(ctx context.Context, title, description string, userID int64) (*domain.Task, error)
	editTaskFn           func(ctx context.Context, id int64, update store.TaskUpdate) (*domain.Task, error)
	toggleCompleteTaskFn func(ctx context.Context, id int64) (*domain.Task, error)
	toggleArchiveTaskFn  func(ctx context.Context, id int64) (*domain.Task, error)
	deleteTaskFn         func(ctx context.Context, id int64) error
}

func (s *stubTaskService) ListAllTasks(ctx context.Context) ([]domain.Task, error) {
	return s.listAllTasksFn(ctx)
}

func (s *stubTaskService) GetTaskByID(ctx context.Context, id int64) (*domain.Task, error) {
	return s.getTaskByIDFn(ctx, id)
}

func (s *stubTaskService) ListUserTasks(
	ctx context.Context,
	userID int64,
	filter store.TaskFilter,
) ([]domain.Task, error) {
	return s.listUserTasksFn(ctx, userID, filter)
}

func (s *stubTaskService) CreateTask(
	ctx context.Context,
	title, description string,
	userID int64,
) (*domain.Task, error) {
	return s.createTaskFn(ctx, title, description, userID)
}

func (s *stubTaskService) EditTask(
	ctx context.Context,
	id int64,
	update store.TaskUpdate,
) (*domain.Task, error) {
	return s.editTaskFn(ctx, id, update)
}

func (s *stubTaskService) ToggleCompleteTask(ctx context.Context, id int64) (*domain.Task, error) {
	return s.toggleCompleteTaskFn(ctx, id)
}

func (s *stubTaskService) ToggleArchiveTask(ctx context.Context, id int64) (*domain.Task, error) {
	return s.toggleArchiveTaskFn(ctx, id)
}

func (s *stubTaskService) DeleteTask(ctx context.Context, id int64) error {
	return s.deleteTaskFn(ctx, id)
}
