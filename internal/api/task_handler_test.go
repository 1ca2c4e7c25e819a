package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskward/taskward-api/internal/domain"
	"github.com/taskward/taskward-api/internal/service"
	"github.com/taskward/taskward-api/internal/store"
)

func taskRouter(svc service.TaskService) http.Handler {
	h := NewTaskHandler(svc, testLogger())

	r := chi.NewRouter()
	r.Get("/tasks/", h.List)
	r.Get("/tasks/user/{userId}", h.ListByUser)
	r.Get("/tasks/{id}", h.GetByID)
	r.Post("/tasks/create", h.Create)
	r.Put("/tasks/edit/{id}", h.Edit)
	r.Put("/tasks/complete/{id}", h.Complete)
	r.Put("/tasks/archive/{id}", h.Archive)
	r.Delete("/tasks/delete/{id}", h.Delete)
	return r
}

func TestTaskHandlerCreate(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		svc := &stubTaskService{
			createTaskFn: func(ctx context.Context, title, description string, userID int64) (*domain.Task, error) {
				return &domain.Task{ID: 7, Title: title, Description: description, UserID: userID}, nil
			},
		}

		body := `{"title":"Groceries","description":"Buy milk","userId":1}`
		req := httptest.NewRequest(http.MethodPost, "/tasks/create", strings.NewReader(body))
		rr := httptest.NewRecorder()
		taskRouter(svc).ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)

		var resp TaskResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, int64(7), resp.ID)
		assert.Equal(t, int64(1), resp.UserID)
		assert.False(t, resp.IsCompleted)
		assert.False(t, resp.IsArchived)
	})

	t.Run("owner does not exist", func(t *testing.T) {
		t.Parallel()

		svc := &stubTaskService{
			createTaskFn: func(ctx context.Context, title, description string, userID int64) (*domain.Task, error) {
				return nil, store.ErrUserNotFound
			},
		}

		body := `{"title":"Groceries","description":"Buy milk","userId":99}`
		req := httptest.NewRequest(http.MethodPost, "/tasks/create", strings.NewReader(body))
		rr := httptest.NewRecorder()
		taskRouter(svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "User not found")
	})

	t.Run("title too long", func(t *testing.T) {
		t.Parallel()

		body := `{"title":"` + strings.Repeat("a", 31) + `","description":"Buy milk","userId":1}`
		req := httptest.NewRequest(http.MethodPost, "/tasks/create", strings.NewReader(body))
		rr := httptest.NewRecorder()
		taskRouter(&stubTaskService{}).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing owner", func(t *testing.T) {
		t.Parallel()

		body := `{"title":"Groceries","description":"Buy milk"}`
		req := httptest.NewRequest(http.MethodPost, "/tasks/create", strings.NewReader(body))
		rr := httptest.NewRecorder()
		taskRouter(&stubTaskService{}).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestTaskHandlerListByUser(t *testing.T) {
	t.Parallel()

	t.Run("filters and order forwarded", func(t *testing.T) {
		t.Parallel()

		var gotUserID int64
		var gotFilter store.TaskFilter
		svc := &stubTaskService{
			listUserTasksFn: func(ctx context.Context, userID int64, filter store.TaskFilter) ([]domain.Task, error) {
				gotUserID = userID
				gotFilter = filter
				return []domain.Task{{ID: 7, Title: "Groceries", UserID: userID}}, nil
			},
		}

		req := httptest.NewRequest(
			http.MethodGet,
			"/tasks/user/1?archived=false&completed=true&order=desc",
			nil,
		)
		rr := httptest.NewRecorder()
		taskRouter(svc).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, int64(1), gotUserID)

		require.NotNil(t, gotFilter.Archived)
		assert.False(t, *gotFilter.Archived)
		require.NotNil(t, gotFilter.Completed)
		assert.True(t, *gotFilter.Completed)
		assert.Equal(t, store.TaskOrderDesc, gotFilter.Order)
	})

	t.Run("absent parameters mean no filtering", func(t *testing.T) {
		t.Parallel()

		var gotFilter store.TaskFilter
		svc := &stubTaskService{
			listUserTasksFn: func(ctx context.Context, userID int64, filter store.TaskFilter) ([]domain.Task, error) {
				gotFilter = filter
				return nil, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/tasks/user/1", nil)
		rr := httptest.NewRecorder()
		taskRouter(svc).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Nil(t, gotFilter.Archived)
		assert.Nil(t, gotFilter.Completed)
		assert.Equal(t, store.TaskOrderAsc, gotFilter.Order)
	})

	t.Run("invalid boolean parameter", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/tasks/user/1?archived=maybe", nil)
		rr := httptest.NewRecorder()
		taskRouter(&stubTaskService{}).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid order parameter", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/tasks/user/1?order=sideways", nil)
		rr := httptest.NewRecorder()
		taskRouter(&stubTaskService{}).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestTaskHandlerGetByID(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		svc := &stubTaskService{
			getTaskByIDFn: func(ctx context.Context, id int64) (*domain.Task, error) {
				return &domain.Task{ID: id, Title: "Groceries", UserID: 1}, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/tasks/7", nil)
		rr := httptest.NewRecorder()
		taskRouter(svc).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp TaskResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, int64(7), resp.ID)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		svc := &stubTaskService{
			getTaskByIDFn: func(ctx context.Context, id int64) (*domain.Task, error) {
				return nil, store.ErrTaskNotFound
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/tasks/99", nil)
		rr := httptest.NewRecorder()
		taskRouter(svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "Task not found")
	})
}

func TestTaskHandlerEdit(t *testing.T) {
	t.Parallel()

	var gotUpdate store.TaskUpdate
	svc := &stubTaskService{
		editTaskFn: func(ctx context.Context, id int64, update store.TaskUpdate) (*domain.Task, error) {
			gotUpdate = update
			return &domain.Task{ID: id, Title: "Errands", Description: "Buy milk", UserID: 1}, nil
		},
	}

	body := `{"title":"Errands"}`
	req := httptest.NewRequest(http.MethodPut, "/tasks/edit/7", strings.NewReader(body))
	rr := httptest.NewRecorder()
	taskRouter(svc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	require.NotNil(t, gotUpdate.Title)
	assert.Equal(t, "Errands", *gotUpdate.Title)
	assert.Nil(t, gotUpdate.Description)

	var resp TaskResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Errands", resp.Title)
}

func TestTaskHandlerToggles(t *testing.T) {
	t.Parallel()

	t.Run("complete", func(t *testing.T) {
		t.Parallel()

		svc := &stubTaskService{
			toggleCompleteTaskFn: func(ctx context.Context, id int64) (*domain.Task, error) {
				return &domain.Task{ID: id, Title: "Groceries", IsCompleted: true, UserID: 1}, nil
			},
		}

		req := httptest.NewRequest(http.MethodPut, "/tasks/complete/7", nil)
		rr := httptest.NewRecorder()
		taskRouter(svc).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp TaskResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.IsCompleted)
	})

	t.Run("archive", func(t *testing.T) {
		t.Parallel()

		svc := &stubTaskService{
			toggleArchiveTaskFn: func(ctx context.Context, id int64) (*domain.Task, error) {
				return &domain.Task{ID: id, Title: "Groceries", IsArchived: true, UserID: 1}, nil
			},
		}

		req := httptest.NewRequest(http.MethodPut, "/tasks/archive/7", nil)
		rr := httptest.NewRecorder()
		taskRouter(svc).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp TaskResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.IsArchived)
	})
}

func TestTaskHandlerDelete(t *testing.T) {
	t.Parallel()

	t.Run("success responds with true", func(t *testing.T) {
		t.Parallel()

		svc := &stubTaskService{
			deleteTaskFn: func(ctx context.Context, id int64) error { return nil },
		}

		req := httptest.NewRequest(http.MethodDelete, "/tasks/delete/7", nil)
		rr := httptest.NewRecorder()
		taskRouter(svc).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "true", strings.TrimSpace(rr.Body.String()))
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		svc := &stubTaskService{
			deleteTaskFn: func(ctx context.Context, id int64) error { return store.ErrTaskNotFound },
		}

		req := httptest.NewRequest(http.MethodDelete, "/tasks/delete/99", nil)
		rr := httptest.NewRecorder()
		taskRouter(svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestTaskHandlerList(t *testing.T) {
	t.Parallel()

	svc := &stubTaskService{
		listAllTasksFn: func(ctx context.Context) ([]domain.Task, error) {
			return []domain.Task{
				{ID: 1, Title: "Groceries", UserID: 1},
				{ID: 2, Title: "Laundry", UserID: 2},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/tasks/", nil)
	rr := httptest.NewRecorder()
	taskRouter(svc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp []TaskResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}
