package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskward/taskward-api/internal/domain"
	"github.com/taskward/taskward-api/internal/service"
	"github.com/taskward/taskward-api/internal/service/auth"
	"github.com/taskward/taskward-api/internal/store"
)

func userRouter(svc service.UserService) http.Handler {
	h := NewUserHandler(svc, testLogger())

	r := chi.NewRouter()
	r.Get("/users/", h.List)
	r.Get("/users/email/{email}", h.GetByEmail)
	r.Get("/users/{userId}", h.GetByID)
	r.Post("/users/create", h.Create)
	r.Post("/users/login", h.Login)
	r.Put("/users/edit/{userId}", h.Edit)
	r.Put("/users/password-change/{userId}", h.ChangePassword)
	r.Delete("/users/delete/{userId}", h.Delete)
	return r
}

func TestUserHandlerCreate(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		svc := &stubUserService{
			createUserFn: func(ctx context.Context, name, lastname, email, password string) (*domain.User, error) {
				return &domain.User{ID: 1, Name: name, Lastname: lastname, Email: email}, nil
			},
		}

		body := `{"name":"Jane","lastname":"Doe","email":"jane@example.com","password":"Str0ng!pass"}`
		req := httptest.NewRequest(http.MethodPost, "/users/create", strings.NewReader(body))
		rr := httptest.NewRecorder()
		userRouter(svc).ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)

		var resp UserResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "jane@example.com", resp.Email)

		// The password hash must never appear in a response body.
		assert.NotContains(t, rr.Body.String(), "password")
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/users/create", strings.NewReader("{not json"))
		rr := httptest.NewRecorder()
		userRouter(&stubUserService{}).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing email", func(t *testing.T) {
		t.Parallel()

		body := `{"name":"Jane","lastname":"Doe","password":"Str0ng!pass"}`
		req := httptest.NewRequest(http.MethodPost, "/users/create", strings.NewReader(body))
		rr := httptest.NewRecorder()
		userRouter(&stubUserService{}).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Email")
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()

		svc := &stubUserService{
			createUserFn: func(ctx context.Context, name, lastname, email, password string) (*domain.User, error) {
				return nil, store.ErrEmailExists
			},
		}

		body := `{"name":"Jane","lastname":"Doe","email":"jane@example.com","password":"Str0ng!pass"}`
		req := httptest.NewRequest(http.MethodPost, "/users/create", strings.NewReader(body))
		rr := httptest.NewRecorder()
		userRouter(svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Contains(t, rr.Body.String(), "User email already exists")
	})
}

func TestUserHandlerLogin(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		svc := &stubUserService{
			loginFn: func(ctx context.Context, email, password string) (*domain.User, string, error) {
				return &domain.User{ID: 42, Email: email}, "signed-token", nil
			},
		}

		body := `{"email":"jane@example.com","password":"Str0ng!pass"}`
		req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(body))
		rr := httptest.NewRecorder()
		userRouter(svc).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp AuthResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, int64(42), resp.UserID)
		assert.Equal(t, "signed-token", resp.Token)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		t.Parallel()

		svc := &stubUserService{
			loginFn: func(ctx context.Context, email, password string) (*domain.User, string, error) {
				return nil, "", auth.ErrWrongCredentials
			},
		}

		body := `{"email":"jane@example.com","password":"wrong"}`
		req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(body))
		rr := httptest.NewRecorder()
		userRouter(svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Wrong credentials")
	})
}

func TestUserHandlerGetByID(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		svc := &stubUserService{
			getUserByIDFn: func(ctx context.Context, id int64) (*domain.User, error) {
				return &domain.User{ID: id, Name: "Jane", Email: "jane@example.com"}, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/users/42", nil)
		rr := httptest.NewRecorder()
		userRouter(svc).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp UserResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, int64(42), resp.ID)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		svc := &stubUserService{
			getUserByIDFn: func(ctx context.Context, id int64) (*domain.User, error) {
				return nil, store.ErrUserNotFound
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/users/99", nil)
		rr := httptest.NewRecorder()
		userRouter(svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "User not found")
	})

	t.Run("non-numeric id", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/users/abc", nil)
		rr := httptest.NewRecorder()
		userRouter(&stubUserService{}).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUserHandlerGetByEmail(t *testing.T) {
	t.Parallel()

	svc := &stubUserService{
		getUserByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 1, Email: email}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/users/email/jane@example.com", nil)
	rr := httptest.NewRecorder()
	userRouter(svc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp UserResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "jane@example.com", resp.Email)
}

func TestUserHandlerEdit(t *testing.T) {
	t.Parallel()

	t.Run("partial update", func(t *testing.T) {
		t.Parallel()

		var gotUpdate store.UserUpdate
		svc := &stubUserService{
			editUserFn: func(ctx context.Context, id int64, update store.UserUpdate) (*domain.User, error) {
				gotUpdate = update
				return &domain.User{ID: id, Name: "Janet", Lastname: "Doe", Email: "jane@example.com"}, nil
			},
		}

		body := `{"name":"Janet"}`
		req := httptest.NewRequest(http.MethodPut, "/users/edit/1", strings.NewReader(body))
		rr := httptest.NewRecorder()
		userRouter(svc).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		require.NotNil(t, gotUpdate.Name)
		assert.Equal(t, "Janet", *gotUpdate.Name)
		assert.Nil(t, gotUpdate.Lastname)
		assert.Nil(t, gotUpdate.Email)

		var resp EditUserResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Janet", resp.Name)
	})

	t.Run("invalid email update", func(t *testing.T) {
		t.Parallel()

		body := `{"email":"not-an-email"}`
		req := httptest.NewRequest(http.MethodPut, "/users/edit/1", strings.NewReader(body))
		rr := httptest.NewRecorder()
		userRouter(&stubUserService{}).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUserHandlerChangePassword(t *testing.T) {
	t.Parallel()

	t.Run("success responds with true", func(t *testing.T) {
		t.Parallel()

		svc := &stubUserService{
			changePasswordFn: func(ctx context.Context, id int64, currentPassword, newPassword string) error {
				return nil
			},
		}

		body := `{"currentPassword":"Old1!pass","newPassword":"New1!pass"}`
		req := httptest.NewRequest(http.MethodPut, "/users/password-change/1", strings.NewReader(body))
		rr := httptest.NewRecorder()
		userRouter(svc).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "true", strings.TrimSpace(rr.Body.String()))
	})

	t.Run("current password incorrect", func(t *testing.T) {
		t.Parallel()

		svc := &stubUserService{
			changePasswordFn: func(ctx context.Context, id int64, currentPassword, newPassword string) error {
				return service.ErrCurrentPasswordIncorrect
			},
		}

		body := `{"currentPassword":"wrong","newPassword":"New1!pass"}`
		req := httptest.NewRequest(http.MethodPut, "/users/password-change/1", strings.NewReader(body))
		rr := httptest.NewRecorder()
		userRouter(svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Current password is incorrect")
	})

	t.Run("same password", func(t *testing.T) {
		t.Parallel()

		svc := &stubUserService{
			changePasswordFn: func(ctx context.Context, id int64, currentPassword, newPassword string) error {
				return fmt.Errorf("%w: %w", store.ErrInvalidEntity, service.ErrSamePassword)
			},
		}

		body := `{"currentPassword":"Same1!pass","newPassword":"Same1!pass"}`
		req := httptest.NewRequest(http.MethodPut, "/users/password-change/1", strings.NewReader(body))
		rr := httptest.NewRecorder()
		userRouter(svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "same as the current password")
	})
}

func TestUserHandlerDelete(t *testing.T) {
	t.Parallel()

	t.Run("success responds with true", func(t *testing.T) {
		t.Parallel()

		svc := &stubUserService{
			deleteUserFn: func(ctx context.Context, id int64) error { return nil },
		}

		req := httptest.NewRequest(http.MethodDelete, "/users/delete/1", nil)
		rr := httptest.NewRecorder()
		userRouter(svc).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "true", strings.TrimSpace(rr.Body.String()))
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		svc := &stubUserService{
			deleteUserFn: func(ctx context.Context, id int64) error { return store.ErrUserNotFound },
		}

		req := httptest.NewRequest(http.MethodDelete, "/users/delete/99", nil)
		rr := httptest.NewRecorder()
		userRouter(svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestUserHandlerList(t *testing.T) {
	t.Parallel()

	svc := &stubUserService{
		listUsersFn: func(ctx context.Context) ([]domain.User, error) {
			return []domain.User{
				{ID: 1, Name: "Jane", Email: "jane@example.com"},
				{ID: 2, Name: "John", Email: "john@example.com"},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/users/", nil)
	rr := httptest.NewRecorder()
	userRouter(svc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp []UserResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}
