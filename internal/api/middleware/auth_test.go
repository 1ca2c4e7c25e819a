package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskward/taskward-api/internal/api/middleware"
	"github.com/taskward/taskward-api/internal/mocks"
	"github.com/taskward/taskward-api/internal/service/auth"
)

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	validClaims := &auth.Claims{UserID: 42, Email: "jane@example.com"}

	tests := []struct {
		name        string
		token       string
		validateErr error
		claims      *auth.Claims
		wantStatus  int
		wantBody    string
	}{
		{
			name:       "valid token",
			token:      "valid-token",
			claims:     validClaims,
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing token",
			token:      "",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "User isn't authorized",
		},
		{
			name:        "expired token",
			token:       "expired-token",
			validateErr: auth.ErrExpiredToken,
			wantStatus:  http.StatusUnauthorized,
			wantBody:    "Token has expired",
		},
		{
			name:        "invalid token",
			token:       "garbage",
			validateErr: auth.ErrInvalidToken,
			wantStatus:  http.StatusUnauthorized,
			wantBody:    "Invalid token",
		},
		{
			name:        "token not yet valid",
			token:       "future-token",
			validateErr: auth.ErrTokenNotYetValid,
			wantStatus:  http.StatusUnauthorized,
			wantBody:    "Invalid token",
		},
		{
			name:        "unexpected validation failure",
			token:       "some-token",
			validateErr: context.DeadlineExceeded,
			wantStatus:  http.StatusInternalServerError,
			wantBody:    "Authentication error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			jwtService := &mocks.MockJWTService{
				Claims:      tt.claims,
				ValidateErr: tt.validateErr,
			}
			authMiddleware := middleware.NewAuthMiddleware(jwtService, false)

			var gotUserID int64
			var gotOK bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, gotOK = middleware.GetUserID(r)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/tasks/", nil)
			if tt.token != "" {
				req.Header.Set(middleware.AccessTokenHeader, tt.token)
			}
			rr := httptest.NewRecorder()

			authMiddleware.Authenticate(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rr.Body.String(), tt.wantBody)
			}

			if tt.wantStatus == http.StatusOK {
				require.True(t, gotOK)
				assert.Equal(t, int64(42), gotUserID)
			}
		})
	}
}

func TestAuthenticateSkipVerify(t *testing.T) {
	t.Parallel()

	// With the guard disabled, requests pass through without a token and no
	// identity is attached to the context.
	authMiddleware := middleware.NewAuthMiddleware(&mocks.MockJWTService{}, true)

	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, gotOK = middleware.GetUserID(r)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/tasks/", nil)
	rr := httptest.NewRecorder()

	authMiddleware.Authenticate(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, gotOK)
}
