package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/imovia/imovia-api/internal/api/shared"
	"github.com/imovia/imovia-api/internal/domain"
	"github.com/imovia/imovia-api/internal/mocks"
	"github.com/imovia/imovia-api/internal/service/auth"
	"github.com/imovia/imovia-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	const email = "user@example.com"

	tests := []struct {
		name           string
		authHeader     string
		validateErr    error
		claims         *auth.Claims
		userErr        error
		expectedStatus int
		expectPass     bool
	}{
		{
			name:           "valid token with live account",
			authHeader:     "Bearer valid-token",
			claims:         &auth.Claims{UserID: userID, Email: email},
			expectedStatus: http.StatusOK,
			expectPass:     true,
		},
		{
			name:           "missing auth header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid auth format",
			authHeader:     "InvalidFormat",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong scheme",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			authHeader:     "Bearer expired-token",
			validateErr:    auth.ErrExpiredToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			authHeader:     "Bearer invalid-token",
			validateErr:    auth.ErrInvalidToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "token for deleted account",
			authHeader:     "Bearer valid-token",
			claims:         &auth.Claims{UserID: userID, Email: "gone@example.com"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "user store failure",
			authHeader:     "Bearer valid-token",
			claims:         &auth.Claims{UserID: userID, Email: email},
			userErr:        errors.New("connection reset"),
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "token validation infrastructure failure",
			authHeader:     "Bearer valid-token",
			validateErr:    errors.New("keystore unavailable"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			jwtService := &mocks.JWTService{
				ValidateTokenFn: func(ctx context.Context, tokenString string) (*auth.Claims, error) {
					if tt.validateErr != nil {
						return nil, tt.validateErr
					}
					return tt.claims, nil
				},
			}

			users := mocks.NewUserStore()
			users.Users[email] = &domain.User{ID: userID, Email: email}
			if tt.userErr != nil {
				users.GetByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
					return nil, tt.userErr
				}
			}

			middleware := NewAuthMiddleware(jwtService, users)

			var captured shared.Principal
			var passed bool
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				captured, passed = GetPrincipal(r)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Add("Authorization", tt.authHeader)
			}
			recorder := httptest.NewRecorder()

			middleware.Authenticate(nextHandler).ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			assert.Equal(t, tt.expectPass, passed)
			if tt.expectPass {
				assert.Equal(t, userID, captured.UserID)
				assert.Equal(t, email, captured.Email)
			}
		})
	}
}

func TestAuthMiddleware_StaleIdentityNeverReachesHandler(t *testing.T) {
	t.Parallel()

	// A token that verifies cryptographically but names an email with no
	// account behind it must be rejected before the handler runs.
	jwtService := &mocks.JWTService{
		ValidateTokenFn: func(ctx context.Context, tokenString string) (*auth.Claims, error) {
			return &auth.Claims{UserID: uuid.New(), Email: "deleted@example.com"}, nil
		},
	}
	users := mocks.NewUserStore()
	users.GetByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
		return nil, store.ErrUserNotFound
	}

	middleware := NewAuthMiddleware(jwtService, users)

	handlerCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Add("Authorization", "Bearer still-signed-ok")
	recorder := httptest.NewRecorder()

	middleware.Authenticate(next).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, handlerCalled)
}

func TestGetPrincipal(t *testing.T) {
	t.Parallel()

	principal := shared.Principal{UserID: uuid.New(), Email: "user@example.com"}

	t.Run("context with principal", func(t *testing.T) {
		req, err := http.NewRequest("GET", "/", nil)
		require.NoError(t, err)
		req = req.WithContext(shared.WithPrincipal(req.Context(), principal))

		got, ok := GetPrincipal(req)

		assert.True(t, ok)
		assert.Equal(t, principal, got)
	})

	t.Run("context without principal", func(t *testing.T) {
		req, err := http.NewRequest("GET", "/", nil)
		require.NoError(t, err)

		got, ok := GetPrincipal(req)

		assert.False(t, ok)
		assert.Equal(t, shared.Principal{}, got)
	})
}
