package middleware_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
	"github.com/SergeyBogomolovv/food-donation-service/internal/gateway"
	"github.com/SergeyBogomolovv/food-donation-service/internal/middleware"
	mocks "github.com/SergeyBogomolovv/food-donation-service/internal/middleware/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuth(t *testing.T) {
	ngo := entities.User{ID: "1", Role: entities.RoleNGO}

	testCases := []struct {
		name         string
		header       string
		path         string
		mockBehavior func(auth *mocks.MockAuthenticator)
		wantStatus   int
	}{
		{
			name:       "no header",
			path:       "/ngo",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic abc",
			path:       "/ngo",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "unknown session",
			header: "Bearer s1",
			path:   "/ngo",
			mockBehavior: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().Authenticate(mock.Anything, "s1").Return(entities.Session{}, entities.ErrUnauthorized).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "store failure",
			header: "Bearer s1",
			path:   "/ngo",
			mockBehavior: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().Authenticate(mock.Anything, "s1").Return(entities.Session{}, errors.New("decode")).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:   "ok",
			header: "Bearer s1",
			path:   "/ngo",
			mockBehavior: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().Authenticate(mock.Anything, "s1").
					Return(entities.Session{ID: "s1", User: ngo, PlatformToken: "tok"}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "wrong role",
			header: "Bearer s1",
			path:   "/donor",
			mockBehavior: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().Authenticate(mock.Anything, "s1").
					Return(entities.Session{ID: "s1", User: ngo}, nil).Once()
			},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			auth := mocks.NewMockAuthenticator(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(auth)
			}
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			r := chi.NewRouter()
			r.Use(middleware.Auth(logger, auth))
			r.With(middleware.RequireRole(entities.RoleNGO)).Get("/ngo", func(w http.ResponseWriter, r *http.Request) {
				u, ok := middleware.UserFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, ngo, u)
				assert.Equal(t, "tok", gateway.TokenFromContext(r.Context()))
				assert.Equal(t, "s1", middleware.SessionIDFromContext(r.Context()))
			})
			r.With(middleware.RequireRole(entities.RoleDonor)).Get("/donor", func(w http.ResponseWriter, r *http.Request) {})

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

func TestRequireRole_NoUser(t *testing.T) {
	h := middleware.RequireRole(entities.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil).WithContext(context.Background()))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
