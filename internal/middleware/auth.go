package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
	"github.com/SergeyBogomolovv/food-donation-service/internal/gateway"
	"github.com/SergeyBogomolovv/food-donation-service/pkg/utils"
)

type Authenticator interface {
	Authenticate(ctx context.Context, sessionID string) (entities.Session, error)
}

type ctxKey int

const (
	userKey ctxKey = iota
	sessionKey
)

func WithUser(ctx context.Context, u entities.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

func UserFromContext(ctx context.Context) (entities.User, bool) {
	u, ok := ctx.Value(userKey).(entities.User)
	return u, ok
}

func SessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey).(string)
	return id
}

// Auth находит сессию по заголовку Authorization: Bearer <session id>
// и кладет пользователя и токен платформы в контекст запроса.
func Auth(logger *slog.Logger, auth Authenticator) func(next http.Handler) http.Handler {
	logger = logger.With(slog.String("component", "auth"))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			sessionID, ok := bearer(r.Header.Get("Authorization"))
			if !ok {
				utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			session, err := auth.Authenticate(ctx, sessionID)
			if errors.Is(err, entities.ErrUnauthorized) {
				utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if err != nil {
				logger.ErrorContext(ctx, "failed to authenticate", slog.Any("error", err))
				utils.WriteError(w, "internal server error", http.StatusInternalServerError)
				return
			}

			ctx = WithUser(ctx, session.User)
			ctx = context.WithValue(ctx, sessionKey, session.ID)
			if session.PlatformToken != "" {
				ctx = gateway.WithToken(ctx, session.PlatformToken)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequireRole(roles ...entities.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := UserFromContext(r.Context())
			if !ok {
				utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if !slices.Contains(roles, u.Role) {
				utils.WriteError(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearer(header string) (string, bool) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
