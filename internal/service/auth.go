package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
	"github.com/google/uuid"
)

type authService struct {
	logger   *slog.Logger
	platform AuthPlatform
	sessions SessionStore
	now      func() time.Time
}

func NewAuthService(logger *slog.Logger, platform AuthPlatform, sessions SessionStore) *authService {
	return &authService{
		logger:   logger.With(slog.String("service", "auth")),
		platform: platform,
		sessions: sessions,
		now:      time.Now,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (entities.Session, error) {
	if strings.TrimSpace(username) == "" {
		return entities.Session{}, entities.NewValidationError("username", "notblank")
	}
	if password == "" {
		return entities.Session{}, entities.NewValidationError("password", "required")
	}

	res, err := s.platform.Login(ctx, username, password)
	if err != nil {
		return entities.Session{}, fmt.Errorf("failed to login: %w", err)
	}
	if !res.User.Role.Valid() {
		return entities.Session{}, &entities.ServerError{
			Op:         "Login",
			StatusCode: http.StatusOK,
			Message:    fmt.Sprintf("unknown role %q", res.User.Role),
		}
	}

	session := entities.Session{
		ID:            uuid.NewString(),
		PlatformToken: res.Token,
		User:          res.User,
		IssuedAt:      s.now(),
	}
	if err := s.sessions.Save(session); err != nil {
		return entities.Session{}, err
	}

	s.logger.InfoContext(ctx, "user logged in", slog.String("user_id", res.User.ID), slog.String("role", string(res.User.Role)))
	return session, nil
}

func (s *authService) Authenticate(ctx context.Context, sessionID string) (entities.Session, error) {
	if sessionID == "" {
		return entities.Session{}, entities.ErrUnauthorized
	}
	return s.sessions.Get(sessionID)
}

func (s *authService) Logout(ctx context.Context, sessionID string) {
	s.sessions.Delete(sessionID)
}
