package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
	"github.com/SergeyBogomolovv/food-donation-service/internal/gateway"
	"github.com/SergeyBogomolovv/food-donation-service/internal/repo"
	"github.com/SergeyBogomolovv/food-donation-service/internal/service"
	mocks "github.com/SergeyBogomolovv/food-donation-service/internal/service/mocks"
	"github.com/SergeyBogomolovv/food-donation-service/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService(t *testing.T) {
	platform := mocks.NewMockAuthPlatform(t)
	sessions := repo.NewSessionStore(cache.NewLRUCache(10, time.Minute))
	svc := service.NewAuthService(slog.New(slog.NewTextHandler(io.Discard, nil)), platform, sessions)
	ctx := context.Background()

	platform.EXPECT().Login(mock.Anything, "ngo", "secret").
		Return(gateway.LoginResult{User: ngoUser, Token: "platform-token"}, nil).Once()
	platform.EXPECT().Login(mock.Anything, "odd", "secret").
		Return(gateway.LoginResult{User: entities.User{ID: "9", Role: "GUEST"}}, nil).Once()

	session, err := svc.Login(ctx, "ngo", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "platform-token", session.PlatformToken)

	got, err := svc.Authenticate(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, ngoUser, got.User)

	svc.Logout(ctx, session.ID)
	_, err = svc.Authenticate(ctx, session.ID)
	assert.ErrorIs(t, err, entities.ErrUnauthorized)

	_, err = svc.Authenticate(ctx, "")
	assert.ErrorIs(t, err, entities.ErrUnauthorized)

	_, err = svc.Login(ctx, "odd", "secret")
	var serverErr *entities.ServerError
	assert.ErrorAs(t, err, &serverErr)

	_, err = svc.Login(ctx, "  ", "secret")
	var ve *entities.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestStatsService_Impact(t *testing.T) {
	platform := mocks.NewMockStatsPlatform(t)
	platform.EXPECT().ImpactStats(mock.Anything).
		Return(entities.ImpactStats{FoodSavedKg: 12.5, MealsProvided: 40}, nil).Once()

	stats, err := service.NewStatsService(platform).Impact(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(40), stats.MealsProvided)
}

func TestStatsService_Dashboard(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		platform := mocks.NewMockStatsPlatform(t)
		platform.EXPECT().DashboardStats(mock.Anything).
			Return(entities.DashboardStats{TotalDonors: 4, TotalFoodSaved: 80}, nil).Once()

		stats, err := service.NewStatsService(platform).Dashboard(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(4), stats.TotalDonors)
	})

	t.Run("Platform unavailable", func(t *testing.T) {
		platform := mocks.NewMockStatsPlatform(t)
		platform.EXPECT().DashboardStats(mock.Anything).
			Return(entities.DashboardStats{}, &entities.NetworkError{Op: "DashboardStats", Err: context.DeadlineExceeded}).Once()

		_, err := service.NewStatsService(platform).Dashboard(context.Background())
		var ne *entities.NetworkError
		assert.ErrorAs(t, err, &ne)
	})
}
