package service

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
)

type statsService struct {
	platform StatsPlatform
}

func NewStatsService(platform StatsPlatform) *statsService {
	return &statsService{platform: platform}
}

func (s *statsService) Impact(ctx context.Context) (entities.ImpactStats, error) {
	stats, err := s.platform.ImpactStats(ctx)
	if err != nil {
		return entities.ImpactStats{}, fmt.Errorf("failed to get impact stats: %w", err)
	}
	return stats, nil
}

func (s *statsService) Dashboard(ctx context.Context) (entities.DashboardStats, error) {
	stats, err := s.platform.DashboardStats(ctx)
	if err != nil {
		return entities.DashboardStats{}, fmt.Errorf("failed to get dashboard stats: %w", err)
	}
	return stats, nil
}
