package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
	"github.com/SergeyBogomolovv/food-donation-service/internal/lifecycle"
	"github.com/google/uuid"
)

// donationMover проводит пожертвование через разрешенный переход: читает
// текущий статус с платформы, проверяет его таблицей переходов и только
// после этого вызывает платформу.
type donationMover struct {
	logger    *slog.Logger
	donations DonationPlatform
	journal   Journal
	events    EventPublisher
	now       func() time.Time
}

type moveFunc func(ctx context.Context, d entities.Donation) (entities.Donation, error)

func (m *donationMover) move(ctx context.Context, actor entities.User, donationID string, to entities.DonationStatus, apply moveFunc) (entities.Donation, error) {
	current, err := m.donations.GetDonation(ctx, donationID)
	if err != nil {
		return entities.Donation{}, fmt.Errorf("failed to get donation: %w", err)
	}

	if err := lifecycle.CheckDonation(actor.Role, current.Status, to); err != nil {
		illegalTransitions.WithLabelValues(string(lifecycle.KindDonation)).Inc()
		return entities.Donation{}, err
	}

	updated, err := apply(ctx, current)
	if err != nil {
		return entities.Donation{}, fmt.Errorf("failed to move donation to %s: %w", to, err)
	}
	if updated.Status == "" {
		updated.Status = to
	}

	m.record(ctx, entities.DonationTransition{
		ID:         uuid.NewString(),
		DonationID: current.ID,
		From:       current.Status,
		To:         to,
		ActorID:    actor.ID,
		ActorRole:  actor.Role,
		CreatedAt:  m.now(),
	})
	return updated, nil
}

// record ошибки журнала и публикации не отменяют уже выполненный переход.
func (m *donationMover) record(ctx context.Context, t entities.DonationTransition) {
	err := errors.Join(
		m.journal.SaveDonationTransition(ctx, t),
		m.events.DonationStatusChanged(ctx, t),
	)
	if err != nil {
		m.logger.ErrorContext(ctx, "failed to record donation transition",
			slog.String("donation_id", t.DonationID),
			slog.String("to", string(t.To)),
			slog.Any("error", err),
		)
	}
}
