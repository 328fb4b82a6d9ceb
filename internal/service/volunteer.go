package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
	"github.com/SergeyBogomolovv/food-donation-service/internal/lifecycle"
)

type volunteerService struct {
	logger      *slog.Logger
	donations   DonationPlatform
	orders      OrderPlatform
	assignments AssignmentStore
	events      EventPublisher
	mover       *donationMover
	now         func() time.Time
}

func NewVolunteerService(
	logger *slog.Logger,
	donations DonationPlatform,
	orders OrderPlatform,
	assignments AssignmentStore,
	journal Journal,
	events EventPublisher,
) *volunteerService {
	logger = logger.With(slog.String("service", "volunteer"))
	s := &volunteerService{
		logger:      logger,
		donations:   donations,
		orders:      orders,
		assignments: assignments,
		events:      events,
		now:         time.Now,
	}
	s.mover = &donationMover{
		logger:    logger,
		donations: donations,
		journal:   journal,
		events:    events,
		now:       func() time.Time { return s.now() },
	}
	return s
}

func (s *volunteerService) PickUp(ctx context.Context, volunteer entities.User, donationID string) (entities.Donation, error) {
	return s.mover.move(ctx, volunteer, donationID, entities.DonationPickedUp, func(ctx context.Context, d entities.Donation) (entities.Donation, error) {
		return s.donations.MarkDonationPickedUp(ctx, d.ID)
	})
}

func (s *volunteerService) ConfirmDelivery(ctx context.Context, volunteer entities.User, donationID string) (entities.Donation, error) {
	return s.mover.move(ctx, volunteer, donationID, entities.DonationDelivered, func(ctx context.Context, d entities.Donation) (entities.Donation, error) {
		return s.donations.MarkDonationDelivered(ctx, d.ID)
	})
}

// AvailableDeliveries свободные задачи и задачи, уже принятые этим волонтером.
//
// Состояние доски хранится только в памяти процесса. Если запись истекла по TTL
// или вытеснена, а заказ на платформе все еще CONFIRMED или IN_TRANSIT, задача
// снова показывается как AVAILABLE, даже если уже была COMPLETED.
func (s *volunteerService) AvailableDeliveries(ctx context.Context, volunteer entities.User) ([]entities.DeliveryAssignment, error) {
	derived, err := s.deriveAssignments(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]entities.DeliveryAssignment, 0, len(derived))
	for _, base := range derived {
		a, ok, err := s.assignments.Get(base.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			a = base
		}

		switch {
		case a.Status == entities.AssignmentAvailable:
			res = append(res, a)
		case a.Status == entities.AssignmentAccepted && a.VolunteerID == volunteer.ID:
			res = append(res, a)
		}
	}
	return res, nil
}

func (s *volunteerService) AcceptDelivery(ctx context.Context, volunteer entities.User, assignmentID string) (entities.DeliveryAssignment, error) {
	derived, err := s.deriveAssignments(ctx)
	if err != nil {
		return entities.DeliveryAssignment{}, err
	}

	var base entities.DeliveryAssignment
	found := false
	for _, a := range derived {
		if a.ID == assignmentID {
			base, found = a, true
			break
		}
	}
	if !found {
		return entities.DeliveryAssignment{}, entities.ErrAssignmentNotFound
	}

	return s.moveAssignment(ctx, base, entities.AssignmentAccepted, func(a entities.DeliveryAssignment) (entities.DeliveryAssignment, error) {
		a.VolunteerID = volunteer.ID
		return a, nil
	})
}

func (s *volunteerService) CompleteDelivery(ctx context.Context, volunteer entities.User, assignmentID string) (entities.DeliveryAssignment, error) {
	current, ok, err := s.assignments.Get(assignmentID)
	if err != nil {
		return entities.DeliveryAssignment{}, err
	}
	if !ok {
		return entities.DeliveryAssignment{}, entities.ErrAssignmentNotFound
	}

	return s.moveAssignment(ctx, current, entities.AssignmentCompleted, func(a entities.DeliveryAssignment) (entities.DeliveryAssignment, error) {
		if a.VolunteerID != volunteer.ID {
			return entities.DeliveryAssignment{}, entities.ErrForbidden
		}
		return a, nil
	})
}

func (s *volunteerService) moveAssignment(
	ctx context.Context,
	base entities.DeliveryAssignment,
	to entities.AssignmentStatus,
	apply func(entities.DeliveryAssignment) (entities.DeliveryAssignment, error),
) (entities.DeliveryAssignment, error) {
	a, err := s.assignments.Update(base, func(a entities.DeliveryAssignment) (entities.DeliveryAssignment, error) {
		if err := lifecycle.CheckAssignment(a.Status, to); err != nil {
			illegalTransitions.WithLabelValues(string(lifecycle.KindAssignment)).Inc()
			return entities.DeliveryAssignment{}, err
		}
		a, err := apply(a)
		if err != nil {
			return entities.DeliveryAssignment{}, err
		}
		a.Status = to
		a.UpdatedAt = s.now()
		return a, nil
	})
	if err != nil {
		return entities.DeliveryAssignment{}, err
	}

	if err := s.events.AssignmentChanged(ctx, a); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish assignment event", slog.String("assignment_id", a.ID), slog.Any("error", err))
	}
	s.logger.InfoContext(ctx, "assignment moved",
		slog.String("assignment_id", a.ID),
		slog.String("status", string(a.Status)),
		slog.String("volunteer_id", a.VolunteerID),
	)
	return a, nil
}

// deriveAssignments задача доставки появляется, когда заказ подтвержден
// и пока он не дошел до терминального статуса.
func (s *volunteerService) deriveAssignments(ctx context.Context) ([]entities.DeliveryAssignment, error) {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	res := make([]entities.DeliveryAssignment, 0, len(orders))
	for _, o := range orders {
		if o.Status != entities.OrderConfirmed && o.Status != entities.OrderInTransit {
			continue
		}
		res = append(res, assignmentFromOrder(o))
	}
	return res, nil
}

func assignmentFromOrder(o entities.Order) entities.DeliveryAssignment {
	seen := make(map[string]struct{}, len(o.Items))
	pickups := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		if it.PickupLocation == "" {
			continue
		}
		if _, ok := seen[it.PickupLocation]; ok {
			continue
		}
		seen[it.PickupLocation] = struct{}{}
		pickups = append(pickups, it.PickupLocation)
	}

	return entities.DeliveryAssignment{
		ID:               o.ID,
		OrderID:          o.ID,
		PickupLocations:  pickups,
		DeliveryLocation: o.Delivery.DeliveryLocation,
		ScheduledTime:    strings.TrimSpace(o.Delivery.DeliveryDate + " " + o.Delivery.DeliveryTime),
		Status:           entities.AssignmentAvailable,
	}
}
