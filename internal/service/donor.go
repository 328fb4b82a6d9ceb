package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
	"github.com/SergeyBogomolovv/food-donation-service/internal/validation"
	"github.com/go-playground/validator/v10"
)

type donorService struct {
	logger    *slog.Logger
	donations DonationPlatform
	validate  *validator.Validate
	now       func() time.Time
}

func NewDonorService(logger *slog.Logger, donations DonationPlatform) *donorService {
	return &donorService{
		logger:    logger.With(slog.String("service", "donor")),
		donations: donations,
		validate:  validation.New(),
		now:       time.Now,
	}
}

type newDonationInput struct {
	FoodType       string `json:"foodType" validate:"notblank,max=255"`
	Unit           string `json:"unit" validate:"oneof=kg lbs pieces portions liters"`
	PickupLocation string `json:"pickupLocation" validate:"notblank"`
	Description    string `json:"description" validate:"max=2000"`
}

func (s *donorService) CreateDonation(ctx context.Context, donor entities.User, in entities.NewDonation) (entities.Donation, error) {
	if err := s.validateDonation(in); err != nil {
		return entities.Donation{}, err
	}
	in.DonorID = donor.ID

	d, err := s.donations.CreateDonation(ctx, in)
	if err != nil {
		return entities.Donation{}, fmt.Errorf("failed to create donation: %w", err)
	}

	s.logger.InfoContext(ctx, "donation created", slog.String("donation_id", d.ID), slog.String("donor_id", donor.ID))
	return d, nil
}

func (s *donorService) ListDonations(ctx context.Context, donor entities.User) ([]entities.Donation, error) {
	list, err := s.donations.ListDonorDonations(ctx, donor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list donor donations: %w", err)
	}
	return list, nil
}

func (s *donorService) validateDonation(in entities.NewDonation) error {
	err := validation.ToEntity(s.validate.Struct(newDonationInput{
		FoodType:       in.FoodType,
		Unit:           string(in.Unit),
		PickupLocation: in.PickupLocation,
		Description:    in.Description,
	}))

	ve := &entities.ValidationError{Message: "invalid request", Fields: map[string]string{}}
	if err != nil {
		var existing *entities.ValidationError
		if !errors.As(err, &existing) {
			return err
		}
		ve = existing
	}

	if !in.Quantity.IsPositive() {
		ve.Fields["quantity"] = "gt=0"
	}
	// срок годности должен быть строго в будущем
	if !in.ExpiryTime.After(s.now()) {
		ve.Fields["expiryTime"] = "future"
	}

	if len(ve.Fields) > 0 {
		return ve
	}
	return nil
}
