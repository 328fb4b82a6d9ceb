package service

import (
	"context"

	"github.com/SergeyBogomolovv/food-donation-service/internal/cart"
	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
	"github.com/SergeyBogomolovv/food-donation-service/internal/gateway"
)

type DonationPlatform interface {
	CreateDonation(ctx context.Context, d entities.NewDonation) (entities.Donation, error)
	ListAvailableDonations(ctx context.Context) ([]entities.Donation, error)
	ListDonorDonations(ctx context.Context, donorID string) ([]entities.Donation, error)
	GetDonation(ctx context.Context, id string) (entities.Donation, error)
	AssignDonationToNGO(ctx context.Context, donationID, ngoID string) (entities.Donation, error)
	MarkDonationPickedUp(ctx context.Context, donationID string) (entities.Donation, error)
	MarkDonationDelivered(ctx context.Context, donationID string) (entities.Donation, error)
}

type OrderPlatform interface {
	CreateOrder(ctx context.Context, draft entities.OrderDraft) (gateway.OrderReceipt, error)
	ListNGOOrders(ctx context.Context, ngoID string) ([]entities.Order, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
}

type AuthPlatform interface {
	Login(ctx context.Context, username, password string) (gateway.LoginResult, error)
}

type StatsPlatform interface {
	ImpactStats(ctx context.Context) (entities.ImpactStats, error)
	DashboardStats(ctx context.Context) (entities.DashboardStats, error)
}

type CartStore interface {
	Load(ngoID string) (cart.Cart, error)
	Update(ngoID string, fn func(cart.Cart) (cart.Cart, error)) (cart.Cart, error)
	Clear(ngoID string)
}

type SessionStore interface {
	Save(session entities.Session) error
	Get(id string) (entities.Session, error)
	Delete(id string)
}

type AssignmentStore interface {
	Get(id string) (entities.DeliveryAssignment, bool, error)
	Update(base entities.DeliveryAssignment, fn func(entities.DeliveryAssignment) (entities.DeliveryAssignment, error)) (entities.DeliveryAssignment, error)
}

// Journal журнал попыток оформления заказов и смен статусов пожертвований.
type Journal interface {
	SaveSubmission(ctx context.Context, s entities.OrderSubmission) error
	SaveSubmissionItems(ctx context.Context, submissionID string, items []entities.CartLine) error
	ListSubmissions(ctx context.Context, ngoID string, limit int) ([]entities.OrderSubmission, error)
	SaveDonationTransition(ctx context.Context, t entities.DonationTransition) error
}

type EventPublisher interface {
	OrderSubmitted(ctx context.Context, o entities.Order) error
	DonationStatusChanged(ctx context.Context, t entities.DonationTransition) error
	AssignmentChanged(ctx context.Context, a entities.DeliveryAssignment) error
}
