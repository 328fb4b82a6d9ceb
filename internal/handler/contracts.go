package handler

import (
	"context"

	"github.com/SergeyBogomolovv/food-donation-service/internal/cart"
	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (entities.Session, error)
	Logout(ctx context.Context, sessionID string)
}

type StatsService interface {
	Impact(ctx context.Context) (entities.ImpactStats, error)
	Dashboard(ctx context.Context) (entities.DashboardStats, error)
}

type DonorService interface {
	CreateDonation(ctx context.Context, donor entities.User, in entities.NewDonation) (entities.Donation, error)
	ListDonations(ctx context.Context, donor entities.User) ([]entities.Donation, error)
}

type NGOService interface {
	Browse(ctx context.Context) ([]entities.Donation, error)
	Cart(ctx context.Context, ngo entities.User) (cart.Cart, error)
	AddToCart(ctx context.Context, ngo entities.User, donationID string) (cart.Cart, error)
	SetQuantity(ctx context.Context, ngo entities.User, donationID string, quantity int) (cart.Cart, error)
	RemoveFromCart(ctx context.Context, ngo entities.User, donationID string) (cart.Cart, error)
	ClearCart(ctx context.Context, ngo entities.User)
	AcceptDonation(ctx context.Context, ngo entities.User, donationID string) (entities.Donation, error)
	SubmitOrder(ctx context.Context, ngo entities.User, details entities.DeliveryDetails) (entities.Order, error)
	ListOrders(ctx context.Context, ngo entities.User) ([]entities.Order, error)
	ListSubmissions(ctx context.Context, ngo entities.User, limit int) ([]entities.OrderSubmission, error)
}

type VolunteerService interface {
	PickUp(ctx context.Context, volunteer entities.User, donationID string) (entities.Donation, error)
	ConfirmDelivery(ctx context.Context, volunteer entities.User, donationID string) (entities.Donation, error)
	AvailableDeliveries(ctx context.Context, volunteer entities.User) ([]entities.DeliveryAssignment, error)
	AcceptDelivery(ctx context.Context, volunteer entities.User, assignmentID string) (entities.DeliveryAssignment, error)
	CompleteDelivery(ctx context.Context, volunteer entities.User, assignmentID string) (entities.DeliveryAssignment, error)
}
