package handler

import (
	"time"

	"github.com/SergeyBogomolovv/food-donation-service/internal/cart"
	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
	"github.com/shopspring/decimal"
)

// Donation пожертвование
type Donation struct {
	ID                    string          `json:"id"`
	DonorID               string          `json:"donorId,omitempty"`
	DonorName             string          `json:"donorName,omitempty"`
	FoodType              string          `json:"foodType"`
	Description           string          `json:"description,omitempty"`
	Quantity              decimal.Decimal `json:"quantity" swaggertype:"string" example:"12.5"`
	Unit                  string          `json:"unit"`
	ExpiryTime            time.Time       `json:"expiryTime"`
	PickupLocation        string          `json:"pickupLocation"`
	Status                string          `json:"status"`
	CreatedAt             *time.Time      `json:"createdAt,omitempty"`
	AssignedNGOName       string          `json:"assignedNgoName,omitempty"`
	AssignedVolunteerName string          `json:"assignedVolunteerName,omitempty"`
}

// CreateDonationRequest данные нового пожертвования
type CreateDonationRequest struct {
	FoodType       string          `json:"foodType"`
	Description    string          `json:"description"`
	Quantity       decimal.Decimal `json:"quantity" swaggertype:"string" example:"12.5"`
	Unit           string          `json:"unit" enums:"kg,lbs,pieces,portions,liters"`
	ExpiryTime     time.Time       `json:"expiryTime"`
	PickupLocation string          `json:"pickupLocation"`
}

// CartLine строка корзины
type CartLine struct {
	DonationID        string          `json:"donationId"`
	FoodType          string          `json:"foodType"`
	Unit              string          `json:"unit"`
	PickupLocation    string          `json:"pickupLocation"`
	DonorName         string          `json:"donorName,omitempty"`
	ExpiryTime        time.Time       `json:"expiryTime"`
	Available         decimal.Decimal `json:"available" swaggertype:"string" example:"3"`
	RequestedQuantity int             `json:"requestedQuantity"`
}

// Cart корзина NGO
type Cart struct {
	Items          []CartLine `json:"items"`
	TotalItems     int        `json:"totalItems"`
	TotalRequested int        `json:"totalRequested"`
}

// AddCartItemRequest добавление пожертвования в корзину
type AddCartItemRequest struct {
	DonationID string `json:"donationId" validate:"required"`
}

// SetQuantityRequest новое количество; 0 и меньше удаляет строку
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// DeliveryDetails детали доставки заказа
type DeliveryDetails struct {
	DeliveryLocation    string `json:"deliveryLocation"`
	DeliveryDate        string `json:"deliveryDate" example:"2026-10-20"`
	DeliveryTime        string `json:"deliveryTime" example:"10:00"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}

// Order заказ NGO
type Order struct {
	ID                string          `json:"id"`
	NGOID             string          `json:"ngoId,omitempty"`
	Items             []CartLine      `json:"items"`
	Delivery          DeliveryDetails `json:"delivery"`
	QRCode            string          `json:"qrCode,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	Status            string          `json:"status"`
	Failed            bool            `json:"failed"`
	IDProvisional     bool            `json:"idProvisional,omitempty"`
	QRCodeProvisional bool            `json:"qrCodeProvisional,omitempty"`
}

// Submission запись журнала отправки заказа
type Submission struct {
	ID                string          `json:"id"`
	OrderID           string          `json:"orderId,omitempty"`
	IDProvisional     bool            `json:"idProvisional,omitempty"`
	QRCode            string          `json:"qrCode,omitempty"`
	QRCodeProvisional bool            `json:"qrCodeProvisional,omitempty"`
	Items             []CartLine      `json:"items"`
	Delivery          DeliveryDetails `json:"delivery"`
	Status            string          `json:"status"`
	Error             string          `json:"error,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// Assignment задача доставки волонтера
type Assignment struct {
	ID               string    `json:"id"`
	OrderID          string    `json:"orderId"`
	PickupLocations  []string  `json:"pickupLocations"`
	DeliveryLocation string    `json:"deliveryLocation"`
	ScheduledTime    string    `json:"scheduledTime"`
	Status           string    `json:"status"`
	VolunteerID      string    `json:"volunteerId,omitempty"`
	UpdatedAt        time.Time `json:"updatedAt,omitzero"`
}

// LoginRequest учетные данные
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// User пользователь платформы
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
	Points   int    `json:"points"`
}

// LoginResponse токен сессии и пользователь
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ImpactStats статистика платформы
type ImpactStats struct {
	FoodSavedKg          float64 `json:"foodSavedKg"`
	MealsProvided        int64   `json:"mealsProvided"`
	PeopleServed         int64   `json:"peopleServed"`
	SuccessfulDeliveries int64   `json:"successfulDeliveries"`
	CO2Saved             int64   `json:"co2Saved"`
}

// DashboardStats сводка платформы
type DashboardStats struct {
	TotalDonors        int64   `json:"totalDonors"`
	TotalNGOs          int64   `json:"totalNgos"`
	TotalVolunteers    int64   `json:"totalVolunteers"`
	TotalDonations     int64   `json:"totalDonations"`
	PendingDonations   int64   `json:"pendingDonations"`
	DeliveredDonations int64   `json:"deliveredDonations"`
	TotalFoodSaved     float64 `json:"totalFoodSaved"`
	TotalRequests      int64   `json:"totalRequests"`
	OpenRequests       int64   `json:"openRequests"`
	FulfilledRequests  int64   `json:"fulfilledRequests"`
	TotalPeopleServed  int64   `json:"totalPeopleServed"`
}

func DonationEntityToJSON(d entities.Donation) Donation {
	res := Donation{
		ID:                    d.ID,
		DonorID:               d.DonorID,
		DonorName:             d.DonorName,
		FoodType:              d.FoodType,
		Description:           d.Description,
		Quantity:              d.Quantity,
		Unit:                  string(d.Unit),
		ExpiryTime:            d.ExpiryTime,
		PickupLocation:        d.PickupLocation,
		Status:                string(d.Status),
		AssignedNGOName:       d.AssignedNGOName,
		AssignedVolunteerName: d.AssignedVolunteerName,
	}
	if !d.CreatedAt.IsZero() {
		res.CreatedAt = &d.CreatedAt
	}
	return res
}

func DonationsEntityToJSON(list []entities.Donation) []Donation {
	res := make([]Donation, 0, len(list))
	for _, d := range list {
		res = append(res, DonationEntityToJSON(d))
	}
	return res
}

func CreateDonationJSONToEntity(in CreateDonationRequest) entities.NewDonation {
	return entities.NewDonation{
		FoodType:       in.FoodType,
		Description:    in.Description,
		Quantity:       in.Quantity,
		Unit:           entities.Unit(in.Unit),
		ExpiryTime:     in.ExpiryTime,
		PickupLocation: in.PickupLocation,
	}
}

func CartLineEntityToJSON(l entities.CartLine) CartLine {
	return CartLine{
		DonationID:        l.DonationID,
		FoodType:          l.FoodType,
		Unit:              string(l.Unit),
		PickupLocation:    l.PickupLocation,
		DonorName:         l.DonorName,
		ExpiryTime:        l.ExpiryTime,
		Available:         l.Available,
		RequestedQuantity: l.RequestedQuantity,
	}
}

func cartLinesToJSON(lines []entities.CartLine) []CartLine {
	res := make([]CartLine, 0, len(lines))
	for _, l := range lines {
		res = append(res, CartLineEntityToJSON(l))
	}
	return res
}

func CartEntityToJSON(c cart.Cart) Cart {
	return Cart{
		Items:          cartLinesToJSON(c.Lines()),
		TotalItems:     c.Len(),
		TotalRequested: c.TotalRequested(),
	}
}

func DeliveryEntityToJSON(d entities.DeliveryDetails) DeliveryDetails {
	return DeliveryDetails{
		DeliveryLocation:    d.DeliveryLocation,
		DeliveryDate:        d.DeliveryDate,
		DeliveryTime:        d.DeliveryTime,
		SpecialInstructions: d.SpecialInstructions,
	}
}

func DeliveryJSONToEntity(d DeliveryDetails) entities.DeliveryDetails {
	return entities.DeliveryDetails{
		DeliveryLocation:    d.DeliveryLocation,
		DeliveryDate:        d.DeliveryDate,
		DeliveryTime:        d.DeliveryTime,
		SpecialInstructions: d.SpecialInstructions,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	return Order{
		ID:                o.ID,
		NGOID:             o.NGOID,
		Items:             cartLinesToJSON(o.Items),
		Delivery:          DeliveryEntityToJSON(o.Delivery),
		QRCode:            o.QRCode,
		CreatedAt:         o.CreatedAt,
		Status:            string(o.Status),
		Failed:            o.Status.IsFailure(),
		IDProvisional:     o.IDProvisional,
		QRCodeProvisional: o.QRCodeProvisional,
	}
}

func OrdersEntityToJSON(list []entities.Order) []Order {
	res := make([]Order, 0, len(list))
	for _, o := range list {
		res = append(res, OrderEntityToJSON(o))
	}
	return res
}

func SubmissionEntityToJSON(s entities.OrderSubmission) Submission {
	return Submission{
		ID:                s.ID,
		OrderID:           s.OrderID,
		IDProvisional:     s.IDProvisional,
		QRCode:            s.QRCode,
		QRCodeProvisional: s.QRCodeProvisional,
		Items:             cartLinesToJSON(s.Items),
		Delivery:          DeliveryEntityToJSON(s.Delivery),
		Status:            string(s.Status),
		Error:             s.Error,
		CreatedAt:         s.CreatedAt,
	}
}

func AssignmentEntityToJSON(a entities.DeliveryAssignment) Assignment {
	pickups := a.PickupLocations
	if pickups == nil {
		pickups = []string{}
	}
	return Assignment{
		ID:               a.ID,
		OrderID:          a.OrderID,
		PickupLocations:  pickups,
		DeliveryLocation: a.DeliveryLocation,
		ScheduledTime:    a.ScheduledTime,
		Status:           string(a.Status),
		VolunteerID:      a.VolunteerID,
		UpdatedAt:        a.UpdatedAt,
	}
}

func UserEntityToJSON(u entities.User) User {
	return User{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
		Role:     string(u.Role),
		Points:   u.Points,
	}
}

func ImpactEntityToJSON(s entities.ImpactStats) ImpactStats {
	return ImpactStats{
		FoodSavedKg:          s.FoodSavedKg,
		MealsProvided:        s.MealsProvided,
		PeopleServed:         s.PeopleServed,
		SuccessfulDeliveries: s.SuccessfulDeliveries,
		CO2Saved:             s.CO2Saved,
	}
}

func DashboardEntityToJSON(s entities.DashboardStats) DashboardStats {
	return DashboardStats{
		TotalDonors:        s.TotalDonors,
		TotalNGOs:          s.TotalNGOs,
		TotalVolunteers:    s.TotalVolunteers,
		TotalDonations:     s.TotalDonations,
		PendingDonations:   s.PendingDonations,
		DeliveredDonations: s.DeliveredDonations,
		TotalFoodSaved:     s.TotalFoodSaved,
		TotalRequests:      s.TotalRequests,
		OpenRequests:       s.OpenRequests,
		FulfilledRequests:  s.FulfilledRequests,
		TotalPeopleServed:  s.TotalPeopleServed,
	}
}
