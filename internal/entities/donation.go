package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Unit string

const (
	UnitKg       Unit = "kg"
	UnitLbs      Unit = "lbs"
	UnitPieces   Unit = "pieces"
	UnitPortions Unit = "portions"
	UnitLiters   Unit = "liters"
)

func (u Unit) Valid() bool {
	switch u {
	case UnitKg, UnitLbs, UnitPieces, UnitPortions, UnitLiters:
		return true
	}
	return false
}

type DonationStatus string

const (
	DonationPending   DonationStatus = "PENDING"
	DonationAccepted  DonationStatus = "ACCEPTED"
	DonationPickedUp  DonationStatus = "PICKED_UP"
	DonationDelivered DonationStatus = "DELIVERED"
)

func (s DonationStatus) Valid() bool {
	switch s {
	case DonationPending, DonationAccepted, DonationPickedUp, DonationDelivered:
		return true
	}
	return false
}

// Donation пожертвование, опубликованное донором.
type Donation struct {
	ID             string
	DonorID        string
	DonorName      string
	FoodType       string
	Description    string
	Quantity       decimal.Decimal
	Unit           Unit
	ExpiryTime     time.Time
	PickupLocation string
	Status         DonationStatus
	CreatedAt      time.Time

	AssignedNGOName       string
	AssignedVolunteerName string
}

// NewDonation данные, которые донор передает при создании пожертвования.
type NewDonation struct {
	DonorID        string
	FoodType       string
	Description    string
	Quantity       decimal.Decimal
	Unit           Unit
	ExpiryTime     time.Time
	PickupLocation string
}

// DashboardStats сводные счетчики платформы для главной страницы.
type DashboardStats struct {
	TotalDonors        int64
	TotalNGOs          int64
	TotalVolunteers    int64
	TotalDonations     int64
	PendingDonations   int64
	DeliveredDonations int64
	TotalFoodSaved     float64
	TotalRequests      int64
	OpenRequests       int64
	FulfilledRequests  int64
	TotalPeopleServed  int64
}

type ImpactStats struct {
	FoodSavedKg          float64
	MealsProvided        int64
	PeopleServed         int64
	SuccessfulDeliveries int64
	CO2Saved             int64
}
