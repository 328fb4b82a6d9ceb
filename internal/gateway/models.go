package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
	"github.com/shopspring/decimal"
)

// localLayout формат дат без зоны, который понимает платформа. Время всегда в UTC.
const localLayout = "2006-01-02T15:04:05"

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	localLayout,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// flexID идентификатор платформы: число или строка.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid id %s: %w", b, err)
	}
	*f = flexID(n.String())
	return nil
}

// flexTime дата платформы: ISO-8601 с зоной или без, либо массив
// [год, месяц, день, час, минута, секунда, наносекунда].
type flexTime time.Time

func (f *flexTime) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = flexTime{}
		return nil
	}

	if len(b) > 0 && b[0] == '[' {
		var parts []int
		if err := json.Unmarshal(b, &parts); err != nil {
			return err
		}
		if len(parts) < 3 {
			return fmt.Errorf("invalid time %s", b)
		}
		for len(parts) < 7 {
			parts = append(parts, 0)
		}
		*f = flexTime(time.Date(parts[0], time.Month(parts[1]), parts[2], parts[3], parts[4], parts[5], parts[6], time.UTC))
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*f = flexTime{}
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*f = flexTime(t.UTC())
			return nil
		}
	}
	return fmt.Errorf("invalid time %q", s)
}

func (f flexTime) Time() time.Time {
	return time.Time(f)
}

func formatLocal(t time.Time) string {
	return t.UTC().Format(localLayout)
}

// wireID отправляет числовые идентификаторы числом, остальные строкой.
func wireID(id string) any {
	if n, err := strconv.ParseInt(id, 10, 64); err == nil {
		return n
	}
	return id
}

func wireQuantity(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

type donationDTO struct {
	ID                    flexID          `json:"id"`
	DonorID               flexID          `json:"donorId"`
	DonorName             string          `json:"donorName"`
	FoodType              string          `json:"foodType"`
	Quantity              decimal.Decimal `json:"quantity"`
	Unit                  string          `json:"unit"`
	ExpiryTime            flexTime        `json:"expiryTime"`
	PickupLocation        string          `json:"pickupLocation"`
	Description           string          `json:"description"`
	Status                string          `json:"status"`
	CreatedAt             flexTime        `json:"createdAt"`
	AssignedNgoName       string          `json:"assignedNgoName"`
	AssignedVolunteerName string          `json:"assignedVolunteerName"`
}

func (d donationDTO) toEntity() entities.Donation {
	return entities.Donation{
		ID:                    string(d.ID),
		DonorID:               string(d.DonorID),
		DonorName:             d.DonorName,
		FoodType:              d.FoodType,
		Description:           d.Description,
		Quantity:              d.Quantity,
		Unit:                  entities.Unit(d.Unit),
		ExpiryTime:            d.ExpiryTime.Time(),
		PickupLocation:        d.PickupLocation,
		Status:                entities.DonationStatus(d.Status),
		CreatedAt:             d.CreatedAt.Time(),
		AssignedNGOName:       d.AssignedNgoName,
		AssignedVolunteerName: d.AssignedVolunteerName,
	}
}

func donationsToEntities(list []donationDTO) []entities.Donation {
	res := make([]entities.Donation, 0, len(list))
	for _, d := range list {
		res = append(res, d.toEntity())
	}
	return res
}

type createDonationRequest struct {
	DonorID        any         `json:"donorId"`
	FoodType       string      `json:"foodType"`
	Quantity       json.Number `json:"quantity"`
	Unit           string      `json:"unit"`
	ExpiryTime     string      `json:"expiryTime"`
	PickupLocation string      `json:"pickupLocation"`
	Description    string      `json:"description,omitempty"`
}

func newCreateDonationRequest(d entities.NewDonation) createDonationRequest {
	return createDonationRequest{
		DonorID:        wireID(d.DonorID),
		FoodType:       d.FoodType,
		Quantity:       wireQuantity(d.Quantity),
		Unit:           string(d.Unit),
		ExpiryTime:     formatLocal(d.ExpiryTime),
		PickupLocation: d.PickupLocation,
		Description:    d.Description,
	}
}

type orderItemRequest struct {
	ID                any         `json:"id"`
	FoodType          string      `json:"foodType"`
	RequestedQuantity int         `json:"requestedQuantity"`
	Unit              string      `json:"unit"`
	Quantity          json.Number `json:"quantity"`
	PickupLocation    string      `json:"pickupLocation"`
	DonorName         string      `json:"donorName,omitempty"`
	ExpiryTime        string      `json:"expiryTime,omitempty"`
}

type deliveryDetailsDTO struct {
	DeliveryLocation    string `json:"deliveryLocation"`
	DeliveryDate        string `json:"deliveryDate"`
	DeliveryTime        string `json:"deliveryTime"`
	SpecialInstructions string `json:"specialInstructions"`
}

type createOrderRequest struct {
	NGOID           any                `json:"ngoId"`
	Items           []orderItemRequest `json:"items"`
	DeliveryDetails deliveryDetailsDTO `json:"deliveryDetails"`
	OrderDate       string             `json:"orderDate"`
}

func newCreateOrderRequest(d entities.OrderDraft) createOrderRequest {
	items := make([]orderItemRequest, 0, len(d.Items))
	for _, l := range d.Items {
		it := orderItemRequest{
			ID:                wireID(l.DonationID),
			FoodType:          l.FoodType,
			RequestedQuantity: l.RequestedQuantity,
			Unit:              string(l.Unit),
			Quantity:          wireQuantity(l.Available),
			PickupLocation:    l.PickupLocation,
			DonorName:         l.DonorName,
		}
		if !l.ExpiryTime.IsZero() {
			it.ExpiryTime = formatLocal(l.ExpiryTime)
		}
		items = append(items, it)
	}

	return createOrderRequest{
		NGOID: wireID(d.NGOID),
		Items: items,
		DeliveryDetails: deliveryDetailsDTO{
			DeliveryLocation:    d.Delivery.DeliveryLocation,
			DeliveryDate:        d.Delivery.DeliveryDate,
			DeliveryTime:        d.Delivery.DeliveryTime,
			SpecialInstructions: d.Delivery.SpecialInstructions,
		},
		OrderDate: d.OrderDate.UTC().Format(time.RFC3339),
	}
}

// OrderReceipt ответ платформы на создание заказа. OrderID и QRCode
// могут быть пустыми.
type OrderReceipt struct {
	OrderID string
	QRCode  string
	Status  string
	Message string
}

type createOrderResponse struct {
	OrderID flexID `json:"orderId"`
	QRCode  string `json:"qrCode"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type orderItemDTO struct {
	ID                flexID          `json:"id"`
	Donation          *donationDTO    `json:"donation"`
	RequestedQuantity decimal.Decimal `json:"requestedQuantity"`
	Unit              string          `json:"unit"`
}

type orderDTO struct {
	ID                  flexID         `json:"id"`
	OrderID             string         `json:"orderId"`
	NGOID               flexID         `json:"ngoId"`
	DeliveryLocation    string         `json:"deliveryLocation"`
	DeliveryDate        flexTime       `json:"deliveryDate"`
	DeliveryTime        string         `json:"deliveryTime"`
	SpecialInstructions string         `json:"specialInstructions"`
	QRCode              string         `json:"qrCode"`
	Status              string         `json:"status"`
	CreatedAt           flexTime       `json:"createdAt"`
	OrderItems          []orderItemDTO `json:"orderItems"`
}

func (o orderDTO) toEntity() entities.Order {
	id := o.OrderID
	if id == "" {
		id = string(o.ID)
	}

	var date string
	if t := o.DeliveryDate.Time(); !t.IsZero() {
		date = t.Format(time.DateOnly)
	}

	items := make([]entities.CartLine, 0, len(o.OrderItems))
	for _, it := range o.OrderItems {
		line := entities.CartLine{
			Unit:              entities.Unit(it.Unit),
			RequestedQuantity: int(it.RequestedQuantity.IntPart()),
		}
		if it.Donation != nil {
			line.DonationID = string(it.Donation.ID)
			line.FoodType = it.Donation.FoodType
			line.PickupLocation = it.Donation.PickupLocation
			line.DonorName = it.Donation.DonorName
			line.ExpiryTime = it.Donation.ExpiryTime.Time()
			line.Available = it.Donation.Quantity
		}
		items = append(items, line)
	}

	return entities.Order{
		ID:    id,
		NGOID: string(o.NGOID),
		Items: items,
		Delivery: entities.DeliveryDetails{
			DeliveryLocation:    o.DeliveryLocation,
			DeliveryDate:        date,
			DeliveryTime:        o.DeliveryTime,
			SpecialInstructions: o.SpecialInstructions,
		},
		QRCode:    o.QRCode,
		CreatedAt: o.CreatedAt.Time(),
		Status:    entities.OrderStatus(o.Status),
	}
}

func ordersToEntities(list []orderDTO) []entities.Order {
	res := make([]entities.Order, 0, len(list))
	for _, o := range list {
		res = append(res, o.toEntity())
	}
	return res
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userDTO struct {
	ID       flexID `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Points   int    `json:"points"`
	Token    string `json:"token"`
}

type loginResponse struct {
	Message string  `json:"message"`
	User    userDTO `json:"user"`
	Token   string  `json:"token"`
}

// LoginResult пользователь и токен платформы (если платформа его выдает).
type LoginResult struct {
	User  entities.User
	Token string
}

type dashboardDTO struct {
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

func (d dashboardDTO) toEntity() entities.DashboardStats {
	return entities.DashboardStats{
		TotalDonors:        d.TotalDonors,
		TotalNGOs:          d.TotalNGOs,
		TotalVolunteers:    d.TotalVolunteers,
		TotalDonations:     d.TotalDonations,
		PendingDonations:   d.PendingDonations,
		DeliveredDonations: d.DeliveredDonations,
		TotalFoodSaved:     d.TotalFoodSaved,
		TotalRequests:      d.TotalRequests,
		OpenRequests:       d.OpenRequests,
		FulfilledRequests:  d.FulfilledRequests,
		TotalPeopleServed:  d.TotalPeopleServed,
	}
}

type impactDTO struct {
	FoodSavedKg          float64 `json:"foodSavedKg"`
	MealsProvided        int64   `json:"mealsProvided"`
	PeopleServed         int64   `json:"peopleServed"`
	SuccessfulDeliveries int64   `json:"successfulDeliveries"`
	CO2Saved             int64   `json:"co2Saved"`
}
