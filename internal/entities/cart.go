package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine строка корзины NGO. Хранит снимок пожертвования на момент добавления.
type CartLine struct {
	DonationID        string
	FoodType          string
	Unit              Unit
	PickupLocation    string
	DonorName         string
	ExpiryTime        time.Time
	Available         decimal.Decimal
	RequestedQuantity int
}

type CartSnapshot struct {
	NGOID     string
	Lines     []CartLine
	UpdatedAt time.Time
}

func (c *CartSnapshot) Marshal() ([]byte, error) {
	return marshal(c)
}

func (c *CartSnapshot) Unmarshal(data []byte) error {
	return unmarshal(data, c)
}
