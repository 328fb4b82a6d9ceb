// Package cart собирает выбор NGO из пожертвований перед оформлением заказа.
//
// Cart неизменяем: каждая операция возвращает новый снимок,
// исходное значение остается прежним.
package cart

import (
	"math"
	"slices"
	"time"

	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
	"github.com/SergeyBogomolovv/food-donation-service/internal/validation"
	"github.com/shopspring/decimal"
)

type Cart struct {
	lines []entities.CartLine
}

func New() Cart {
	return Cart{}
}

// FromLines восстанавливает корзину из сохраненных строк. Количества
// приводятся к допустимому диапазону, строки без остатка отбрасываются.
func FromLines(lines []entities.CartLine) Cart {
	res := make([]entities.CartLine, 0, len(lines))
	for _, l := range lines {
		if l.DonationID == "" || l.RequestedQuantity <= 0 {
			continue
		}
		limit := Cap(l.Available)
		if limit < 1 {
			continue
		}
		l.RequestedQuantity = min(l.RequestedQuantity, limit)
		res = append(res, l)
	}
	return Cart{lines: res}
}

// Cap максимальное целое количество, которое можно запросить из остатка.
func Cap(available decimal.Decimal) int {
	if !available.IsPositive() {
		return 0
	}
	if available.GreaterThanOrEqual(maxCap) {
		return math.MaxInt
	}
	return int(available.Floor().IntPart())
}

var maxCap = decimal.NewFromInt(math.MaxInt)

func (c Cart) Lines() []entities.CartLine {
	return slices.Clone(c.lines)
}

func (c Cart) Len() int {
	return len(c.lines)
}

func (c Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c Cart) Line(donationID string) (entities.CartLine, bool) {
	i := c.index(donationID)
	if i < 0 {
		return entities.CartLine{}, false
	}
	return c.lines[i], true
}

func (c Cart) TotalRequested() int {
	total := 0
	for _, l := range c.lines {
		total += l.RequestedQuantity
	}
	return total
}

// AddItem добавляет единицу пожертвования. Снимок пожертвования в строке
// обновляется переданными данными, после чего количество ограничивается остатком.
func (c Cart) AddItem(d entities.Donation) (Cart, error) {
	if d.ID == "" {
		return c, entities.NewValidationError("donationId", "required")
	}
	limit := Cap(d.Quantity)
	if limit < 1 {
		return c, entities.NewValidationError("quantity", "less than one whole unit available")
	}

	lines := slices.Clone(c.lines)
	if i := c.index(d.ID); i >= 0 {
		line := lineFromDonation(d)
		line.RequestedQuantity = min(lines[i].RequestedQuantity+1, limit)
		lines[i] = line
		return Cart{lines: lines}, nil
	}

	line := lineFromDonation(d)
	line.RequestedQuantity = 1
	return Cart{lines: append(lines, line)}, nil
}

// SetQuantity n <= 0 удаляет строку, большее остатка значение насыщается.
func (c Cart) SetQuantity(donationID string, n int) Cart {
	i := c.index(donationID)
	if i < 0 {
		return c
	}
	if n <= 0 {
		return c.RemoveItem(donationID)
	}

	lines := slices.Clone(c.lines)
	limit := Cap(lines[i].Available)
	if limit < 1 {
		return c.RemoveItem(donationID)
	}
	lines[i].RequestedQuantity = min(n, limit)
	return Cart{lines: lines}
}

func (c Cart) RemoveItem(donationID string) Cart {
	i := c.index(donationID)
	if i < 0 {
		return c
	}
	return Cart{lines: slices.Delete(slices.Clone(c.lines), i, i+1)}
}

func (c Cart) Clear() Cart {
	return Cart{}
}

type draftInput struct {
	NGOID               string `json:"ngoId" validate:"notblank"`
	DeliveryLocation    string `json:"deliveryLocation" validate:"notblank"`
	DeliveryDate        string `json:"deliveryDate" validate:"notblank"`
	DeliveryTime        string `json:"deliveryTime" validate:"notblank"`
	SpecialInstructions string `json:"specialInstructions"`
}

var validate = validation.New()

// ToOrderDraft строки копируются как есть, повторного ограничения нет.
func (c Cart) ToOrderDraft(ngoID string, details entities.DeliveryDetails, orderDate time.Time) (entities.OrderDraft, error) {
	if c.IsEmpty() {
		return entities.OrderDraft{}, entities.NewValidationError("items", "cart is empty")
	}

	in := draftInput{
		NGOID:               ngoID,
		DeliveryLocation:    details.DeliveryLocation,
		DeliveryDate:        details.DeliveryDate,
		DeliveryTime:        details.DeliveryTime,
		SpecialInstructions: details.SpecialInstructions,
	}
	if err := validate.Struct(in); err != nil {
		return entities.OrderDraft{}, validation.ToEntity(err)
	}

	return entities.OrderDraft{
		NGOID:     ngoID,
		Items:     c.Lines(),
		Delivery:  details,
		OrderDate: orderDate,
	}, nil
}

func (c Cart) index(donationID string) int {
	return slices.IndexFunc(c.lines, func(l entities.CartLine) bool {
		return l.DonationID == donationID
	})
}

func lineFromDonation(d entities.Donation) entities.CartLine {
	return entities.CartLine{
		DonationID:     d.ID,
		FoodType:       d.FoodType,
		Unit:           d.Unit,
		PickupLocation: d.PickupLocation,
		DonorName:      d.DonorName,
		ExpiryTime:     d.ExpiryTime,
		Available:      d.Quantity,
	}
}
