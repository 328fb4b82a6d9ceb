package entities

import (
	"time"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderInTransit OrderStatus = "IN_TRANSIT"
	OrderDelivered OrderStatus = "DELIVERED"

	OrderCancelled OrderStatus = "CANCELLED"
	OrderRejected  OrderStatus = "REJECTED"
)

// Valid сообщает, является ли статус одним из известных (включая статусы отказа).
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderInTransit, OrderDelivered, OrderCancelled, OrderRejected:
		return true
	}
	return false
}

// IsFailure true для любого статуса вне основного пути PENDING -> DELIVERED,
// в том числе для неизвестных строк от сервера.
func (s OrderStatus) IsFailure() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderInTransit, OrderDelivered:
		return false
	}
	return true
}

type DeliveryDetails struct {
	DeliveryLocation    string
	DeliveryDate        string
	DeliveryTime        string
	SpecialInstructions string
}

// OrderDraft неизменяемый снимок корзины, готовый к отправке.
type OrderDraft struct {
	NGOID     string
	Items     []CartLine
	Delivery  DeliveryDetails
	OrderDate time.Time
}

type Order struct {
	ID        string
	NGOID     string
	Items     []CartLine
	Delivery  DeliveryDetails
	QRCode    string
	CreatedAt time.Time
	Status    OrderStatus

	// выставляются, когда сервер не вернул идентификатор или QR-код
	// и они были сгенерированы на нашей стороне
	IDProvisional     bool
	QRCodeProvisional bool
}
