package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
	"github.com/shopspring/decimal"
)

type Submission struct {
	ID                  string         `db:"id"`
	NGOID               string         `db:"ngo_id"`
	OrderID             sql.NullString `db:"order_id"`
	IDProvisional       bool           `db:"id_provisional"`
	QRCode              sql.NullString `db:"qr_code"`
	QRProvisional       bool           `db:"qr_provisional"`
	DeliveryLocation    string         `db:"delivery_location"`
	DeliveryDate        string         `db:"delivery_date"`
	DeliveryTime        string         `db:"delivery_time"`
	SpecialInstructions sql.NullString `db:"special_instructions"`
	Status              string         `db:"status"`
	Error               sql.NullString `db:"error"`
	CreatedAt           time.Time      `db:"created_at"`
}

type SubmissionItem struct {
	SubmissionID      string          `db:"submission_id"`
	DonationID        string          `db:"donation_id"`
	FoodType          string          `db:"food_type"`
	Unit              string          `db:"unit"`
	PickupLocation    sql.NullString  `db:"pickup_location"`
	Available         decimal.Decimal `db:"available"`
	RequestedQuantity int             `db:"requested_quantity"`
}

func SubmissionToEntity(s Submission, items []SubmissionItem) entities.OrderSubmission {
	lines := make([]entities.CartLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, entities.CartLine{
			DonationID:        it.DonationID,
			FoodType:          it.FoodType,
			Unit:              entities.Unit(it.Unit),
			PickupLocation:    it.PickupLocation.String,
			Available:         it.Available,
			RequestedQuantity: it.RequestedQuantity,
		})
	}

	return entities.OrderSubmission{
		ID:                s.ID,
		NGOID:             s.NGOID,
		OrderID:           s.OrderID.String,
		IDProvisional:     s.IDProvisional,
		QRCode:            s.QRCode.String,
		QRCodeProvisional: s.QRProvisional,
		Items:             lines,
		Delivery: entities.DeliveryDetails{
			DeliveryLocation:    s.DeliveryLocation,
			DeliveryDate:        s.DeliveryDate,
			DeliveryTime:        s.DeliveryTime,
			SpecialInstructions: s.SpecialInstructions.String,
		},
		Status:    entities.SubmissionStatus(s.Status),
		Error:     s.Error.String,
		CreatedAt: s.CreatedAt,
	}
}
