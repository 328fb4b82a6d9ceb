package entities

import "time"

type SubmissionStatus string

const (
	SubmissionSucceeded SubmissionStatus = "SUCCEEDED"
	SubmissionFailed    SubmissionStatus = "FAILED"
)

// OrderSubmission запись журнала о попытке оформить заказ.
type OrderSubmission struct {
	ID                string
	NGOID             string
	OrderID           string
	IDProvisional     bool
	QRCode            string
	QRCodeProvisional bool
	Items             []CartLine
	Delivery          DeliveryDetails
	Status            SubmissionStatus
	Error             string
	CreatedAt         time.Time
}

type DonationTransition struct {
	ID         string
	DonationID string
	From       DonationStatus
	To         DonationStatus
	ActorID    string
	ActorRole  Role
	CreatedAt  time.Time
}
