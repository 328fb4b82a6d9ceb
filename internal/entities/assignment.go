package entities

import "time"

type AssignmentStatus string

const (
	AssignmentAvailable AssignmentStatus = "AVAILABLE"
	AssignmentAccepted  AssignmentStatus = "ACCEPTED"
	AssignmentCompleted AssignmentStatus = "COMPLETED"
)

func (s AssignmentStatus) Valid() bool {
	switch s {
	case AssignmentAvailable, AssignmentAccepted, AssignmentCompleted:
		return true
	}
	return false
}

// DeliveryAssignment задача волонтеру: забрать еду по заказу и доставить NGO.
type DeliveryAssignment struct {
	ID               string
	OrderID          string
	PickupLocations  []string
	DeliveryLocation string
	ScheduledTime    string
	Status           AssignmentStatus
	VolunteerID      string
	UpdatedAt        time.Time
}

func (a *DeliveryAssignment) Marshal() ([]byte, error) {
	return marshal(a)
}

func (a *DeliveryAssignment) Unmarshal(data []byte) error {
	return unmarshal(data, a)
}
