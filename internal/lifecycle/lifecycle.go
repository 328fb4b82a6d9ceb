// Package lifecycle хранит таблицы допустимых переходов статусов
// для пожертвований, заказов и задач доставки.
package lifecycle

import (
	"time"

	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
)

type Kind string

const (
	KindDonation   Kind = "donation"
	KindOrder      Kind = "order"
	KindAssignment Kind = "assignment"
)

type edge struct {
	from, to string
}

var donationEdges = map[edge]entities.Role{
	{string(entities.DonationPending), string(entities.DonationAccepted)}:   entities.RoleNGO,
	{string(entities.DonationAccepted), string(entities.DonationPickedUp)}:  entities.RoleVolunteer,
	{string(entities.DonationPickedUp), string(entities.DonationDelivered)}: entities.RoleVolunteer,
}

var orderEdges = map[edge]struct{}{
	{string(entities.OrderPending), string(entities.OrderConfirmed)}:   {},
	{string(entities.OrderConfirmed), string(entities.OrderInTransit)}: {},
	{string(entities.OrderInTransit), string(entities.OrderDelivered)}: {},

	{string(entities.OrderPending), string(entities.OrderCancelled)}:   {},
	{string(entities.OrderPending), string(entities.OrderRejected)}:    {},
	{string(entities.OrderConfirmed), string(entities.OrderCancelled)}: {},
	{string(entities.OrderConfirmed), string(entities.OrderRejected)}:  {},
	{string(entities.OrderInTransit), string(entities.OrderCancelled)}: {},
	{string(entities.OrderInTransit), string(entities.OrderRejected)}:  {},
}

var assignmentEdges = map[edge]struct{}{
	{string(entities.AssignmentAvailable), string(entities.AssignmentAccepted)}: {},
	{string(entities.AssignmentAccepted), string(entities.AssignmentCompleted)}: {},
}

// CanTransition определена для любых входных строк: неизвестный статус
// или неизвестный вид сущности дают false.
func CanTransition(current, requested string, kind Kind) bool {
	e := edge{current, requested}
	switch kind {
	case KindDonation:
		_, ok := donationEdges[e]
		return ok
	case KindOrder:
		_, ok := orderEdges[e]
		return ok
	case KindAssignment:
		_, ok := assignmentEdges[e]
		return ok
	}
	return false
}

func CanTransitionDonation(from, to entities.DonationStatus) bool {
	return CanTransition(string(from), string(to), KindDonation)
}

func CanTransitionOrder(from, to entities.OrderStatus) bool {
	return CanTransition(string(from), string(to), KindOrder)
}

func CanTransitionAssignment(from, to entities.AssignmentStatus) bool {
	return CanTransition(string(from), string(to), KindAssignment)
}

// CheckDonation проверяет и сам переход, и право роли на него.
func CheckDonation(actor entities.Role, from, to entities.DonationStatus) error {
	want, ok := donationEdges[edge{string(from), string(to)}]
	if !ok || want != actor {
		return &entities.IllegalTransitionError{
			Kind:  string(KindDonation),
			From:  string(from),
			To:    string(to),
			Actor: actor,
		}
	}
	return nil
}

func CheckOrder(from, to entities.OrderStatus) error {
	if !CanTransitionOrder(from, to) {
		return &entities.IllegalTransitionError{Kind: string(KindOrder), From: string(from), To: string(to)}
	}
	return nil
}

func CheckAssignment(from, to entities.AssignmentStatus) error {
	if !CanTransitionAssignment(from, to) {
		return &entities.IllegalTransitionError{Kind: string(KindAssignment), From: string(from), To: string(to)}
	}
	return nil
}

// IsTerminalOrder true для DELIVERED и любого статуса отказа.
func IsTerminalOrder(s entities.OrderStatus) bool {
	return s == entities.OrderDelivered || s.IsFailure()
}

// IsAvailable пожертвование можно заказать, только пока оно PENDING
// и срок годности строго позже now.
func IsAvailable(d entities.Donation, now time.Time) bool {
	return d.Status == entities.DonationPending && d.ExpiryTime.After(now)
}

func FilterAvailable(list []entities.Donation, now time.Time) []entities.Donation {
	res := make([]entities.Donation, 0, len(list))
	for _, d := range list {
		if IsAvailable(d, now) {
			res = append(res, d)
		}
	}
	return res
}
