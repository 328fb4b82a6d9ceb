package lifecycle_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
	"github.com/SergeyBogomolovv/food-donation-service/internal/lifecycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	testCases := []struct {
		name     string
		current  string
		next     string
		kind     lifecycle.Kind
		expected bool
	}{
		{"donation pending to accepted", "PENDING", "ACCEPTED", lifecycle.KindDonation, true},
		{"donation accepted to picked up", "ACCEPTED", "PICKED_UP", lifecycle.KindDonation, true},
		{"donation picked up to delivered", "PICKED_UP", "DELIVERED", lifecycle.KindDonation, true},
		{"donation skip pickup", "ACCEPTED", "DELIVERED", lifecycle.KindDonation, false},
		{"donation backwards", "DELIVERED", "PENDING", lifecycle.KindDonation, false},
		{"donation same status", "PENDING", "PENDING", lifecycle.KindDonation, false},
		{"order pending to confirmed", "PENDING", "CONFIRMED", lifecycle.KindOrder, true},
		{"order confirmed to in transit", "CONFIRMED", "IN_TRANSIT", lifecycle.KindOrder, true},
		{"order in transit to delivered", "IN_TRANSIT", "DELIVERED", lifecycle.KindOrder, true},
		{"order skip confirmation", "PENDING", "DELIVERED", lifecycle.KindOrder, false},
		{"order pending cancelled", "PENDING", "CANCELLED", lifecycle.KindOrder, true},
		{"order in transit rejected", "IN_TRANSIT", "REJECTED", lifecycle.KindOrder, true},
		{"order delivered is terminal", "DELIVERED", "CANCELLED", lifecycle.KindOrder, false},
		{"order cancelled is terminal", "CANCELLED", "PENDING", lifecycle.KindOrder, false},
		{"assignment accept", "AVAILABLE", "ACCEPTED", lifecycle.KindAssignment, true},
		{"assignment complete", "ACCEPTED", "COMPLETED", lifecycle.KindAssignment, true},
		{"assignment skip accept", "AVAILABLE", "COMPLETED", lifecycle.KindAssignment, false},
		{"unknown status", "ARCHIVED", "PENDING", lifecycle.KindDonation, false},
		{"unknown requested", "PENDING", "", lifecycle.KindOrder, false},
		{"unknown kind", "PENDING", "ACCEPTED", lifecycle.Kind("invoice"), false},
		{"donation status on order table", "ACCEPTED", "PICKED_UP", lifecycle.KindOrder, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, lifecycle.CanTransition(tc.current, tc.next, tc.kind))
		})
	}
}

func TestCanTransition_AllPairs(t *testing.T) {
	type pair struct{ from, to string }

	testCases := []struct {
		kind     lifecycle.Kind
		statuses []string
		allowed  []pair
	}{
		{
			kind:     lifecycle.KindDonation,
			statuses: []string{"PENDING", "ACCEPTED", "PICKED_UP", "DELIVERED"},
			allowed: []pair{
				{"PENDING", "ACCEPTED"},
				{"ACCEPTED", "PICKED_UP"},
				{"PICKED_UP", "DELIVERED"},
			},
		},
		{
			kind:     lifecycle.KindOrder,
			statuses: []string{"PENDING", "CONFIRMED", "IN_TRANSIT", "DELIVERED", "CANCELLED", "REJECTED"},
			allowed: []pair{
				{"PENDING", "CONFIRMED"},
				{"CONFIRMED", "IN_TRANSIT"},
				{"IN_TRANSIT", "DELIVERED"},
				{"PENDING", "CANCELLED"},
				{"PENDING", "REJECTED"},
				{"CONFIRMED", "CANCELLED"},
				{"CONFIRMED", "REJECTED"},
				{"IN_TRANSIT", "CANCELLED"},
				{"IN_TRANSIT", "REJECTED"},
			},
		},
		{
			kind:     lifecycle.KindAssignment,
			statuses: []string{"AVAILABLE", "ACCEPTED", "COMPLETED"},
			allowed: []pair{
				{"AVAILABLE", "ACCEPTED"},
				{"ACCEPTED", "COMPLETED"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(string(tc.kind), func(t *testing.T) {
			want := make(map[pair]bool, len(tc.allowed))
			for _, p := range tc.allowed {
				want[p] = true
			}

			statuses := append(tc.statuses, "", "ARCHIVED", "pending")
			var got int
			for _, from := range statuses {
				for _, to := range statuses {
					ok := lifecycle.CanTransition(from, to, tc.kind)
					assert.Equal(t, want[pair{from, to}], ok, "%s -> %s", from, to)
					if ok {
						got++
					}
				}
			}
			assert.Equal(t, len(tc.allowed), got)
		})
	}
}

func TestCheckDonation(t *testing.T) {
	testCases := []struct {
		name    string
		actor   entities.Role
		from    entities.DonationStatus
		to      entities.DonationStatus
		wantErr bool
	}{
		{"ngo accepts", entities.RoleNGO, entities.DonationPending, entities.DonationAccepted, false},
		{"volunteer cannot accept", entities.RoleVolunteer, entities.DonationPending, entities.DonationAccepted, true},
		{"volunteer picks up", entities.RoleVolunteer, entities.DonationAccepted, entities.DonationPickedUp, false},
		{"ngo cannot pick up", entities.RoleNGO, entities.DonationAccepted, entities.DonationPickedUp, true},
		{"volunteer delivers", entities.RoleVolunteer, entities.DonationPickedUp, entities.DonationDelivered, false},
		{"volunteer cannot deliver pending", entities.RoleVolunteer, entities.DonationPending, entities.DonationDelivered, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := lifecycle.CheckDonation(tc.actor, tc.from, tc.to)
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			var ite *entities.IllegalTransitionError
			require.ErrorAs(t, err, &ite)
			assert.Equal(t, string(tc.from), ite.From)
			assert.Equal(t, string(tc.to), ite.To)
			assert.Equal(t, tc.actor, ite.Actor)
		})
	}
}

func TestCheckOrderAndAssignment(t *testing.T) {
	assert.NoError(t, lifecycle.CheckOrder(entities.OrderPending, entities.OrderConfirmed))
	assert.Error(t, lifecycle.CheckOrder(entities.OrderDelivered, entities.OrderInTransit))

	assert.NoError(t, lifecycle.CheckAssignment(entities.AssignmentAvailable, entities.AssignmentAccepted))
	var ite *entities.IllegalTransitionError
	require.ErrorAs(t, lifecycle.CheckAssignment(entities.AssignmentCompleted, entities.AssignmentAccepted), &ite)
	assert.Equal(t, "assignment", ite.Kind)
}

func TestIsTerminalOrder(t *testing.T) {
	assert.True(t, lifecycle.IsTerminalOrder(entities.OrderDelivered))
	assert.True(t, lifecycle.IsTerminalOrder(entities.OrderCancelled))
	assert.True(t, lifecycle.IsTerminalOrder(entities.OrderStatus("LOST")))
	assert.False(t, lifecycle.IsTerminalOrder(entities.OrderInTransit))
}

func TestFilterAvailable(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	list := []entities.Donation{
		{ID: "fresh", Status: entities.DonationPending, ExpiryTime: now.Add(time.Hour)},
		{ID: "expires-now", Status: entities.DonationPending, ExpiryTime: now},
		{ID: "expired", Status: entities.DonationPending, ExpiryTime: now.Add(-time.Minute)},
		{ID: "accepted", Status: entities.DonationAccepted, ExpiryTime: now.Add(time.Hour)},
	}

	got := lifecycle.FilterAvailable(list, now)

	require.Len(t, got, 1)
	assert.Equal(t, "fresh", got[0].ID)

	// повторная проверка позже: тот же список, уже ничего не доступно
	assert.Empty(t, lifecycle.FilterAvailable(list, now.Add(2*time.Hour)))
}
