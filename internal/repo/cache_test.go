package repo_test

import (
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/food-donation-service/internal/cart"
	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
	"github.com/SergeyBogomolovv/food-donation-service/internal/repo"
	"github.com/SergeyBogomolovv/food-donation-service/pkg/cache"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func donation(id string, qty int64) entities.Donation {
	return entities.Donation{
		ID:         id,
		FoodType:   "Rice",
		Quantity:   decimal.NewFromInt(qty),
		Unit:       entities.UnitKg,
		Status:     entities.DonationPending,
		ExpiryTime: time.Now().Add(time.Hour),
	}
}

func TestCartStore(t *testing.T) {
	store := repo.NewCartStore(cache.NewLRUCache(10, time.Minute))

	c, err := store.Load("ngo-1")
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())

	_, err = store.Update("ngo-1", func(c cart.Cart) (cart.Cart, error) {
		return c.AddItem(donation("a", 5))
	})
	require.NoError(t, err)

	c, err = store.Update("ngo-1", func(c cart.Cart) (cart.Cart, error) {
		return c.SetQuantity("a", 4), nil
	})
	require.NoError(t, err)
	line, _ := c.Line("a")
	assert.Equal(t, 4, line.RequestedQuantity)

	// корзины разных NGO независимы
	other, err := store.Load("ngo-2")
	require.NoError(t, err)
	assert.True(t, other.IsEmpty())

	loaded, err := store.Load("ngo-1")
	require.NoError(t, err)
	require.Equal(t, 1, loaded.Len())
	loadedLine, _ := loaded.Line("a")
	assert.Equal(t, 4, loadedLine.RequestedQuantity)
	assert.True(t, loadedLine.Available.Equal(decimal.NewFromInt(5)))

	store.Clear("ngo-1")
	loaded, err = store.Load("ngo-1")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func TestCartStore_FailedUpdateKeepsCart(t *testing.T) {
	store := repo.NewCartStore(cache.NewLRUCache(10, time.Minute))

	_, err := store.Update("ngo-1", func(c cart.Cart) (cart.Cart, error) {
		return c.AddItem(donation("a", 5))
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = store.Update("ngo-1", func(c cart.Cart) (cart.Cart, error) {
		return c.Clear(), boom
	})
	assert.ErrorIs(t, err, boom)

	loaded, err := store.Load("ngo-1")
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Len())
}

func TestSessionStore(t *testing.T) {
	store := repo.NewSessionStore(cache.NewLRUCache(10, time.Minute))

	_, err := store.Get("missing")
	assert.ErrorIs(t, err, entities.ErrUnauthorized)

	session := entities.Session{
		ID:            "s-1",
		PlatformToken: "tok",
		User:          entities.User{ID: "3", Name: "Food Bank", Role: entities.RoleNGO},
		IssuedAt:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Save(session))

	got, err := store.Get("s-1")
	require.NoError(t, err)
	assert.Equal(t, session.User, got.User)
	assert.Equal(t, "tok", got.PlatformToken)

	store.Delete("s-1")
	_, err = store.Get("s-1")
	assert.ErrorIs(t, err, entities.ErrUnauthorized)
}

func TestAssignmentStore(t *testing.T) {
	store := repo.NewAssignmentStore(cache.NewLRUCache(10, time.Minute))

	base := entities.DeliveryAssignment{
		ID:               "ORD-1",
		OrderID:          "ORD-1",
		DeliveryLocation: "Shelter",
		Status:           entities.AssignmentAvailable,
	}

	_, ok, err := store.Get("ORD-1")
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := store.Update(base, func(a entities.DeliveryAssignment) (entities.DeliveryAssignment, error) {
		a.Status = entities.AssignmentAccepted
		a.VolunteerID = "v-1"
		return a, nil
	})
	require.NoError(t, err)
	assert.Equal(t, entities.AssignmentAccepted, got.Status)

	// второй вызов видит сохраненное состояние, а не base
	_, err = store.Update(base, func(a entities.DeliveryAssignment) (entities.DeliveryAssignment, error) {
		assert.Equal(t, entities.AssignmentAccepted, a.Status)
		assert.Equal(t, "v-1", a.VolunteerID)
		return a, nil
	})
	require.NoError(t, err)

	stored, ok, err := store.Get("ORD-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Shelter", stored.DeliveryLocation)
}
