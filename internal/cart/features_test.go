package cart_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/food-donation-service/internal/cart"
	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
	"github.com/SergeyBogomolovv/food-donation-service/internal/lifecycle"
	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"
)

type cartTestContext struct {
	donations map[string]entities.Donation
	cart      cart.Cart
	draft     entities.OrderDraft
	err       error
}

func (c *cartTestContext) reset() {
	c.donations = make(map[string]entities.Donation)
	c.cart = cart.New()
	c.draft = entities.OrderDraft{}
	c.err = nil
}

func (c *cartTestContext) anAvailableDonation(id string, qty int, unit, food string) error {
	c.donations[id] = entities.Donation{
		ID:         id,
		FoodType:   food,
		Quantity:   decimal.NewFromInt(int64(qty)),
		Unit:       entities.Unit(unit),
		Status:     entities.DonationPending,
		ExpiryTime: time.Now().Add(24 * time.Hour),
	}
	return nil
}

func (c *cartTestContext) theNGOAddsDonation(id string) error {
	d, ok := c.donations[id]
	if !ok {
		return fmt.Errorf("unknown donation %q", id)
	}
	next, err := c.cart.AddItem(d)
	if err != nil {
		return err
	}
	c.cart = next
	return nil
}

func (c *cartTestContext) theNGOAddsDonationTimes(id string, times int) error {
	for range times {
		if err := c.theNGOAddsDonation(id); err != nil {
			return err
		}
	}
	return nil
}

func (c *cartTestContext) theNGOSetsQuantity(id string, n int) error {
	c.cart = c.cart.SetQuantity(id, n)
	return nil
}

func (c *cartTestContext) theNGORemovesDonation(id string) error {
	c.cart = c.cart.RemoveItem(id)
	return nil
}

func (c *cartTestContext) theNGOBuildsADraft(location, date, at string) error {
	c.draft, c.err = c.cart.ToOrderDraft("ngo-1", entities.DeliveryDetails{
		DeliveryLocation: location,
		DeliveryDate:     date,
		DeliveryTime:     at,
	}, time.Now())
	return nil
}

func (c *cartTestContext) theCartHasLines(n int) error {
	if c.cart.Len() != n {
		return fmt.Errorf("expected %d lines, got %d", n, c.cart.Len())
	}
	return nil
}

func (c *cartTestContext) theCartIsEmpty() error {
	if !c.cart.IsEmpty() {
		return fmt.Errorf("expected empty cart, got %d lines", c.cart.Len())
	}
	return nil
}

func (c *cartTestContext) theLineRequests(id string, n int) error {
	line, ok := c.cart.Line(id)
	if !ok {
		return fmt.Errorf("no line for %q", id)
	}
	if line.RequestedQuantity != n {
		return fmt.Errorf("expected %d, got %d", n, line.RequestedQuantity)
	}
	return nil
}

func (c *cartTestContext) theDraftFailsWithAValidationError() error {
	var ve *entities.ValidationError
	if !errors.As(c.err, &ve) {
		return fmt.Errorf("expected validation error, got %v", c.err)
	}
	if len(c.draft.Items) != 0 {
		return fmt.Errorf("expected no payload, got %d items", len(c.draft.Items))
	}
	return nil
}

func (c *cartTestContext) theDraftHasItems(n int) error {
	if c.err != nil {
		return c.err
	}
	if len(c.draft.Items) != n {
		return fmt.Errorf("expected %d items, got %d", n, len(c.draft.Items))
	}
	return nil
}

func (c *cartTestContext) theDraftItemRequests(id string, n int) error {
	for _, it := range c.draft.Items {
		if it.DonationID == id {
			if it.RequestedQuantity != n {
				return fmt.Errorf("expected %d, got %d", n, it.RequestedQuantity)
			}
			return nil
		}
	}
	return fmt.Errorf("no draft item %q", id)
}

func (c *cartTestContext) aDonationTransitionIsRefused(from, to string) error {
	if lifecycle.CanTransition(from, to, lifecycle.KindDonation) {
		return fmt.Errorf("transition %s -> %s allowed", from, to)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &cartTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^an available donation "([^"]*)" of (\d+) (\w+) of "([^"]*)"$`, tc.anAvailableDonation)
	ctx.Step(`^the NGO adds donation "([^"]*)" to the cart$`, tc.theNGOAddsDonation)
	ctx.Step(`^the NGO adds donation "([^"]*)" to the cart (\d+) times$`, tc.theNGOAddsDonationTimes)
	ctx.Step(`^the NGO sets the quantity of "([^"]*)" to (-?\d+)$`, tc.theNGOSetsQuantity)
	ctx.Step(`^the NGO removes donation "([^"]*)" from the cart$`, tc.theNGORemovesDonation)
	ctx.Step(`^the NGO builds an order draft for delivery to "([^"]*)" on "([^"]*)" at "([^"]*)"$`, tc.theNGOBuildsADraft)

	ctx.Step(`^the cart has (\d+) lines?$`, tc.theCartHasLines)
	ctx.Step(`^the cart is empty$`, tc.theCartIsEmpty)
	ctx.Step(`^the line for "([^"]*)" requests (\d+)$`, tc.theLineRequests)
	ctx.Step(`^the draft fails with a validation error$`, tc.theDraftFailsWithAValidationError)
	ctx.Step(`^the draft has (\d+) items$`, tc.theDraftHasItems)
	ctx.Step(`^the draft item "([^"]*)" requests (\d+)$`, tc.theDraftItemRequests)
	ctx.Step(`^a donation transition from "([^"]*)" to "([^"]*)" is refused$`, tc.aDonationTransitionIsRefused)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
