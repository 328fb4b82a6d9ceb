package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/food-donation-service/internal/cart"
	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
	"github.com/SergeyBogomolovv/food-donation-service/internal/gateway"
	"github.com/SergeyBogomolovv/food-donation-service/internal/repo"
	"github.com/SergeyBogomolovv/food-donation-service/internal/service"
	mocks "github.com/SergeyBogomolovv/food-donation-service/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/food-donation-service/pkg/trm/mocks"
	"github.com/SergeyBogomolovv/food-donation-service/pkg/cache"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	ngoUser       = entities.User{ID: "ngo-1", Name: "Food Bank", Role: entities.RoleNGO}
	volunteerUser = entities.User{ID: "vol-1", Name: "Alex", Role: entities.RoleVolunteer}
	details       = entities.DeliveryDetails{
		DeliveryLocation: "Shelter 5",
		DeliveryDate:     "2026-10-20",
		DeliveryTime:     "10:00",
	}
)

func pending(id string, qty int64) entities.Donation {
	return entities.Donation{
		ID:             id,
		FoodType:       "Bread",
		Quantity:       decimal.NewFromInt(qty),
		Unit:           entities.UnitPieces,
		PickupLocation: "Bakery " + id,
		Status:         entities.DonationPending,
		ExpiryTime:     time.Now().Add(time.Hour),
	}
}

type ngoDeps struct {
	donations *mocks.MockDonationPlatform
	orders    *mocks.MockOrderPlatform
	journal   *mocks.MockJournal
	events    *mocks.MockEventPublisher
	tx        *txMocks.MockManager
	carts     service.CartStore
}

type ngoAPI interface {
	Browse(ctx context.Context) ([]entities.Donation, error)
	Cart(ctx context.Context, ngo entities.User) (cart.Cart, error)
	AddToCart(ctx context.Context, ngo entities.User, donationID string) (cart.Cart, error)
	SetQuantity(ctx context.Context, ngo entities.User, donationID string, quantity int) (cart.Cart, error)
	RemoveFromCart(ctx context.Context, ngo entities.User, donationID string) (cart.Cart, error)
	ClearCart(ctx context.Context, ngo entities.User)
	AcceptDonation(ctx context.Context, ngo entities.User, donationID string) (entities.Donation, error)
	SubmitOrder(ctx context.Context, ngo entities.User, details entities.DeliveryDetails) (entities.Order, error)
	ListSubmissions(ctx context.Context, ngo entities.User, limit int) ([]entities.OrderSubmission, error)
}

func newNGO(t *testing.T) (ngoDeps, ngoAPI) {
	deps := ngoDeps{
		donations: mocks.NewMockDonationPlatform(t),
		orders:    mocks.NewMockOrderPlatform(t),
		journal:   mocks.NewMockJournal(t),
		events:    mocks.NewMockEventPublisher(t),
		tx:        txMocks.NewMockManager(t),
		carts:     repo.NewCartStore(cache.NewLRUCache(100, time.Minute)),
	}
	deps.tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewNGOService(logger, deps.donations, deps.orders, deps.carts, deps.tx, deps.journal, deps.events)
	return deps, svc
}

func TestNGOService_Browse(t *testing.T) {
	deps, svc := newNGO(t)

	expired := pending("old", 3)
	expired.ExpiryTime = time.Now().Add(-time.Minute)
	accepted := pending("taken", 3)
	accepted.Status = entities.DonationAccepted

	deps.donations.EXPECT().ListAvailableDonations(mock.Anything).
		Return([]entities.Donation{pending("a", 3), expired, accepted}, nil).Once()

	list, err := svc.Browse(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "a", list[0].ID)
}

func TestNGOService_AddToCart(t *testing.T) {
	type MockBehavior func(donations *mocks.MockDonationPlatform)

	expired := pending("a", 3)
	expired.ExpiryTime = time.Now().Add(-time.Second)
	fraction := pending("a", 0)
	fraction.Quantity = decimal.RequireFromString("0.5")

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantQty      int
		wantErr      error
		wantValidErr bool
	}{
		{
			name: "OK",
			mockBehavior: func(donations *mocks.MockDonationPlatform) {
				donations.EXPECT().GetDonation(mock.Anything, "a").Return(pending("a", 3), nil).Once()
			},
			wantQty: 1,
		},
		{
			name: "Expired",
			mockBehavior: func(donations *mocks.MockDonationPlatform) {
				donations.EXPECT().GetDonation(mock.Anything, "a").Return(expired, nil).Once()
			},
			wantErr: entities.ErrDonationUnavailable,
		},
		{
			name: "Less than one unit",
			mockBehavior: func(donations *mocks.MockDonationPlatform) {
				donations.EXPECT().GetDonation(mock.Anything, "a").Return(fraction, nil).Once()
			},
			wantValidErr: true,
		},
		{
			name: "Not found",
			mockBehavior: func(donations *mocks.MockDonationPlatform) {
				donations.EXPECT().GetDonation(mock.Anything, "a").
					Return(entities.Donation{}, &entities.ServerError{Op: "GetDonation", StatusCode: 404}).Once()
			},
			wantErr: entities.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			deps, svc := newNGO(t)
			tc.mockBehavior(deps.donations)

			c, err := svc.AddToCart(context.Background(), ngoUser, "a")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			if tc.wantValidErr {
				var ve *entities.ValidationError
				assert.ErrorAs(t, err, &ve)
				return
			}

			require.NoError(t, err)
			line, ok := c.Line("a")
			require.True(t, ok)
			assert.Equal(t, tc.wantQty, line.RequestedQuantity)
		})
	}
}

func TestNGOService_CartMutations(t *testing.T) {
	deps, svc := newNGO(t)
	ctx := context.Background()

	deps.donations.EXPECT().GetDonation(mock.Anything, "a").Return(pending("a", 3), nil)
	deps.donations.EXPECT().GetDonation(mock.Anything, "b").Return(pending("b", 2), nil)

	for range 5 {
		_, err := svc.AddToCart(ctx, ngoUser, "a")
		require.NoError(t, err)
	}
	_, err := svc.AddToCart(ctx, ngoUser, "b")
	require.NoError(t, err)

	c, err := svc.Cart(ctx, ngoUser)
	require.NoError(t, err)
	line, _ := c.Line("a")
	assert.Equal(t, 3, line.RequestedQuantity, "capped at available")

	c, err = svc.SetQuantity(ctx, ngoUser, "b", 10)
	require.NoError(t, err)
	line, _ = c.Line("b")
	assert.Equal(t, 2, line.RequestedQuantity)

	c, err = svc.SetQuantity(ctx, ngoUser, "b", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	c, err = svc.RemoveFromCart(ctx, ngoUser, "missing")
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	svc.ClearCart(ctx, ngoUser)
	c, err = svc.Cart(ctx, ngoUser)
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())

	other, err := svc.Cart(ctx, entities.User{ID: "ngo-2", Role: entities.RoleNGO})
	require.NoError(t, err)
	assert.True(t, other.IsEmpty())
}

func fillCart(t *testing.T, deps ngoDeps, ids ...string) {
	t.Helper()
	_, err := deps.carts.Update(ngoUser.ID, func(c cart.Cart) (cart.Cart, error) {
		for _, id := range ids {
			var err error
			if c, err = c.AddItem(pending(id, 5)); err != nil {
				return c, err
			}
		}
		return c, nil
	})
	require.NoError(t, err)
}

func TestNGOService_SubmitOrder(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		deps, svc := newNGO(t)
		fillCart(t, deps, "a", "b")

		deps.orders.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(d entities.OrderDraft) bool {
			return d.NGOID == ngoUser.ID && len(d.Items) == 2 && d.Delivery == details
		})).Return(gateway.OrderReceipt{OrderID: "42", QRCode: "QR-42"}, nil).Once()
		deps.journal.EXPECT().SaveSubmission(mock.Anything, mock.MatchedBy(func(s entities.OrderSubmission) bool {
			return s.Status == entities.SubmissionSucceeded && s.OrderID == "42"
		})).Return(nil).Once()
		deps.journal.EXPECT().SaveSubmissionItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		deps.events.EXPECT().OrderSubmitted(mock.Anything, mock.Anything).Return(nil).Once()

		order, err := svc.SubmitOrder(context.Background(), ngoUser, details)
		require.NoError(t, err)
		assert.Equal(t, "42", order.ID)
		assert.Equal(t, "QR-42", order.QRCode)
		assert.Equal(t, entities.OrderPending, order.Status)
		assert.False(t, order.IDProvisional)
		assert.False(t, order.QRCodeProvisional)

		c, err := svc.Cart(context.Background(), ngoUser)
		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
	})

	t.Run("Provisional id and qr code", func(t *testing.T) {
		deps, svc := newNGO(t)
		fillCart(t, deps, "a")

		deps.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(gateway.OrderReceipt{}, nil).Once()
		deps.journal.EXPECT().SaveSubmission(mock.Anything, mock.Anything).Return(nil).Once()
		deps.journal.EXPECT().SaveSubmissionItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		deps.events.EXPECT().OrderSubmitted(mock.Anything, mock.Anything).Return(nil).Once()

		order, err := svc.SubmitOrder(context.Background(), ngoUser, details)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(order.ID, "ORD-"))
		assert.True(t, order.IDProvisional)
		assert.True(t, order.QRCodeProvisional)

		var qr map[string]any
		require.NoError(t, json.Unmarshal([]byte(order.QRCode), &qr))
		assert.Equal(t, order.ID, qr["orderId"])
		assert.Equal(t, "Shelter 5", qr["deliveryLocation"])
		assert.EqualValues(t, 1, qr["items"])
	})

	t.Run("Platform failure keeps cart", func(t *testing.T) {
		deps, svc := newNGO(t)
		fillCart(t, deps, "a")

		platformErr := &entities.ServerError{Op: "CreateOrder", StatusCode: 500, Message: "boom"}
		deps.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(gateway.OrderReceipt{}, platformErr).Once()
		deps.journal.EXPECT().SaveSubmission(mock.Anything, mock.MatchedBy(func(s entities.OrderSubmission) bool {
			return s.Status == entities.SubmissionFailed && s.Error != ""
		})).Return(nil).Once()
		deps.journal.EXPECT().SaveSubmissionItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

		_, err := svc.SubmitOrder(context.Background(), ngoUser, details)
		var serverErr *entities.ServerError
		require.ErrorAs(t, err, &serverErr)

		c, err := svc.Cart(context.Background(), ngoUser)
		require.NoError(t, err)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("Journal failure does not fail order", func(t *testing.T) {
		deps, svc := newNGO(t)
		fillCart(t, deps, "a")

		deps.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(gateway.OrderReceipt{OrderID: "7", QRCode: "qr"}, nil).Once()
		deps.journal.EXPECT().SaveSubmission(mock.Anything, mock.Anything).Return(errors.New("db down")).Once()
		deps.events.EXPECT().OrderSubmitted(mock.Anything, mock.Anything).Return(errors.New("kafka down")).Once()

		order, err := svc.SubmitOrder(context.Background(), ngoUser, details)
		require.NoError(t, err)
		assert.Equal(t, "7", order.ID)
	})

	t.Run("Empty cart", func(t *testing.T) {
		_, svc := newNGO(t)

		_, err := svc.SubmitOrder(context.Background(), ngoUser, details)
		var ve *entities.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "items")
	})

	t.Run("Blank delivery details", func(t *testing.T) {
		deps, svc := newNGO(t)
		fillCart(t, deps, "a")

		_, err := svc.SubmitOrder(context.Background(), ngoUser, entities.DeliveryDetails{DeliveryLocation: "  "})
		var ve *entities.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "deliveryLocation")
		assert.Contains(t, ve.Fields, "deliveryDate")
		assert.Contains(t, ve.Fields, "deliveryTime")
	})

	t.Run("Concurrent submits reach the platform once", func(t *testing.T) {
		deps, svc := newNGO(t)
		fillCart(t, deps, "a")

		release := make(chan struct{})
		deps.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
			RunAndReturn(func(context.Context, entities.OrderDraft) (gateway.OrderReceipt, error) {
				<-release
				return gateway.OrderReceipt{OrderID: "1", QRCode: "qr"}, nil
			}).Once()
		deps.journal.EXPECT().SaveSubmission(mock.Anything, mock.Anything).Return(nil).Once()
		deps.journal.EXPECT().SaveSubmissionItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		deps.events.EXPECT().OrderSubmitted(mock.Anything, mock.Anything).Return(nil).Once()

		var wg sync.WaitGroup
		results := make([]entities.Order, 2)
		for i := range results {
			wg.Add(1)
			go func() {
				defer wg.Done()
				o, err := svc.SubmitOrder(context.Background(), ngoUser, details)
				assert.NoError(t, err)
				results[i] = o
			}()
		}
		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.Equal(t, "1", results[0].ID)
		assert.Equal(t, "1", results[1].ID)
	})

	t.Run("Concurrent submits with other details are not merged", func(t *testing.T) {
		deps, svc := newNGO(t)
		fillCart(t, deps, "a")

		other := entities.DeliveryDetails{
			DeliveryLocation: "Shelter 99",
			DeliveryDate:     "2026-10-21",
			DeliveryTime:     "12:00",
		}

		entered := make(chan struct{})
		release := make(chan struct{})
		deps.orders.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(d entities.OrderDraft) bool {
			return d.Delivery == details
		})).RunAndReturn(func(context.Context, entities.OrderDraft) (gateway.OrderReceipt, error) {
			close(entered)
			<-release
			return gateway.OrderReceipt{OrderID: "1", QRCode: "qr"}, nil
		}).Once()
		deps.journal.EXPECT().SaveSubmission(mock.Anything, mock.Anything).Return(nil).Once()
		deps.journal.EXPECT().SaveSubmissionItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		deps.events.EXPECT().OrderSubmitted(mock.Anything, mock.Anything).Return(nil).Once()

		var (
			wg     sync.WaitGroup
			first  entities.Order
			second error
		)
		wg.Add(1)
		go func() {
			defer wg.Done()
			o, err := svc.SubmitOrder(context.Background(), ngoUser, details)
			assert.NoError(t, err)
			first = o
		}()
		<-entered

		wg.Add(1)
		go func() {
			defer wg.Done()
			o, err := svc.SubmitOrder(context.Background(), ngoUser, other)
			assert.Empty(t, o.ID)
			second = err
		}()
		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.Equal(t, "Shelter 5", first.Delivery.DeliveryLocation)

		// корзина уже отправлена первым запросом
		var ve *entities.ValidationError
		require.ErrorAs(t, second, &ve)
		assert.Contains(t, ve.Fields, "items")
	})

	t.Run("Cancelled request does not abort submission", func(t *testing.T) {
		deps, svc := newNGO(t)
		fillCart(t, deps, "a")

		ctx, cancel := context.WithCancel(gateway.WithToken(context.Background(), "platform-token"))
		defer cancel()

		deps.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, _ entities.OrderDraft) (gateway.OrderReceipt, error) {
				cancel()
				assert.NoError(t, ctx.Err())
				assert.Equal(t, "platform-token", gateway.TokenFromContext(ctx))
				return gateway.OrderReceipt{OrderID: "9", QRCode: "qr"}, nil
			}).Once()
		deps.journal.EXPECT().SaveSubmission(mock.Anything, mock.Anything).Return(nil).Once()
		deps.journal.EXPECT().SaveSubmissionItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		deps.events.EXPECT().OrderSubmitted(mock.Anything, mock.Anything).Return(nil).Once()

		order, err := svc.SubmitOrder(ctx, ngoUser, details)
		require.NoError(t, err)
		assert.Equal(t, "9", order.ID)
	})
}

func TestNGOService_AcceptDonation(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		deps, svc := newNGO(t)

		accepted := pending("a", 3)
		accepted.Status = entities.DonationAccepted
		deps.donations.EXPECT().GetDonation(mock.Anything, "a").Return(pending("a", 3), nil).Once()
		deps.donations.EXPECT().AssignDonationToNGO(mock.Anything, "a", ngoUser.ID).Return(accepted, nil).Once()
		deps.journal.EXPECT().SaveDonationTransition(mock.Anything, mock.MatchedBy(func(tr entities.DonationTransition) bool {
			return tr.From == entities.DonationPending && tr.To == entities.DonationAccepted && tr.ActorRole == entities.RoleNGO
		})).Return(nil).Once()
		deps.events.EXPECT().DonationStatusChanged(mock.Anything, mock.Anything).Return(nil).Once()

		d, err := svc.AcceptDonation(context.Background(), ngoUser, "a")
		require.NoError(t, err)
		assert.Equal(t, entities.DonationAccepted, d.Status)
	})

	t.Run("Already accepted", func(t *testing.T) {
		deps, svc := newNGO(t)

		accepted := pending("a", 3)
		accepted.Status = entities.DonationAccepted
		deps.donations.EXPECT().GetDonation(mock.Anything, "a").Return(accepted, nil).Once()

		_, err := svc.AcceptDonation(context.Background(), ngoUser, "a")
		var illegal *entities.IllegalTransitionError
		assert.ErrorAs(t, err, &illegal)
	})

	t.Run("Expired", func(t *testing.T) {
		deps, svc := newNGO(t)

		expired := pending("a", 3)
		expired.ExpiryTime = time.Now().Add(-time.Minute)
		deps.donations.EXPECT().GetDonation(mock.Anything, "a").Return(expired, nil).Once()

		_, err := svc.AcceptDonation(context.Background(), ngoUser, "a")
		assert.ErrorIs(t, err, entities.ErrDonationUnavailable)
	})
}

func TestNGOService_ListSubmissions(t *testing.T) {
	deps, svc := newNGO(t)

	deps.journal.EXPECT().ListSubmissions(mock.Anything, ngoUser.ID, 100).
		Return([]entities.OrderSubmission{{ID: "s1"}}, nil).Once()

	list, err := svc.ListSubmissions(context.Background(), ngoUser, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
