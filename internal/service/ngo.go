package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/food-donation-service/internal/cart"
	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
	"github.com/SergeyBogomolovv/food-donation-service/internal/lifecycle"
	"github.com/SergeyBogomolovv/food-donation-service/pkg/trm"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

type ngoService struct {
	logger    *slog.Logger
	donations DonationPlatform
	orders    OrderPlatform
	carts     CartStore
	txManager trm.Manager
	journal   Journal
	events    EventPublisher
	mover     *donationMover
	submits   singleflight.Group
	locks     keyedMutex
	now       func() time.Time
}

func NewNGOService(
	logger *slog.Logger,
	donations DonationPlatform,
	orders OrderPlatform,
	carts CartStore,
	txManager trm.Manager,
	journal Journal,
	events EventPublisher,
) *ngoService {
	logger = logger.With(slog.String("service", "ngo"))
	s := &ngoService{
		logger:    logger,
		donations: donations,
		orders:    orders,
		carts:     carts,
		txManager: txManager,
		journal:   journal,
		events:    events,
		now:       time.Now,
	}
	s.mover = &donationMover{
		logger:    logger,
		donations: donations,
		journal:   journal,
		events:    events,
		now:       func() time.Time { return s.now() },
	}
	return s
}

// Browse доступность пересчитывается на каждый запрос, даже если
// платформа уже отфильтровала список.
func (s *ngoService) Browse(ctx context.Context) ([]entities.Donation, error) {
	list, err := s.donations.ListAvailableDonations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list available donations: %w", err)
	}
	return lifecycle.FilterAvailable(list, s.now()), nil
}

func (s *ngoService) Cart(ctx context.Context, ngo entities.User) (cart.Cart, error) {
	return s.carts.Load(ngo.ID)
}

func (s *ngoService) AddToCart(ctx context.Context, ngo entities.User, donationID string) (cart.Cart, error) {
	d, err := s.donations.GetDonation(ctx, donationID)
	if err != nil {
		cartOperations.WithLabelValues("add", "error").Inc()
		return cart.Cart{}, fmt.Errorf("failed to get donation: %w", err)
	}
	if !lifecycle.IsAvailable(d, s.now()) {
		cartOperations.WithLabelValues("add", "unavailable").Inc()
		return cart.Cart{}, entities.ErrDonationUnavailable
	}

	c, err := s.carts.Update(ngo.ID, func(c cart.Cart) (cart.Cart, error) {
		return c.AddItem(d)
	})
	cartOperations.WithLabelValues("add", outcome(err)).Inc()
	return c, err
}

func (s *ngoService) SetQuantity(ctx context.Context, ngo entities.User, donationID string, quantity int) (cart.Cart, error) {
	c, err := s.carts.Update(ngo.ID, func(c cart.Cart) (cart.Cart, error) {
		return c.SetQuantity(donationID, quantity), nil
	})
	cartOperations.WithLabelValues("set_quantity", outcome(err)).Inc()
	return c, err
}

func (s *ngoService) RemoveFromCart(ctx context.Context, ngo entities.User, donationID string) (cart.Cart, error) {
	c, err := s.carts.Update(ngo.ID, func(c cart.Cart) (cart.Cart, error) {
		return c.RemoveItem(donationID), nil
	})
	cartOperations.WithLabelValues("remove", outcome(err)).Inc()
	return c, err
}

func (s *ngoService) ClearCart(ctx context.Context, ngo entities.User) {
	s.carts.Clear(ngo.ID)
	cartOperations.WithLabelValues("clear", "ok").Inc()
}

func (s *ngoService) AcceptDonation(ctx context.Context, ngo entities.User, donationID string) (entities.Donation, error) {
	return s.mover.move(ctx, ngo, donationID, entities.DonationAccepted, func(ctx context.Context, d entities.Donation) (entities.Donation, error) {
		if !d.ExpiryTime.After(s.now()) {
			return entities.Donation{}, entities.ErrDonationUnavailable
		}
		return s.donations.AssignDonationToNGO(ctx, d.ID, ngo.ID)
	})
}

// SubmitOrder одинаковые одновременные отправки одной NGO сливаются в один
// вызов платформы. Отправки с разными деталями доставки выполняются по очереди:
// вторая видит корзину уже после первой.
func (s *ngoService) SubmitOrder(ctx context.Context, ngo entities.User, details entities.DeliveryDetails) (entities.Order, error) {
	v, err, _ := s.submits.Do(submitKey(ngo.ID, details), func() (any, error) {
		unlock := s.locks.lock(ngo.ID)
		defer unlock()
		// общий результат не должен зависеть от отмены запроса первого клиента
		return s.submit(context.WithoutCancel(ctx), ngo, details)
	})
	if err != nil {
		return entities.Order{}, err
	}
	return v.(entities.Order), nil
}

func submitKey(ngoID string, d entities.DeliveryDetails) string {
	return strings.Join([]string{ngoID, d.DeliveryLocation, d.DeliveryDate, d.DeliveryTime, d.SpecialInstructions}, "\x00")
}

type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}

func (s *ngoService) submit(ctx context.Context, ngo entities.User, details entities.DeliveryDetails) (entities.Order, error) {
	c, err := s.carts.Load(ngo.ID)
	if err != nil {
		return entities.Order{}, err
	}

	now := s.now()
	draft, err := c.ToOrderDraft(ngo.ID, details, now)
	if err != nil {
		orderSubmissions.WithLabelValues("invalid").Inc()
		return entities.Order{}, err
	}

	receipt, err := s.orders.CreateOrder(ctx, draft)
	if err != nil {
		orderSubmissions.WithLabelValues("failed").Inc()
		s.journalSubmission(ctx, entities.OrderSubmission{
			ID:        uuid.NewString(),
			NGOID:     ngo.ID,
			Items:     draft.Items,
			Delivery:  draft.Delivery,
			Status:    entities.SubmissionFailed,
			Error:     err.Error(),
			CreatedAt: now,
		})
		return entities.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	order := entities.Order{
		ID:        receipt.OrderID,
		NGOID:     ngo.ID,
		Items:     draft.Items,
		Delivery:  draft.Delivery,
		QRCode:    receipt.QRCode,
		CreatedAt: now,
		Status:    entities.OrderPending,
	}
	s.fillProvisional(ctx, &order)

	// убираем только отправленные строки: добавленное во время отправки остается в корзине
	if _, err := s.carts.Update(ngo.ID, func(c cart.Cart) (cart.Cart, error) {
		for _, l := range draft.Items {
			c = c.RemoveItem(l.DonationID)
		}
		return c, nil
	}); err != nil {
		s.logger.ErrorContext(ctx, "failed to clear cart after order", slog.String("ngo_id", ngo.ID), slog.Any("error", err))
	}

	orderSubmissions.WithLabelValues("succeeded").Inc()
	s.journalSubmission(ctx, entities.OrderSubmission{
		ID:                uuid.NewString(),
		NGOID:             ngo.ID,
		OrderID:           order.ID,
		IDProvisional:     order.IDProvisional,
		QRCode:            order.QRCode,
		QRCodeProvisional: order.QRCodeProvisional,
		Items:             order.Items,
		Delivery:          order.Delivery,
		Status:            entities.SubmissionSucceeded,
		CreatedAt:         now,
	})
	if err := s.events.OrderSubmitted(ctx, order); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order event", slog.String("order_id", order.ID), slog.Any("error", err))
	}

	s.logger.InfoContext(ctx, "order submitted",
		slog.String("order_id", order.ID),
		slog.String("ngo_id", ngo.ID),
		slog.Int("items", len(order.Items)),
	)
	return order, nil
}

// fillProvisional если платформа не вернула номер заказа или QR-код,
// генерируем их сами и помечаем как непроверенные.
func (s *ngoService) fillProvisional(ctx context.Context, o *entities.Order) {
	if o.ID == "" {
		o.ID = "ORD-" + strconv.FormatInt(o.CreatedAt.UnixMilli(), 10)
		o.IDProvisional = true
		provisionalFields.WithLabelValues("order_id").Inc()
		s.logger.WarnContext(ctx, "platform returned no order id, using provisional", slog.String("order_id", o.ID))
	}

	if o.QRCode == "" {
		payload, err := json.Marshal(qrPayload{
			OrderID:          o.ID,
			DeliveryLocation: o.Delivery.DeliveryLocation,
			DeliveryDate:     o.Delivery.DeliveryDate,
			DeliveryTime:     o.Delivery.DeliveryTime,
			Items:            len(o.Items),
			Timestamp:        o.CreatedAt.UTC().Format(time.RFC3339),
			Provisional:      true,
		})
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to build provisional qr code", slog.Any("error", err))
			return
		}
		o.QRCode = string(payload)
		o.QRCodeProvisional = true
		provisionalFields.WithLabelValues("qr_code").Inc()
		s.logger.WarnContext(ctx, "platform returned no qr code, using provisional", slog.String("order_id", o.ID))
	}
}

type qrPayload struct {
	OrderID          string `json:"orderId"`
	DeliveryLocation string `json:"deliveryLocation"`
	DeliveryDate     string `json:"deliveryDate"`
	DeliveryTime     string `json:"deliveryTime"`
	Items            int    `json:"items"`
	Timestamp        string `json:"timestamp"`
	Provisional      bool   `json:"provisional"`
}

func (s *ngoService) journalSubmission(ctx context.Context, sub entities.OrderSubmission) {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.journal.SaveSubmission(ctx, sub); err != nil {
			return err
		}
		return s.journal.SaveSubmissionItems(ctx, sub.ID, sub.Items)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to journal order submission",
			slog.String("ngo_id", sub.NGOID),
			slog.String("status", string(sub.Status)),
			slog.Any("error", err),
		)
	}
}

func (s *ngoService) ListOrders(ctx context.Context, ngo entities.User) ([]entities.Order, error) {
	orders, err := s.orders.ListNGOOrders(ctx, ngo.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

const maxSubmissions = 100

func (s *ngoService) ListSubmissions(ctx context.Context, ngo entities.User, limit int) ([]entities.OrderSubmission, error) {
	if limit <= 0 || limit > maxSubmissions {
		limit = maxSubmissions
	}
	list, err := s.journal.ListSubmissions(ctx, ngo.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return list, nil
}
