// Package events публикует доменные события сервиса в Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/food-donation-service/internal/config"
	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	TypeOrderSubmitted        = "order.submitted"
	TypeDonationStatusChanged = "donation.status_changed"
	TypeAssignmentChanged     = "delivery.assignment_changed"
)

type Event struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	logger *slog.Logger
	writer MessageWriter
	now    func() time.Time
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *kafkaPublisher {
	logger = logger.With(slog.String("component", "events"))
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           cfg.BatchTimeout,
		AllowAutoTopicCreation: true,
		Async:                  true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				eventsFailed.Add(float64(len(messages)))
				logger.Error("failed to deliver events", slog.Int("count", len(messages)), slog.Any("error", err))
			}
		},
	}
	return newPublisher(logger, writer)
}

func newPublisher(logger *slog.Logger, writer MessageWriter) *kafkaPublisher {
	return &kafkaPublisher{logger: logger, writer: writer, now: time.Now}
}

type orderSubmittedPayload struct {
	OrderID           string `json:"order_id"`
	NGOID             string `json:"ngo_id"`
	Items             int    `json:"items"`
	TotalRequested    int    `json:"total_requested"`
	DeliveryLocation  string `json:"delivery_location"`
	DeliveryDate      string `json:"delivery_date"`
	DeliveryTime      string `json:"delivery_time"`
	IDProvisional     bool   `json:"id_provisional"`
	QRCodeProvisional bool   `json:"qr_code_provisional"`
}

func (p *kafkaPublisher) OrderSubmitted(ctx context.Context, o entities.Order) error {
	total := 0
	for _, it := range o.Items {
		total += it.RequestedQuantity
	}
	return p.publish(ctx, TypeOrderSubmitted, o.NGOID, orderSubmittedPayload{
		OrderID:           o.ID,
		NGOID:             o.NGOID,
		Items:             len(o.Items),
		TotalRequested:    total,
		DeliveryLocation:  o.Delivery.DeliveryLocation,
		DeliveryDate:      o.Delivery.DeliveryDate,
		DeliveryTime:      o.Delivery.DeliveryTime,
		IDProvisional:     o.IDProvisional,
		QRCodeProvisional: o.QRCodeProvisional,
	})
}

type donationStatusPayload struct {
	DonationID string `json:"donation_id"`
	From       string `json:"from"`
	To         string `json:"to"`
	ActorID    string `json:"actor_id"`
	ActorRole  string `json:"actor_role"`
}

func (p *kafkaPublisher) DonationStatusChanged(ctx context.Context, t entities.DonationTransition) error {
	return p.publish(ctx, TypeDonationStatusChanged, t.DonationID, donationStatusPayload{
		DonationID: t.DonationID,
		From:       string(t.From),
		To:         string(t.To),
		ActorID:    t.ActorID,
		ActorRole:  string(t.ActorRole),
	})
}

type assignmentPayload struct {
	AssignmentID string `json:"assignment_id"`
	OrderID      string `json:"order_id"`
	Status       string `json:"status"`
	VolunteerID  string `json:"volunteer_id"`
}

func (p *kafkaPublisher) AssignmentChanged(ctx context.Context, a entities.DeliveryAssignment) error {
	return p.publish(ctx, TypeAssignmentChanged, a.OrderID, assignmentPayload{
		AssignmentID: a.ID,
		OrderID:      a.OrderID,
		Status:       string(a.Status),
		VolunteerID:  a.VolunteerID,
	})
}

func (p *kafkaPublisher) publish(ctx context.Context, eventType, key string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}

	event := Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: p.now().UTC(),
		Payload:    raw,
	}
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		eventsFailed.Inc()
		return fmt.Errorf("failed to publish %s: %w", eventType, err)
	}

	eventsPublished.WithLabelValues(eventType).Inc()
	p.logger.DebugContext(ctx, "event published", slog.String("type", eventType), slog.String("id", event.ID))
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

// Nop используется, когда Kafka выключена.
type Nop struct{}

func (Nop) OrderSubmitted(context.Context, entities.Order) error { return nil }
func (Nop) DonationStatusChanged(context.Context, entities.DonationTransition) error { return nil }
func (Nop) AssignmentChanged(context.Context, entities.DeliveryAssignment) error { return nil }
func (Nop) Close() error { return nil }
