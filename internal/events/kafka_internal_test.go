package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func newTestPublisher(w MessageWriter) *kafkaPublisher {
	p := newPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)), w)
	p.now = func() time.Time { return time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC) }
	return p
}

func TestPublisher_OrderSubmitted(t *testing.T) {
	w := &fakeWriter{}
	p := newTestPublisher(w)

	err := p.OrderSubmitted(context.Background(), entities.Order{
		ID:            "ORD-1",
		NGOID:         "7",
		IDProvisional: true,
		Items: []entities.CartLine{
			{DonationID: "a", RequestedQuantity: 2},
			{DonationID: "b", RequestedQuantity: 3},
		},
	})
	require.NoError(t, err)
	require.Len(t, w.messages, 1)

	msg := w.messages[0]
	assert.Equal(t, "7", string(msg.Key))
	assert.Equal(t, TypeOrderSubmitted, string(msg.Headers[0].Value))

	var event Event
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.Equal(t, TypeOrderSubmitted, event.Type)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC), event.OccurredAt)

	var payload orderSubmittedPayload
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, "ORD-1", payload.OrderID)
	assert.Equal(t, 2, payload.Items)
	assert.Equal(t, 5, payload.TotalRequested)
	assert.True(t, payload.IDProvisional)
}

func TestPublisher_WriteError(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker down")}
	p := newTestPublisher(w)

	err := p.DonationStatusChanged(context.Background(), entities.DonationTransition{DonationID: "1"})
	assert.ErrorContains(t, err, "broker down")

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}
