package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rugcare.backend/internal/domain/entities"
)

type recordingWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestNewKafkaPublisher_NoBrokers(t *testing.T) {
	assert.Nil(t, NewKafkaPublisher(nil, "payment.confirmed"))

	p := NewKafkaPublisher([]string{"localhost:9092"}, "payment.confirmed")
	require.NotNil(t, p)
	assert.Equal(t, "payment.confirmed", p.topic)
}

func TestKafkaPublisher_PublishPaymentConfirmed(t *testing.T) {
	w := &recordingWriter{}
	p := &KafkaPublisher{writer: w, topic: "payment.confirmed"}
	paidAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	err := p.PublishPaymentConfirmed(context.Background(), &entities.PaymentConfirmedEvent{
		SessionID:   "cs_test_1",
		JobID:       "job_42",
		JobNumber:   "JOB-0042",
		AmountCents: 15000,
		PaidAt:      paidAt,
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "cs_test_1", string(msg.Key))
	assert.Equal(t, "event_type", msg.Headers[0].Key)
	assert.Equal(t, EventTypePaymentConfirmed, string(msg.Headers[0].Value))
	assert.Equal(t, paidAt, msg.Time)

	var decoded entities.PaymentConfirmedEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, EventTypePaymentConfirmed, decoded.EventType)
	assert.Equal(t, int64(15000), decoded.AmountCents)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	p := &KafkaPublisher{writer: &recordingWriter{err: errors.New("leader not available")}, topic: "payment.confirmed"}
	err := p.PublishPaymentConfirmed(context.Background(), &entities.PaymentConfirmedEvent{SessionID: "cs_1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish payment.confirmed to payment.confirmed")
}
