package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"rugcare.backend/internal/domain/entities"
	"rugcare.backend/pkg/logger"
)

// EventTypePaymentConfirmed is the event type carried in the payload and header
const EventTypePaymentConfirmed = "payment.confirmed"

// messageWriter is the part of kafka.Writer the publisher needs
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher publishes payment-confirmed events, keyed by session id
type KafkaPublisher struct {
	writer messageWriter
	topic  string
}

// NewKafkaPublisher returns nil when no brokers are configured
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	if len(brokers) == 0 {
		return nil
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		ErrorLogger:  kafka.LoggerFunc(logger.GetLogger().Named("kafka").Sugar().Errorf),
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
	return &KafkaPublisher{writer: w, topic: topic}
}

// PublishPaymentConfirmed writes one event. Same-session events land on one partition.
func (p *KafkaPublisher) PublishPaymentConfirmed(ctx context.Context, event *entities.PaymentConfirmedEvent) error {
	if event.EventType == "" {
		event.EventType = EventTypePaymentConfirmed
	}
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", event.EventType, err)
	}

	msg := kafka.Message{
		Key:   []byte(event.SessionID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
		Time: event.PaidAt,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s to %s: %w", event.EventType, p.topic, err)
	}

	logger.Debug(ctx, "Payment event published", zap.String("topic", p.topic), zap.String("session_id", event.SessionID))
	return nil
}

// Close flushes and closes the writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
