package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/animal-shelter/internal/logger"
	"github.com/sbilibin2017/animal-shelter/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// Deferrer schedules fn to run once the current unit of work has committed.
// It returns false when there is nothing to wait for.
type Deferrer func(ctx context.Context, fn func(ctx context.Context)) bool

// PublisherOption configures a ChangePublisher.
type PublisherOption func(*ChangePublisher)

// WithDeferrer holds events back until the deferrer runs them, so that a
// write rolled back after Publish never reaches Kafka.
func WithDeferrer(d Deferrer) PublisherOption {
	return func(p *ChangePublisher) {
		p.deferrer = d
	}
}

// ChangePublisher publishes resource change events. Publishing is best effort:
// failures are logged and never returned to the caller.
type ChangePublisher struct {
	writer   KafkaWriter
	deferrer Deferrer
	now      func() time.Time
}

// NewChangePublisher creates a publisher. A nil writer disables publishing.
func NewChangePublisher(writer KafkaWriter, opts ...PublisherOption) *ChangePublisher {
	p := &ChangePublisher{writer: writer, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish sends a change event for the given resource, or queues it on the
// deferrer when one is configured and ctx carries pending work.
func (p *ChangePublisher) Publish(ctx context.Context, resource, operation string, id int64) {
	if p == nil || p.writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing",
			"resource", resource, "operation", operation, "resource_id", id)
		return
	}

	event := models.ChangeEvent{
		EventID:    uuid.NewString(),
		Resource:   resource,
		Operation:  operation,
		ResourceID: id,
		Timestamp:  p.now().Unix(),
	}

	if p.deferrer != nil && p.deferrer(ctx, func(ctx context.Context) { p.send(ctx, event) }) {
		logger.Log.Debugw("Change event queued until commit", "event_id", event.EventID)
		return
	}
	p.send(ctx, event)
}

func (p *ChangePublisher) send(ctx context.Context, event models.ChangeEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal change event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish change event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Change event published", "event_id", event.EventID,
			"resource", event.Resource, "operation", event.Operation, "resource_id", event.ResourceID)
	}
}
