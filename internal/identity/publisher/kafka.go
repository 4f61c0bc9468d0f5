// Package publisher fans issued identity records out to Kafka for downstream
// audit consumers. Publishing is an advisory sink: the append-only store is
// the source of truth, and a broker outage never fails an issuance.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/LaSalleSoftware/lsv2-library-pkg-sub001/internal/identity/models"
)

const defaultTopic = "identity-events"

// payload is the JSON value published per record.
type payload struct {
	UUID        string    `json:"uuid"`
	EventTypeID int       `json:"event_type_id"`
	EventType   string    `json:"event_type"`
	Comment     string    `json:"comment,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	CreatedBy   int64     `json:"created_by"`
}

// Kafka implements service.Sink over a franz-go client.
type Kafka struct {
	client *kgo.Client
	topic  string
}

// Option customizes a Kafka publisher.
type Option func(*Kafka)

// WithTopic overrides the destination topic.
func WithTopic(topic string) Option {
	return func(k *Kafka) { k.topic = topic }
}

// NewKafka builds a publisher connected to the given seed brokers.
func NewKafka(brokers []string, opts ...Option) (*Kafka, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.ProducerLinger(10 * time.Millisecond),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	k := &Kafka{client: client, topic: defaultTopic}
	for _, opt := range opts {
		opt(k)
	}
	return k, nil
}

// Publish produces the record synchronously, keyed by its UUID.
func (k *Kafka) Publish(ctx context.Context, record *models.Record) error {
	value, err := json.Marshal(payload{
		UUID:        record.UUID,
		EventTypeID: int(record.EventType),
		EventType:   record.EventType.String(),
		Comment:     record.Comment,
		CreatedAt:   record.CreatedAt,
		CreatedBy:   record.CreatedBy,
	})
	if err != nil {
		return fmt.Errorf("marshal identity event: %w", err)
	}

	kafkaRecord := &kgo.Record{
		Topic: k.topic,
		Key:   []byte(record.UUID),
		Value: value,
	}
	if err := k.client.ProduceSync(ctx, kafkaRecord).FirstErr(); err != nil {
		return fmt.Errorf("publish identity event: %w", err)
	}
	return nil
}

// Close flushes and releases the underlying client.
func (k *Kafka) Close() {
	k.client.Close()
}
