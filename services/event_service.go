package services

import (
	"encoding/json"
	"fmt"
	"time"

	"dealership-api/models"

	"github.com/IBM/sarama"
	"github.com/rs/zerolog"
)

// Event types published to the order topic.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// IEventPublisher defines the interface for publishing order lifecycle events.
type IEventPublisher interface {
	PublishOrderEvent(eventType string, order *models.Order) error
}

// orderEvent is the JSON envelope written to the topic.
type orderEvent struct {
	Event     string        `json:"event"`
	Order     *models.Order `json:"order"`
	EmittedAt time.Time     `json:"emitted_at"`
}

// KafkaPublisher implements IEventPublisher using a Sarama sync producer.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	log      zerolog.Logger
}

// NewKafkaPublisher creates a KafkaPublisher connected to the given brokers.
func NewKafkaPublisher(brokers []string, topic string, log zerolog.Logger) (IEventPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to start Sarama producer: %w", err)
	}

	log.Info().Strs("brokers", brokers).Str("topic", topic).Msg("kafka producer connected")
	return &KafkaPublisher{producer: producer, topic: topic, log: log}, nil
}

// PublishOrderEvent marshals the order into an event envelope and sends it.
func (p *KafkaPublisher) PublishOrderEvent(eventType string, order *models.Order) error {
	payload, err := json.Marshal(orderEvent{Event: eventType, Order: order, EmittedAt: time.Now()})
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(fmt.Sprintf("%d", order.ID)),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send order event to topic %q: %w", p.topic, err)
	}
	p.log.Info().
		Str("event", eventType).
		Uint("order_id", order.ID).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("order event published")
	return nil
}

// NoopPublisher drops events; used when Kafka is disabled in config.
type NoopPublisher struct {
	log zerolog.Logger
}

// NewNoopPublisher creates a publisher that only logs at debug level.
func NewNoopPublisher(log zerolog.Logger) IEventPublisher {
	return &NoopPublisher{log: log}
}

func (p *NoopPublisher) PublishOrderEvent(eventType string, order *models.Order) error {
	p.log.Debug().Str("event", eventType).Uint("order_id", order.ID).Msg("event publishing disabled, dropping")
	return nil
}
