package kafka

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"
)

// Writer is the part of kafka.Writer the producer needs. Keeping it an
// interface lets tests swap in a fake writer.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaProducer publishes catalog events (resource.merged, resource.toggled,
// resource.duplicated, resource.deleted) for the notification and gateway
// services to consume.
type KafkaProducer struct {
	writer Writer
}

// NewKafkaProducer connects a writer to the given broker and topic.
// Balancer LeastBytes spreads messages evenly across partitions.
func NewKafkaProducer(brokerURL, topic string) *KafkaProducer {
	return &KafkaProducer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokerURL),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// NewKafkaProducerWithWriter wires an existing writer, used by tests.
func NewKafkaProducerWithWriter(w Writer) *KafkaProducer {
	return &KafkaProducer{writer: w}
}

// Publish JSON-encodes the event payload and sends it keyed by the resource
// identity, so events for the same resource land in the same partition and
// stay ordered.
func (p *KafkaProducer) Publish(ctx context.Context, key string, value interface{}) error {
	bytes, err := json.Marshal(value)
	if err != nil {
		log.Println("❌ Failed to marshal Kafka payload:", err)
		return err
	}
	msg := kafka.Message{
		Key:   []byte(key),
		Value: bytes,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		log.Println("❌ Kafka write error:", err)
		return err
	}
	return nil
}

// Close shuts down the writer to free resources.
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}
