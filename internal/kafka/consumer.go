package kafka

import (
	"context"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// Consumer reads sync-trigger messages for the catalog service. Other
// services (and the scheduler) publish to the sync topic to ask for a
// carrier catalog refresh.
type Consumer struct {
	reader *kafka.Reader
}

// Handler is the callback main.go provides, invoked once per message.
type Handler func(ctx context.Context, key []byte, value []byte) error

// NewConsumer connects a reader. The groupID makes multiple copies of the
// service split the work instead of all processing the same message.
func NewConsumer(brokers []string, topic string, groupID string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			Topic:    topic,
			GroupID:  groupID,
			MinBytes: 10e3, // 10KB
			MaxBytes: 10e6, // 10MB
		}),
	}
}

// Start is an infinite fetch loop. A message is only committed after the
// handler succeeds, so a failed sync request gets redelivered.
func (c *Consumer) Start(ctx context.Context, handler Handler) {
	log.Printf("🎧 Kafka consumer started. Topic: %s, Group: %s", c.reader.Config().Topic, c.reader.Config().GroupID)

	for {
		if ctx.Err() != nil {
			return
		}

		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("⚠️ Error fetching message: %v", err)
			time.Sleep(time.Second)
			continue
		}

		// A carrier sync fans out over every warehouse, give it headroom.
		processCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		err = handler(processCtx, m.Key, m.Value)
		cancel()

		if err != nil {
			log.Printf("❌ Processing failed (Offset %d): %v", m.Offset, err)
			// No commit: Kafka redelivers this message shortly.
			continue
		}

		if err := c.reader.CommitMessages(ctx, m); err != nil {
			log.Printf("❌ Failed to commit offset: %v", err)
		}
	}
}

// Close disconnects from the broker.
func (c *Consumer) Close() error {
	return c.reader.Close()
}
