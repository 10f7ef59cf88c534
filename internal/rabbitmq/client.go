package rabbitmq

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitmqClient wraps one connection plus one channel to the broker. The
// catalog service uses it to queue merchant-facing alert jobs (e.g. "3 boxes
// still need dimensions after the USPS sync") for the communications service.
type RabbitmqClient struct {
	conn *amqp.Connection
	chn  *amqp.Channel
}

func NewClient(url string) (*RabbitmqClient, error) {
	// Dial opens the TCP connection to the broker.
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	// A channel is a logical session inside the connection.
	chn, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel")
	}
	return &RabbitmqClient{conn: conn, chn: chn}, nil
}

func (r *RabbitmqClient) Close() error {
	if err := r.chn.Close(); err != nil {
		return err
	}
	return r.conn.Close()
}

// CreateQueue declares a durable queue, safe to call on every startup.
func (r *RabbitmqClient) CreateQueue(queueName string) error {
	_, err := r.chn.QueueDeclare(
		queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	return err
}

// Publish sends a persistent JSON message to a queue.
func (r *RabbitmqClient) Publish(ctx context.Context, queueName string, body []byte) error {
	return r.chn.PublishWithContext(
		ctx,
		"",        // exchange
		queueName, // routing key (queue name)
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}
