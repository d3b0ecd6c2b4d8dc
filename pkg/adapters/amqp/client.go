package amqp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// HandlerFunc processes one message body and returns the reply text.
type HandlerFunc func(ctx context.Context, body []byte) (string, error)

type Client struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	queueName    string
	logger       *slog.Logger
}

func NewClient(url, exchangeName, queueName string, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}

	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	client := &Client{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
		queueName:    queueName,
		logger:       logger,
	}

	if err := client.setup(); err != nil {
		client.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return client, nil
}

func (c *Client) setup() error {
	err := c.channel.ExchangeDeclare(
		c.exchangeName, // name
		"direct",       // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = c.channel.QueueDeclare(
		c.queueName, // name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	err = c.channel.QueueBind(
		c.queueName,    // queue name
		c.queueName,    // routing key
		c.exchangeName, // exchange
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	// One delivery at a time keeps AddEntry calls serialized.
	if err := c.channel.Qos(1, 0, false); err != nil {
		return fmt.Errorf("set qos: %w", err)
	}

	return nil
}

// Consume handles deliveries sequentially until ctx is cancelled or the
// broker closes the channel.
func (c *Client) Consume(ctx context.Context, handler HandlerFunc) error {
	msgs, err := c.channel.Consume(
		c.queueName, // queue
		"",          // consumer
		false,       // auto-ack
		false,       // exclusive
		false,       // no-local
		false,       // no-wait
		nil,         // args
	)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	c.logger.InfoContext(ctx, "consuming journal messages", "queue", c.queueName)

	for {
		select {
		case <-ctx.Done():
			c.logger.InfoContext(ctx, "stopping message consumption", "reason", ctx.Err())
			return ctx.Err()
		case delivery, ok := <-msgs:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return fmt.Errorf("message channel closed")
			}
			c.handle(ctx, delivery, handler)
		}
	}
}

func (c *Client) handle(ctx context.Context, delivery amqp091.Delivery, handler HandlerFunc) {
	reply, handleErr := handler(ctx, delivery.Body)

	if delivery.ReplyTo != "" {
		if err := c.reply(ctx, delivery, reply); err != nil {
			c.logger.ErrorContext(ctx, "failed to publish reply", "error", err, "reply_to", delivery.ReplyTo)
		}
	}

	if handleErr != nil {
		c.logger.ErrorContext(ctx, "failed to record message", "error", handleErr, "message_id", delivery.MessageId)
		delivery.Nack(false, false) // reject and don't requeue
		return
	}

	delivery.Ack(false)
	c.logger.DebugContext(ctx, "message processed", "message_id", delivery.MessageId, "reply", reply)
}

func (c *Client) reply(ctx context.Context, delivery amqp091.Delivery, text string) error {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return c.channel.PublishWithContext(
		ctx,
		"",               // default exchange
		delivery.ReplyTo, // routing key
		false,            // mandatory
		false,            // immediate
		newReply(delivery, text),
	)
}

func newReply(delivery amqp091.Delivery, text string) amqp091.Publishing {
	return amqp091.Publishing{
		ContentType:   "text/plain",
		CorrelationId: delivery.CorrelationId,
		MessageId:     uuid.NewString(),
		Timestamp:     time.Now(),
		Body:          []byte(text),
	}
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
