package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"hotel_compare/internal/adapters/observability"
	"hotel_compare/internal/domain"
)

type ClickHandler func(ctx context.Context, c domain.Click) error

// Consumer reads click events and hands them to a handler, reconnecting
// with exponential backoff whenever the broker goes away.
type Consumer struct {
	url      string
	queue    string
	prefetch int
	handle   ClickHandler

	// Requeue decides whether a failed delivery goes back on the queue.
	// Nil means never; undecodable messages are always dropped.
	Requeue func(error) bool
}

func NewConsumer(url, queue string, h ClickHandler) *Consumer {
	if queue == "" {
		queue = DefaultClickQueue
	}
	return &Consumer{url: url, queue: queue, prefetch: 50, handle: h}
}

// Run blocks until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(c.url)
		if err != nil {
			log.Warn().Err(err).Dur("retry_in", backoff).Msg("click consumer: dial failed")
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		err = c.consumeLoop(ctx, conn)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Warn().Err(err).Msg("click consumer: loop ended; reconnecting")
		if !sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func (c *Consumer) consumeLoop(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		log.Warn().Err(err).Msg("click consumer: set QoS failed")
	}
	if err := declare(ch, c.queue); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	msgs, err := ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}
	log.Info().Str("queue", c.queue).Msg("click consumer: consuming")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			c.handleDelivery(ctx, d)
		}
	}
}

func (c *Consumer) handleDelivery(ctx context.Context, d amqp.Delivery) {
	click, err := DecodeClick(d.Body)
	if err != nil {
		log.Warn().Err(err).Uint64("tag", d.DeliveryTag).Msg("click consumer: dropping undecodable message")
		observability.ObserveQueue(c.queue, "rejected")
		_ = d.Nack(false, false)
		return
	}
	if err := c.handle(ctx, click); err != nil {
		requeue := c.Requeue != nil && c.Requeue(err) && !d.Redelivered
		log.Warn().Err(err).Str("click_id", click.ID).Bool("requeue", requeue).Msg("click consumer: handle failed")
		observability.ObserveQueue(c.queue, "rejected")
		_ = d.Nack(false, requeue)
		return
	}
	observability.ObserveQueue(c.queue, "acked")
	_ = d.Ack(false)
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
