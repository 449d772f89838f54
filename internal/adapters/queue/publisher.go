// Package queue moves click events through RabbitMQ: the API publishes,
// the click worker consumes and persists.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"hotel_compare/internal/adapters/observability"
	"hotel_compare/internal/domain"
)

const (
	DefaultClickQueue  = "clicks.recorded"
	DefaultClickBuffer = 1024

	defaultDialTimeout    = 5 * time.Second
	defaultPublishTimeout = 5 * time.Second
	maxRedialBackoff      = 30 * time.Second
)

var (
	ErrBufferFull      = errors.New("click buffer full")
	ErrPublisherClosed = errors.New("click publisher closed")
)

func EncodeClick(c domain.Click) ([]byte, error) { return json.Marshal(c) }

func DecodeClick(body []byte) (domain.Click, error) {
	var c domain.Click
	if err := json.Unmarshal(body, &c); err != nil {
		return domain.Click{}, fmt.Errorf("unmarshal click: %w", err)
	}
	return c, nil
}

func declare(ch *amqp.Channel, queue string) error {
	// durable so messages survive broker restarts
	_, err := ch.QueueDeclare(queue, true, false, false, false, nil)
	return err
}

// Publisher hands clicks to a background goroutine through a bounded
// buffer, so callers never wait on the broker. The goroutine owns the
// connection, redials with backoff, and drops clicks while the broker is
// unreachable or the buffer is full.
type Publisher struct {
	url         string
	queue       string
	dialTimeout time.Duration

	events  chan domain.Click
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once

	// owned by run
	conn    *amqp.Connection
	ch      *amqp.Channel
	backoff time.Duration
	retryAt time.Time
}

func NewPublisher(url, queue string, buffer int) *Publisher {
	return newPublisher(url, queue, buffer, defaultDialTimeout)
}

func newPublisher(url, queue string, buffer int, dialTimeout time.Duration) *Publisher {
	if queue == "" {
		queue = DefaultClickQueue
	}
	if buffer <= 0 {
		buffer = DefaultClickBuffer
	}
	p := &Publisher{
		url:         url,
		queue:       queue,
		dialTimeout: dialTimeout,
		events:      make(chan domain.Click, buffer),
		done:        make(chan struct{}),
		stopped:     make(chan struct{}),
	}
	go p.run()
	return p
}

// PublishClick enqueues c without blocking. It fails only when the buffer
// is full or the publisher is closed.
func (p *Publisher) PublishClick(ctx context.Context, c domain.Click) error {
	select {
	case <-p.done:
		return ErrPublisherClosed
	default:
	}
	select {
	case p.events <- c:
		return nil
	default:
		observability.ObserveQueue(p.queue, "dropped")
		return ErrBufferFull
	}
}

// Close stops the background goroutine, flushing what is buffered when a
// channel is already open.
func (p *Publisher) Close() error {
	p.once.Do(func() { close(p.done) })
	<-p.stopped
	return nil
}

func (p *Publisher) run() {
	defer close(p.stopped)
	defer p.closeConn()

	for {
		select {
		case <-p.done:
			p.drain()
			return
		case c := <-p.events:
			p.deliver(c)
		}
	}
}

func (p *Publisher) drain() {
	for {
		select {
		case c := <-p.events:
			if p.ch == nil || p.ch.IsClosed() {
				observability.ObserveQueue(p.queue, "dropped")
				continue
			}
			p.deliver(c)
		default:
			return
		}
	}
}

func (p *Publisher) deliver(c domain.Click) {
	ch, err := p.channel()
	if err != nil {
		observability.ObserveQueue(p.queue, "dropped")
		return
	}
	body, err := EncodeClick(c)
	if err != nil {
		observability.ObserveQueue(p.queue, "publish_error")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultPublishTimeout)
	defer cancel()
	err = ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    c.ID,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		observability.ObserveQueue(p.queue, "publish_error")
		log.Warn().Err(err).Str("click_id", c.ID).Msg("publish click failed")
		p.closeConn()
		return
	}
	observability.ObserveQueue(p.queue, "published")
}

// channel returns the open channel, dialing at most once per backoff step.
func (p *Publisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	p.closeConn()
	if time.Now().Before(p.retryAt) {
		return nil, errors.New("broker unavailable")
	}

	ch, err := p.dial()
	if err != nil {
		if p.backoff == 0 {
			p.backoff = 500 * time.Millisecond
		} else if p.backoff < maxRedialBackoff {
			p.backoff *= 2
		}
		p.retryAt = time.Now().Add(p.backoff)
		observability.ObserveQueue(p.queue, "dial_error")
		log.Warn().Err(err).Dur("retry_in", p.backoff).Msg("click broker unavailable")
		return nil, err
	}
	p.backoff, p.retryAt = 0, time.Time{}
	return ch, nil
}

func (p *Publisher) dial() (*amqp.Channel, error) {
	// DefaultDial bounds both the TCP connect and the AMQP handshake.
	conn, err := amqp.DialConfig(p.url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(p.dialTimeout),
	})
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("channel open: %w", err)
	}
	if err := declare(ch, p.queue); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("queue declare: %w", err)
	}
	p.conn, p.ch = conn, ch
	return ch, nil
}

func (p *Publisher) closeConn() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}
