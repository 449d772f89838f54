package queue

import (
	"context"
	"errors"
	"net"
	"strconv"
	"sync"
	"testing"
	"time"

	"hotel_compare/internal/domain"
)

// silentBroker accepts TCP connections and never speaks AMQP.
func silentBroker(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	var mu sync.Mutex
	var conns []net.Conn
	go func() {
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			conns = append(conns, c)
			mu.Unlock()
		}
	}()
	t.Cleanup(func() {
		_ = ln.Close()
		mu.Lock()
		defer mu.Unlock()
		for _, c := range conns {
			_ = c.Close()
		}
	})
	return "amqp://guest:guest@" + ln.Addr().String() + "/"
}

func TestPublishClick_SilentBrokerDoesNotBlockCaller(t *testing.T) {
	p := newPublisher(silentBroker(t), "clicks.test", 8, 200*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	for i := 0; i < 5; i++ {
		c := domain.Click{ID: "c" + strconv.Itoa(i), PartnerID: domain.PartnerBooking, HotelID: 1}
		if err := p.PublishClick(ctx, c); err != nil {
			t.Fatalf("publish %d: %v", i, err)
		}
	}
	if el := time.Since(start); el > 100*time.Millisecond {
		t.Fatalf("PublishClick waited on the broker for %v", el)
	}

	// the background dial gives up after the dial timeout
	start = time.Now()
	if err := p.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if el := time.Since(start); el > 2*time.Second {
		t.Fatalf("Close took %v", el)
	}
	if err := p.PublishClick(ctx, domain.Click{ID: "late"}); !errors.Is(err, ErrPublisherClosed) {
		t.Fatalf("want ErrPublisherClosed, got %v", err)
	}
	// idempotent
	_ = p.Close()
}

func TestPublishClick_FullBufferDrops(t *testing.T) {
	// no run goroutine: nothing drains the buffer
	p := &Publisher{
		queue:  "clicks.test",
		events: make(chan domain.Click, 1),
		done:   make(chan struct{}),
	}
	ctx := context.Background()

	if err := p.PublishClick(ctx, domain.Click{ID: "a"}); err != nil {
		t.Fatalf("first: %v", err)
	}
	if err := p.PublishClick(ctx, domain.Click{ID: "b"}); !errors.Is(err, ErrBufferFull) {
		t.Fatalf("want ErrBufferFull, got %v", err)
	}
	close(p.done)
	if err := p.PublishClick(ctx, domain.Click{ID: "c"}); !errors.Is(err, ErrPublisherClosed) {
		t.Fatalf("want ErrPublisherClosed, got %v", err)
	}
}

func TestChannel_BacksOffAfterDialFailure(t *testing.T) {
	p := &Publisher{url: silentBroker(t), queue: "clicks.test", dialTimeout: 100 * time.Millisecond}
	defer p.closeConn()

	if _, err := p.channel(); err == nil {
		t.Fatalf("dial against a silent broker should fail")
	}
	if p.backoff == 0 || !p.retryAt.After(time.Now()) {
		t.Fatalf("no backoff recorded: %v %v", p.backoff, p.retryAt)
	}
	// within the backoff window no dial is attempted
	start := time.Now()
	if _, err := p.channel(); err == nil {
		t.Fatalf("expected broker unavailable")
	}
	if el := time.Since(start); el > 50*time.Millisecond {
		t.Fatalf("redialed inside backoff window (%v)", el)
	}
}
