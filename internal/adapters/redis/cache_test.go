package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	redisad "hotel_compare/internal/adapters/redis"
	"hotel_compare/internal/domain"
)

func newCache(t *testing.T) (*redisad.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := redisad.NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestCache_SetGetDel(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	var h domain.Hotel
	ok, err := c.Get(ctx, "hotel:1", &h)
	if ok || err != nil {
		t.Fatalf("empty cache: ok=%v err=%v", ok, err)
	}

	in := domain.Hotel{ID: 1, Name: "Ginza Business Hotel", Slug: "ginza-business-hotel", BasePrice: decimal.RequireFromString("150.00")}
	if err := c.Set(ctx, "hotel:1", in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}
	if ttl := mr.TTL("hotel:1"); ttl != time.Minute {
		t.Fatalf("ttl: %v", ttl)
	}

	ok, err = c.Get(ctx, "hotel:1", &h)
	if !ok || err != nil {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if h.Slug != in.Slug || !h.BasePrice.Equal(in.BasePrice) {
		t.Fatalf("round trip: %+v", h)
	}

	if err := c.Del(ctx, "hotel:1"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if mr.Exists("hotel:1") {
		t.Fatalf("key still present")
	}
}

func TestCache_ExpiresAfterTTL(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, "partners", domain.Partners, 5); err != nil {
		t.Fatalf("set: %v", err)
	}
	mr.FastForward(6 * time.Second)

	var ps []domain.Partner
	if ok, _ := c.Get(ctx, "partners", &ps); ok {
		t.Fatalf("expected expiry")
	}
}

func TestCache_CorruptEntryIsMiss(t *testing.T) {
	c, mr := newCache(t)
	if err := mr.Set("hotel:9", "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	var h domain.Hotel
	ok, err := c.Get(context.Background(), "hotel:9", &h)
	if ok || err == nil {
		t.Fatalf("want miss with error, got ok=%v err=%v", ok, err)
	}
}

func TestCache_Ping(t *testing.T) {
	c, mr := newCache(t)
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
	mr.Close()
	if err := c.Ping(context.Background()); err == nil {
		t.Fatalf("want ping error after close")
	}
}
