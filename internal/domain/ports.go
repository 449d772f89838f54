package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RateStore is the read side the search path depends on.
type RateStore interface {
	// SearchHotels matches city as a case-insensitive substring.
	SearchHotels(ctx context.Context, city string, limit int) ([]Hotel, error)
	// ListRates returns rows for the given hotels with checkin in [from, to].
	ListRates(ctx context.Context, hotelIDs []int64, from, to time.Time) ([]RoomRate, error)
}

type HotelReader interface {
	GetHotel(ctx context.Context, id int64) (Hotel, error)
}

type DestinationReader interface {
	SearchDestinations(ctx context.Context, q string, limit int) ([]Destination, error)
	PopularDestinations(ctx context.Context, limit int) ([]Destination, error)
}

type PartnerReader interface {
	ListPartners(ctx context.Context) ([]Partner, error)
}

// CatalogReader is the read side behind hotel lookups, partners and destinations.
type CatalogReader interface {
	HotelReader
	DestinationReader
	PartnerReader
}

// CatalogWriter is used by the seeder; rates are insert-only.
type CatalogWriter interface {
	UpsertPartner(ctx context.Context, p Partner) error
	UpsertDestination(ctx context.Context, d Destination) error
	UpsertHotel(ctx context.Context, h Hotel) (int64, error)
	UpsertRoomType(ctx context.Context, rt RoomType) (int64, error)
	InsertRates(ctx context.Context, rs []RoomRate) error
}

type ClickRepository interface {
	InsertClick(ctx context.Context, c Click) error
}

type ClickPublisher interface {
	PublishClick(ctx context.Context, c Click) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// PriceSimulator stands in for a live OTA pricing feed.
type PriceSimulator interface {
	Quote(partnerID string, base decimal.Decimal) Quote
}
