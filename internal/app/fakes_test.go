package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"hotel_compare/internal/domain"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr[T any](v T) *T { return &v }

// ---- rate store ----

type fakeStore struct {
	hotels    []domain.Hotel
	rates     []domain.RoomRate
	err       error
	rateCalls int
	gotIDs    []int64
	gotFrom   time.Time
	gotTo     time.Time
	gotLimit  int
}

func (f *fakeStore) SearchHotels(ctx context.Context, city string, limit int) ([]domain.Hotel, error) {
	f.gotLimit = limit
	return f.hotels, f.err
}

func (f *fakeStore) ListRates(ctx context.Context, ids []int64, from, to time.Time) ([]domain.RoomRate, error) {
	f.rateCalls++
	f.gotIDs, f.gotFrom, f.gotTo = ids, from, to
	return f.rates, nil
}

// ---- catalogue ----

type fakeCatalog struct {
	hotels      map[int64]domain.Hotel
	partners    []domain.Partner
	popular     []domain.Destination
	matches     []domain.Destination
	hotelCalls  int
	searchTerms []string
}

func (f *fakeCatalog) GetHotel(ctx context.Context, id int64) (domain.Hotel, error) {
	f.hotelCalls++
	h, ok := f.hotels[id]
	if !ok {
		return domain.Hotel{}, domain.ErrNotFound
	}
	return h, nil
}

func (f *fakeCatalog) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	return f.partners, nil
}

func (f *fakeCatalog) SearchDestinations(ctx context.Context, q string, limit int) ([]domain.Destination, error) {
	f.searchTerms = append(f.searchTerms, q)
	return f.matches, nil
}

func (f *fakeCatalog) PopularDestinations(ctx context.Context, limit int) ([]domain.Destination, error) {
	f.searchTerms = append(f.searchTerms, "")
	return f.popular, nil
}

// ---- cache ----

// fakeCache round-trips through JSON like the redis adapter does.
type fakeCache struct {
	store   map[string][]byte
	deleted []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	c.deleted = append(c.deleted, key)
	return nil
}

// ---- writer ----

type fakeWriter struct {
	mu           sync.Mutex
	partners     []domain.Partner
	destinations []domain.Destination
	hotels       []domain.Hotel
	roomTypes    []domain.RoomType
	rates        []domain.RoomRate
	nextID       int64
	failRates    bool
}

func (w *fakeWriter) UpsertPartner(ctx context.Context, p domain.Partner) error {
	w.partners = append(w.partners, p)
	return nil
}

func (w *fakeWriter) UpsertDestination(ctx context.Context, d domain.Destination) error {
	w.destinations = append(w.destinations, d)
	return nil
}

func (w *fakeWriter) UpsertHotel(ctx context.Context, h domain.Hotel) (int64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextID++
	h.ID = w.nextID
	w.hotels = append(w.hotels, h)
	return h.ID, nil
}

func (w *fakeWriter) UpsertRoomType(ctx context.Context, rt domain.RoomType) (int64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.roomTypes = append(w.roomTypes, rt)
	return int64(100 + len(w.roomTypes)), nil
}

func (w *fakeWriter) InsertRates(ctx context.Context, rs []domain.RoomRate) error {
	if w.failRates {
		return errors.New("db down")
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.rates = append(w.rates, rs...)
	return nil
}

// ---- simulator ----

// fixedSim quotes the base price unchanged with 12% taxes.
type fixedSim struct{ refundable bool }

func (s fixedSim) Quote(partnerID string, base decimal.Decimal) domain.Quote {
	taxes := base.Mul(dec("0.12")).Round(2)
	return domain.Quote{
		Price:        base,
		Taxes:        taxes,
		Total:        base.Add(taxes),
		Refundable:   s.refundable,
		Cancellation: "Non-refundable",
		Availability: 5,
	}
}

// ---- clicks ----

type fakePublisher struct {
	clicks []domain.Click
	err    error
}

func (p *fakePublisher) PublishClick(ctx context.Context, c domain.Click) error {
	p.clicks = append(p.clicks, c)
	return p.err
}

type fakeClickRepo struct {
	clicks []domain.Click
	err    error
}

func (r *fakeClickRepo) InsertClick(ctx context.Context, c domain.Click) error {
	if r.err != nil {
		return r.err
	}
	r.clicks = append(r.clicks, c)
	return nil
}

// rate builds a rate row for partner p at the given base price with 12% taxes.
func rate(hotelID int64, p, price string) domain.RoomRate {
	base := dec(price)
	return domain.RoomRate{
		HotelID:      hotelID,
		PartnerID:    p,
		RoomTypeName: "Deluxe King Room",
		BasePrice:    base,
		Taxes:        base.Mul(dec("0.12")).Round(2),
		Currency:     "EUR",
	}
}
