package app

import (
	"context"
	"fmt"
	"time"

	"hotel_compare/internal/domain"
)

const (
	firstStayOffsetDays = 7
	DefaultSeedWeeks    = 12
)

type Stay struct {
	Checkin  time.Time
	Checkout time.Time
}

// StayDates returns weekly 3-night stays, the first one a week after day.
func StayDates(day time.Time, weeks int) []Stay {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	out := make([]Stay, 0, weeks)
	for w := 0; w < weeks; w++ {
		in := start.AddDate(0, 0, firstStayOffsetDays+7*w)
		out = append(out, Stay{Checkin: in, Checkout: in.AddDate(0, 0, DefaultStayNights)})
	}
	return out
}

func BookingURL(partnerID, slug string) string {
	return fmt.Sprintf("https://www.%s.com/hotel/%s", partnerID, slug)
}

// SeedService writes the catalogue and a window of simulated partner rates.
type SeedService struct {
	repo  domain.CatalogWriter
	sim   domain.PriceSimulator
	cache domain.Cache
	weeks int
	now   func() time.Time
}

func NewSeedService(r domain.CatalogWriter, sim domain.PriceSimulator, cache domain.Cache, weeks int) *SeedService {
	if weeks <= 0 {
		weeks = DefaultSeedWeeks
	}
	return &SeedService{repo: r, sim: sim, cache: cache, weeks: weeks, now: time.Now}
}

// WithClock replaces the clock used to anchor stay dates.
func (s *SeedService) WithClock(now func() time.Time) *SeedService {
	s.now = now
	return s
}

func (s *SeedService) SeedPartners(ctx context.Context, ps []domain.Partner) error {
	for _, p := range ps {
		if err := s.repo.UpsertPartner(ctx, p); err != nil {
			return fmt.Errorf("upsert partner %s: %w", p.ID, err)
		}
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, partnersCacheKey)
	}
	return nil
}

func (s *SeedService) SeedDestinations(ctx context.Context, ds []domain.Destination) error {
	for _, d := range ds {
		if err := s.repo.UpsertDestination(ctx, d); err != nil {
			return fmt.Errorf("upsert destination %s: %w", d.City, err)
		}
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, destinationsCacheKey(""))
	}
	return nil
}

// SeedHotel upserts the hotel and its room type, then inserts one rate per
// partner per stay. Returns the number of rates written.
func (s *SeedService) SeedHotel(ctx context.Context, h domain.Hotel) (int, error) {
	if h.Slug == "" {
		h.Slug = Slugify(h.Name)
	}
	id, err := s.repo.UpsertHotel(ctx, h)
	if err != nil {
		return 0, fmt.Errorf("upsert hotel %q: %w", h.Name, err)
	}
	h.ID = id

	rtID, err := s.repo.UpsertRoomType(ctx, domain.RoomType{HotelID: id, Name: defaultRoomType})
	if err != nil {
		return 0, fmt.Errorf("upsert room type for hotel %d: %w", id, err)
	}

	currency := domain.CurrencyForCountry(h.Country)
	stays := StayDates(s.now(), s.weeks)
	rates := make([]domain.RoomRate, 0, len(stays)*len(domain.Partners))
	for _, st := range stays {
		for _, p := range domain.Partners {
			q := s.sim.Quote(p.ID, h.BasePrice)
			rates = append(rates, domain.RoomRate{
				HotelID:      id,
				RoomTypeID:   rtID,
				RoomTypeName: defaultRoomType,
				PartnerID:    p.ID,
				Checkin:      st.Checkin,
				Checkout:     st.Checkout,
				BasePrice:    q.Price,
				Taxes:        q.Taxes,
				Currency:     currency,
				Refundable:   q.Refundable,
				Availability: q.Availability,
				BookingURL:   BookingURL(p.ID, h.Slug),
			})
		}
	}
	if err := s.repo.InsertRates(ctx, rates); err != nil {
		return 0, fmt.Errorf("insert rates for hotel %d: %w", id, err)
	}

	// hotel row changed; drop the cached lookup
	if s.cache != nil {
		_ = s.cache.Del(ctx, HotelCacheKey(id))
	}
	return len(rates), nil
}
