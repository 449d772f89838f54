package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"hotel_compare/internal/domain"
)

const (
	DefaultSearchLimit = 20
	DefaultRateWindow  = 7 * 24 * time.Hour
	DefaultStayNights  = 3
	DefaultGuests      = 2

	dateLayout = "2006-01-02"
)

type SearchService struct {
	store  domain.RateStore
	limit  int
	window time.Duration
	now    func() time.Time
	onDone func(hotels, offers int)
}

func NewSearchService(store domain.RateStore, limit int, window time.Duration) *SearchService {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if window <= 0 {
		window = DefaultRateWindow
	}
	return &SearchService{store: store, limit: limit, window: window, now: time.Now}
}

// WithClock replaces the clock used for default dates.
func (s *SearchService) WithClock(now func() time.Time) *SearchService {
	s.now = now
	return s
}

// OnSearch registers a hook called with the number of hotels and offers
// returned by each successful search.
func (s *SearchService) OnSearch(fn func(hotels, offers int)) *SearchService {
	s.onDone = fn
	return s
}

func (s *SearchService) Search(ctx context.Context, q domain.SearchQuery) (domain.SearchResponse, error) {
	city := strings.TrimSpace(q.City)
	if city == "" {
		return domain.SearchResponse{}, fmt.Errorf("%w: city is required", domain.ErrInvalidQuery)
	}
	checkin, checkout, guests := s.defaults(q)

	hotels, err := s.store.SearchHotels(ctx, city, s.limit)
	if err != nil {
		return domain.SearchResponse{}, fmt.Errorf("search hotels: %w", err)
	}

	byHotel := map[int64][]domain.RoomRate{}
	if len(hotels) > 0 {
		ids := make([]int64, len(hotels))
		for i, h := range hotels {
			ids[i] = h.ID
		}
		rates, err := s.store.ListRates(ctx, ids, checkin, checkin.Add(s.window))
		if err != nil {
			return domain.SearchResponse{}, fmt.Errorf("list rates: %w", err)
		}
		for _, r := range rates {
			byHotel[r.HotelID] = append(byHotel[r.HotelID], r)
		}
	}

	results := make([]domain.HotelSearchResult, 0, len(hotels))
	offers := 0
	for _, h := range hotels {
		res := BuildResult(h, byHotel[h.ID])
		offers += len(res.Offers)
		results = append(results, res)
	}
	RankHotels(results)

	if s.onDone != nil {
		s.onDone(len(results), offers)
	}

	return domain.SearchResponse{
		SearchID: "s_" + uuid.NewString(),
		City:     city,
		Checkin:  checkin.Format(dateLayout),
		Checkout: checkout.Format(dateLayout),
		Guests:   guests,
		Count:    len(results),
		Hotels:   results,
	}, nil
}

func (s *SearchService) defaults(q domain.SearchQuery) (time.Time, time.Time, int) {
	checkin := q.Checkin
	if checkin.IsZero() {
		checkin = s.now().UTC()
	}
	checkout := q.Checkout
	if checkout.IsZero() {
		checkout = s.now().UTC().AddDate(0, 0, DefaultStayNights)
	}
	guests := q.Guests
	if guests <= 0 {
		guests = DefaultGuests
	}
	return checkin, checkout, guests
}

// ParseDate accepts YYYY-MM-DD or RFC3339; empty input yields the zero time.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad date %q", domain.ErrInvalidQuery, s)
	}
	return t.UTC(), nil
}
