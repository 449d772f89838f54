package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel_compare/internal/app"
	"hotel_compare/internal/domain"
)

// ---- catalogue ----

func TestGetHotel_CacheMissThenHit(t *testing.T) {
	repo := &fakeCatalog{hotels: map[int64]domain.Hotel{
		42: {ID: 42, Name: "Tower Bridge Hotel", Slug: "tower-bridge-hotel", BasePrice: dec("200")},
	}}
	cache := &fakeCache{}
	svc := app.NewCatalogService(repo, cache, 10*time.Minute)

	for i := 0; i < 2; i++ {
		h, err := svc.GetHotel(context.Background(), 42)
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		if h.Slug != "tower-bridge-hotel" || !h.BasePrice.Equal(dec("200")) {
			t.Fatalf("unexpected hotel: %+v", h)
		}
	}
	if repo.hotelCalls != 1 {
		t.Fatalf("want 1 repo call, got %d", repo.hotelCalls)
	}
	if _, ok := cache.store[app.HotelCacheKey(42)]; !ok {
		t.Fatalf("hotel not cached")
	}
}

func TestGetHotel_NotFoundIsNotCached(t *testing.T) {
	cache := &fakeCache{}
	svc := app.NewCatalogService(&fakeCatalog{}, cache, time.Minute)

	if _, err := svc.GetHotel(context.Background(), 7); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if len(cache.store) != 0 {
		t.Fatalf("miss should not be cached")
	}
}

func TestListPartners_ActiveOnly(t *testing.T) {
	ps := append([]domain.Partner{}, domain.Partners...)
	ps[1].Active = false
	svc := app.NewCatalogService(&fakeCatalog{partners: ps}, nil, time.Minute)

	got, err := svc.ListPartners(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("want 3 active partners, got %d", len(got))
	}
	for _, p := range got {
		if p.ID == domain.PartnerAgoda {
			t.Fatalf("inactive partner listed")
		}
	}
}

func TestDestinations_ShortTermUsesPopular(t *testing.T) {
	repo := &fakeCatalog{
		popular: []domain.Destination{{City: "Paris", IsPopular: true}},
		matches: []domain.Destination{{City: "Tokyo"}},
	}
	cache := &fakeCache{}
	svc := app.NewCatalogService(repo, cache, time.Minute)
	ctx := context.Background()

	got, _ := svc.Destinations(ctx, "t")
	if len(got) != 1 || got[0].City != "Paris" {
		t.Fatalf("short term: %+v", got)
	}
	got, _ = svc.Destinations(ctx, " TOK ")
	if len(got) != 1 || got[0].City != "Tokyo" {
		t.Fatalf("search: %+v", got)
	}
	// cached: no further repo hits
	_, _ = svc.Destinations(ctx, "tok")
	_, _ = svc.Destinations(ctx, "")

	if len(repo.searchTerms) != 2 || repo.searchTerms[0] != "" || repo.searchTerms[1] != "tok" {
		t.Fatalf("repo calls: %q", repo.searchTerms)
	}
}

// ---- quotes ----

func TestQuotes_RankedAcrossPartners(t *testing.T) {
	repo := &fakeCatalog{
		hotels: map[int64]domain.Hotel{
			3: {ID: 3, Slug: "shibuya-crossing-hotel", Country: "Japan", BasePrice: dec("200.00")},
		},
		partners: domain.Partners,
	}
	svc := app.NewQuoteService(repo, repo, fixedSim{})

	q, err := svc.Quotes(context.Background(), 3)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(q.Offers) != len(domain.Partners) {
		t.Fatalf("want one offer per partner, got %d", len(q.Offers))
	}
	// equal prices keep partner priority order
	if q.Offers[0].PartnerID != domain.PartnerBooking || !q.Offers[0].BestPrice {
		t.Fatalf("best offer: %+v", q.Offers[0])
	}
	o := q.Offers[0]
	if o.Currency != "JPY" || !o.Taxes.Equal(dec("24.00")) || !o.TotalPrice.Equal(dec("224.00")) {
		t.Fatalf("offer: %+v", o)
	}
	if q.LowestPrice == nil || !q.LowestPrice.Amount.Equal(dec("200")) {
		t.Fatalf("lowest: %+v", q.LowestPrice)
	}
	if q.Savings == nil || !q.Savings.IsZero() {
		t.Fatalf("savings: %v", q.Savings)
	}
}

func TestQuotes_OnlyActivePartners(t *testing.T) {
	ps := append([]domain.Partner{}, domain.Partners...)
	ps[0].Active = false // booking
	repo := &fakeCatalog{
		hotels:   map[int64]domain.Hotel{3: {ID: 3, Slug: "s", BasePrice: dec("100")}},
		partners: ps,
	}
	svc := app.NewQuoteService(repo, app.NewCatalogService(repo, nil, time.Minute), fixedSim{})

	q, err := svc.Quotes(context.Background(), 3)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(q.Offers) != len(ps)-1 {
		t.Fatalf("want %d offers, got %d", len(ps)-1, len(q.Offers))
	}
	for _, o := range q.Offers {
		if o.PartnerID == domain.PartnerBooking {
			t.Fatalf("inactive partner quoted")
		}
	}
}

func TestQuotes_UnknownHotel(t *testing.T) {
	repo := &fakeCatalog{}
	svc := app.NewQuoteService(repo, repo, fixedSim{})
	if _, err := svc.Quotes(context.Background(), 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

// ---- redirect ----

func TestPartnerURL(t *testing.T) {
	cases := map[string]string{
		domain.PartnerBooking:   "https://www.booking.com/hotel/search.html?ss=le-grand-hotel-paris",
		domain.PartnerAgoda:     "https://www.agoda.com/search?city=le-grand-hotel-paris",
		domain.PartnerExpedia:   "https://www.expedia.com/Hotel-Search?destination=le-grand-hotel-paris",
		domain.PartnerHotelsCom: "https://www.hotels.com/search.do?q-destination=le-grand-hotel-paris",
		"trivago":               app.FallbackRedirectURL,
	}
	for p, want := range cases {
		if got := app.PartnerURL(p, "le-grand-hotel-paris"); got != want {
			t.Fatalf("%s: got %q, want %q", p, got, want)
		}
	}
	if got := app.PartnerURL(domain.PartnerAgoda, "a&b"); got != "https://www.agoda.com/search?city=a%26b" {
		t.Fatalf("escaping: %q", got)
	}
}

func TestDeviceClass(t *testing.T) {
	if app.DeviceClass("Mozilla/5.0 (iPhone) Mobile/15E148") != "mobile" {
		t.Fatalf("want mobile")
	}
	if app.DeviceClass("Mozilla/5.0 (X11; Linux x86_64)") != "desktop" {
		t.Fatalf("want desktop")
	}
}

func TestRedirect_PublishesClickAndResolves(t *testing.T) {
	repo := &fakeCatalog{hotels: map[int64]domain.Hotel{5: {ID: 5, Slug: "westminster-inn"}}}
	pub := &fakePublisher{}
	svc := app.NewRedirectService(repo, pub)

	u, err := svc.Resolve(context.Background(), app.RedirectRequest{
		PartnerID: domain.PartnerExpedia, HotelID: 5, UserAgent: "Mobile Safari",
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if u != "https://www.expedia.com/Hotel-Search?destination=westminster-inn" {
		t.Fatalf("url: %q", u)
	}
	if len(pub.clicks) != 1 {
		t.Fatalf("want 1 click, got %d", len(pub.clicks))
	}
	c := pub.clicks[0]
	if c.ID == "" || c.IP != "unknown" || c.Device != "mobile" || c.HotelID != 5 || c.ClickedAt.IsZero() {
		t.Fatalf("click: %+v", c)
	}
}

func TestRedirect_PublishFailureDoesNotBlock(t *testing.T) {
	repo := &fakeCatalog{hotels: map[int64]domain.Hotel{5: {ID: 5, Slug: "x"}}}
	svc := app.NewRedirectService(repo, &fakePublisher{err: errors.New("broker down")})

	u, err := svc.Resolve(context.Background(), app.RedirectRequest{PartnerID: "nope", HotelID: 5})
	if err != nil || u != app.FallbackRedirectURL {
		t.Fatalf("got %q, %v", u, err)
	}
}

func TestRedirect_UnknownHotelStillLogsClick(t *testing.T) {
	pub := &fakePublisher{}
	svc := app.NewRedirectService(&fakeCatalog{}, pub)

	_, err := svc.Resolve(context.Background(), app.RedirectRequest{PartnerID: domain.PartnerBooking, HotelID: 99, IP: "10.0.0.1"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if len(pub.clicks) != 1 || pub.clicks[0].IP != "10.0.0.1" {
		t.Fatalf("clicks: %+v", pub.clicks)
	}
}

// ---- seeding ----

func TestStayDates(t *testing.T) {
	stays := app.StayDates(fixedNow, 12)
	if len(stays) != 12 {
		t.Fatalf("want 12 stays, got %d", len(stays))
	}
	if !stays[0].Checkin.Equal(time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("first checkin: %v", stays[0].Checkin)
	}
	last := stays[11]
	if !last.Checkin.Equal(time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("last checkin: %v", last.Checkin)
	}
	for _, s := range stays {
		if s.Checkout.Sub(s.Checkin) != 72*time.Hour {
			t.Fatalf("stay length: %v", s.Checkout.Sub(s.Checkin))
		}
	}
}

func TestSeedHotel_WritesRatesAndInvalidates(t *testing.T) {
	w := &fakeWriter{}
	cache := &fakeCache{}
	svc := app.NewSeedService(w, fixedSim{refundable: true}, cache, 2).WithClock(func() time.Time { return fixedNow })

	n, err := svc.SeedHotel(context.Background(), domain.Hotel{Name: "Dubai Luxury Resort", Country: "United Arab Emirates", BasePrice: dec("400")})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if n != 2*len(domain.Partners) || len(w.rates) != n {
		t.Fatalf("rates: n=%d stored=%d", n, len(w.rates))
	}
	if w.hotels[0].Slug != "dubai-luxury-resort" {
		t.Fatalf("slug: %q", w.hotels[0].Slug)
	}
	if w.roomTypes[0].Name != "Deluxe King Room" || w.roomTypes[0].HotelID != 1 {
		t.Fatalf("room type: %+v", w.roomTypes[0])
	}
	r := w.rates[0]
	if r.HotelID != 1 || r.RoomTypeID != 101 || r.Currency != "AED" || !r.Refundable || r.Availability != 5 {
		t.Fatalf("rate: %+v", r)
	}
	if r.BookingURL != "https://www.booking.com/hotel/dubai-luxury-resort" {
		t.Fatalf("booking url: %q", r.BookingURL)
	}
	if !r.Taxes.Equal(dec("48")) {
		t.Fatalf("taxes: %s", r.Taxes)
	}
	if len(cache.deleted) != 1 || cache.deleted[0] != app.HotelCacheKey(1) {
		t.Fatalf("invalidated: %v", cache.deleted)
	}
}

func TestSeedHotel_InsertFailure(t *testing.T) {
	w := &fakeWriter{failRates: true}
	cache := &fakeCache{}
	_, err := app.NewSeedService(w, fixedSim{}, cache, 1).SeedHotel(context.Background(), domain.Hotel{Name: "X"})
	if err == nil {
		t.Fatalf("want error")
	}
	if len(cache.deleted) != 0 {
		t.Fatalf("cache should not be touched on failure")
	}
}

func TestSeedCatalogue(t *testing.T) {
	w := &fakeWriter{}
	cache := &fakeCache{}
	svc := app.NewSeedService(w, fixedSim{}, cache, 1)
	ctx := context.Background()

	if err := svc.SeedPartners(ctx, domain.Partners); err != nil {
		t.Fatalf("partners: %v", err)
	}
	if err := svc.SeedDestinations(ctx, []domain.Destination{{City: "Rome", Country: "Italy"}}); err != nil {
		t.Fatalf("destinations: %v", err)
	}
	if len(w.partners) != 4 || len(w.destinations) != 1 {
		t.Fatalf("writes: %d partners, %d destinations", len(w.partners), len(w.destinations))
	}
	if len(cache.deleted) != 2 {
		t.Fatalf("invalidated: %v", cache.deleted)
	}
}

// ---- clicks ----

func TestClickRecord(t *testing.T) {
	repo := &fakeClickRepo{}
	var stored []string
	svc := app.NewClickService(repo).OnStore(func(p string) { stored = append(stored, p) })
	ctx := context.Background()

	err := svc.Record(ctx, domain.Click{ID: "c1", HotelID: 2, PartnerID: domain.PartnerAgoda, UserAgent: "Mobile"})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if repo.clicks[0].Device != "mobile" || len(stored) != 1 {
		t.Fatalf("stored: %+v %v", repo.clicks, stored)
	}

	if err := svc.Record(ctx, domain.Click{ID: "c2", PartnerID: "x"}); !errors.Is(err, app.ErrBadClick) {
		t.Fatalf("want ErrBadClick, got %v", err)
	}

	repo.err = errors.New("db down")
	err = svc.Record(ctx, domain.Click{ID: "c3", HotelID: 2, PartnerID: "x"})
	if err == nil || errors.Is(err, app.ErrBadClick) {
		t.Fatalf("want storage error, got %v", err)
	}
}
