package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"hotel_compare/internal/app"
	"hotel_compare/internal/domain"
)

var fixedNow = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func TestSearch_RequiresCity(t *testing.T) {
	store := &fakeStore{}
	svc := app.NewSearchService(store, 0, 0)

	_, err := svc.Search(context.Background(), domain.SearchQuery{City: "   "})
	if !errors.Is(err, domain.ErrInvalidQuery) {
		t.Fatalf("want ErrInvalidQuery, got %v", err)
	}
}

func TestSearch_NoHotelsSkipsRateQuery(t *testing.T) {
	store := &fakeStore{}
	svc := app.NewSearchService(store, 0, 0).WithClock(func() time.Time { return fixedNow })

	resp, err := svc.Search(context.Background(), domain.SearchQuery{City: "Atlantis"})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if store.rateCalls != 0 {
		t.Fatalf("rates queried without hotels")
	}
	if resp.Count != 0 || resp.Hotels == nil {
		t.Fatalf("want empty non-nil hotels, got %+v", resp)
	}
}

func TestSearch_DefaultsAndWindow(t *testing.T) {
	store := &fakeStore{hotels: []domain.Hotel{{ID: 1, Name: "One"}}}
	var hotels, offers int
	svc := app.NewSearchService(store, 0, 0).
		WithClock(func() time.Time { return fixedNow }).
		OnSearch(func(h, o int) { hotels, offers = h, o })

	resp, err := svc.Search(context.Background(), domain.SearchQuery{City: "paris"})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if resp.Checkin != "2026-03-10" || resp.Checkout != "2026-03-13" || resp.Guests != 2 {
		t.Fatalf("defaults: %+v", resp)
	}
	if !strings.HasPrefix(resp.SearchID, "s_") {
		t.Fatalf("search id: %q", resp.SearchID)
	}
	if store.gotLimit != app.DefaultSearchLimit {
		t.Fatalf("limit: %d", store.gotLimit)
	}
	if got := store.gotTo.Sub(store.gotFrom); got != 7*24*time.Hour {
		t.Fatalf("window: %v", got)
	}
	if hotels != 1 || offers != 0 {
		t.Fatalf("hook got hotels=%d offers=%d", hotels, offers)
	}
}

func TestSearch_GroupsRatesAndRanksHotels(t *testing.T) {
	store := &fakeStore{
		hotels: []domain.Hotel{
			{ID: 1, Name: "Empty Inn", City: "Paris"},
			{ID: 2, Name: "Pricey", City: "Paris"},
			{ID: 3, Name: "Cheap", City: "Paris"},
		},
		rates: []domain.RoomRate{
			rate(2, domain.PartnerBooking, "300"),
			rate(3, domain.PartnerAgoda, "120"),
			rate(2, domain.PartnerAgoda, "280"),
			rate(3, domain.PartnerAgoda, "110"),
			rate(3, domain.PartnerExpedia, "125"),
		},
	}
	in := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	svc := app.NewSearchService(store, 5, 0)

	resp, err := svc.Search(context.Background(), domain.SearchQuery{City: "Paris", Checkin: in, Checkout: in.AddDate(0, 0, 2), Guests: 3})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if store.gotLimit != 5 || len(store.gotIDs) != 3 || !store.gotFrom.Equal(in) {
		t.Fatalf("store args: limit=%d ids=%v from=%v", store.gotLimit, store.gotIDs, store.gotFrom)
	}
	if resp.Count != 3 || resp.Guests != 3 || resp.Checkout != "2026-04-03" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	order := []int64{3, 2, 1}
	for i, id := range order {
		if resp.Hotels[i].HotelID != id {
			t.Fatalf("position %d: got %d, want %d", i, resp.Hotels[i].HotelID, id)
		}
	}

	cheap := resp.Hotels[0]
	if len(cheap.Offers) != 2 || !cheap.LowestPrice.Amount.Equal(dec("110")) {
		t.Fatalf("cheap hotel: %+v", cheap)
	}
	if cheap.Savings == nil || !cheap.Savings.Equal(dec("16.80")) {
		t.Fatalf("savings: %v", cheap.Savings)
	}
	if resp.Hotels[2].LowestPrice != nil || len(resp.Hotels[2].Offers) != 0 {
		t.Fatalf("empty hotel: %+v", resp.Hotels[2])
	}
}

func TestSearch_StoreError(t *testing.T) {
	store := &fakeStore{err: errors.New("boom")}
	_, err := app.NewSearchService(store, 0, 0).Search(context.Background(), domain.SearchQuery{City: "Rome"})
	if err == nil || errors.Is(err, domain.ErrInvalidQuery) {
		t.Fatalf("want wrapped store error, got %v", err)
	}
}

func TestParseDate(t *testing.T) {
	d, err := app.ParseDate("2026-05-01")
	if err != nil || !d.Equal(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("date: %v %v", d, err)
	}
	d, err = app.ParseDate("2026-05-01T10:00:00+02:00")
	if err != nil || !d.Equal(time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)) {
		t.Fatalf("rfc3339: %v %v", d, err)
	}
	if d, err := app.ParseDate(""); err != nil || !d.IsZero() {
		t.Fatalf("empty: %v %v", d, err)
	}
	if _, err := app.ParseDate("01/05/2026"); !errors.Is(err, domain.ErrInvalidQuery) {
		t.Fatalf("want ErrInvalidQuery, got %v", err)
	}
}
