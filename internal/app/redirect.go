package app

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hotel_compare/internal/domain"
)

const FallbackRedirectURL = "https://www.google.com/search?q=hotel+booking"

var partnerSearchURL = map[string]string{
	domain.PartnerBooking:   "https://www.booking.com/hotel/search.html?ss=%s",
	domain.PartnerAgoda:     "https://www.agoda.com/search?city=%s",
	domain.PartnerExpedia:   "https://www.expedia.com/Hotel-Search?destination=%s",
	domain.PartnerHotelsCom: "https://www.hotels.com/search.do?q-destination=%s",
}

// PartnerURL never fails: unknown partners get the generic fallback.
func PartnerURL(partnerID, slug string) string {
	tpl, ok := partnerSearchURL[partnerID]
	if !ok {
		return FallbackRedirectURL
	}
	return fmt.Sprintf(tpl, url.QueryEscape(slug))
}

func OfferDeeplink(partnerID string, hotelID int64) string {
	return fmt.Sprintf("/v1/partners/%s/redirect/%d", url.PathEscape(partnerID), hotelID)
}

func DeviceClass(userAgent string) string {
	if strings.Contains(userAgent, "Mobile") {
		return "mobile"
	}
	return "desktop"
}

type RedirectService struct {
	hotels domain.HotelReader
	clicks domain.ClickPublisher
	now    func() time.Time
}

func NewRedirectService(h domain.HotelReader, p domain.ClickPublisher) *RedirectService {
	return &RedirectService{hotels: h, clicks: p, now: time.Now}
}

type RedirectRequest struct {
	PartnerID string
	HotelID   int64
	IP        string
	UserAgent string
}

// Resolve records the click and returns the partner URL for the hotel.
// The click is recorded before the hotel lookup, so clicks on unknown hotels
// are still counted; publishing failures are logged and never block the redirect.
// A missing hotel yields domain.ErrNotFound.
func (s *RedirectService) Resolve(ctx context.Context, r RedirectRequest) (string, error) {
	ip := r.IP
	if ip == "" {
		ip = "unknown"
	}
	c := domain.Click{
		ID:        uuid.NewString(),
		HotelID:   r.HotelID,
		PartnerID: r.PartnerID,
		IP:        ip,
		Device:    DeviceClass(r.UserAgent),
		UserAgent: r.UserAgent,
		ClickedAt: s.now().UTC(),
	}
	if s.clicks != nil {
		if err := s.clicks.PublishClick(ctx, c); err != nil {
			log.Warn().Err(err).Str("partner", c.PartnerID).Int64("hotel_id", c.HotelID).Msg("click publish failed")
		}
	}

	h, err := s.hotels.GetHotel(ctx, r.HotelID)
	if err != nil {
		return "", err
	}
	return PartnerURL(r.PartnerID, h.Slug), nil
}
