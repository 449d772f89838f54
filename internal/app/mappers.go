package app

import (
	"strings"
	"unicode"

	"hotel_compare/internal/domain"
)

const placeholderImage = "/images/hotel-placeholder.jpg"

// defaultReviewScore is shown for hotels that have no review score yet.
const defaultReviewScore = 4.0

/********** rate -> offer **********/

func offerFromRate(hotelID int64, r domain.RoomRate) domain.PartnerOffer {
	roomType := strings.TrimSpace(r.RoomTypeName)
	if roomType == "" {
		roomType = defaultRoomType
	}
	cancellation := "Non-refundable"
	if r.Refundable {
		cancellation = "Free cancellation"
	}
	return domain.PartnerOffer{
		PartnerID:    r.PartnerID,
		PartnerName:  domain.PartnerName(r.PartnerID),
		RoomType:     roomType,
		Price:        r.BasePrice,
		Currency:     r.Currency,
		Taxes:        r.Taxes,
		TotalPrice:   r.BasePrice.Add(r.Taxes),
		Refundable:   r.Refundable,
		Cancellation: cancellation,
		Deeplink:     OfferDeeplink(r.PartnerID, hotelID),
	}
}

/********** quote -> offer **********/

func offerFromQuote(h domain.Hotel, partnerID, currency string, q domain.Quote) domain.PartnerOffer {
	return domain.PartnerOffer{
		PartnerID:    partnerID,
		PartnerName:  domain.PartnerName(partnerID),
		RoomType:     defaultRoomType,
		Price:        q.Price,
		Currency:     currency,
		Taxes:        q.Taxes,
		TotalPrice:   q.Total,
		Refundable:   q.Refundable,
		Cancellation: q.Cancellation,
		Deeplink:     OfferDeeplink(partnerID, h.ID),
	}
}

/********** hotel -> result **********/

func toSearchResult(h domain.Hotel) domain.HotelSearchResult {
	score := defaultReviewScore
	if h.ReviewScore != nil && *h.ReviewScore > 0 {
		score = *h.ReviewScore
	}
	img := placeholderImage
	if h.PrimaryImage != nil && *h.PrimaryImage != "" {
		img = *h.PrimaryImage
	}
	return domain.HotelSearchResult{
		HotelID:      h.ID,
		Name:         h.Name,
		Slug:         h.Slug,
		StarRating:   h.StarRating,
		ReviewScore:  score,
		ReviewCount:  h.ReviewCount,
		City:         h.City,
		Country:      h.Country,
		PrimaryImage: img,
		Description:  h.Description,
		PropertyType: h.PropertyType,
		Offers:       []domain.PartnerOffer{},
	}
}

// Slugify lowercases name and joins alphanumeric runs with dashes.
func Slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
