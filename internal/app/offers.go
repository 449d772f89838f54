package app

import (
	"hotel_compare/internal/domain"
)

// defaultRoomType labels rates whose room type name is unknown.
const defaultRoomType = "Deluxe King Room"

// AggregateOffers keeps one offer per partner: the row with the strictly
// lowest base price, first row winning on ties. Offers are emitted in
// first-seen partner order; ranking is applied separately.
func AggregateOffers(hotelID int64, rates []domain.RoomRate) []domain.PartnerOffer {
	out := make([]domain.PartnerOffer, 0, len(domain.Partners))
	pos := make(map[string]int, len(domain.Partners))

	for _, r := range rates {
		i, seen := pos[r.PartnerID]
		if seen && !r.BasePrice.LessThan(out[i].Price) {
			continue
		}
		o := offerFromRate(hotelID, r)
		if seen {
			out[i] = o
			continue
		}
		pos[r.PartnerID] = len(out)
		out = append(out, o)
	}
	return out
}

// BuildResult derives a hotel's ranked offers, lowest price and savings.
func BuildResult(h domain.Hotel, rates []domain.RoomRate) domain.HotelSearchResult {
	offers := RankOffers(AggregateOffers(h.ID, rates))
	res := toSearchResult(h)
	res.Offers = offers
	res.LowestPrice = LowestPriceOf(offers)
	res.Savings = SavingsOf(offers)
	return res
}
