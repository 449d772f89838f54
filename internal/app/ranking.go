package app

import (
	"sort"

	"github.com/shopspring/decimal"

	"hotel_compare/internal/domain"
)

// RankOffers returns a copy sorted ascending by base price (stable) with
// only the first offer flagged as best price.
func RankOffers(in []domain.PartnerOffer) []domain.PartnerOffer {
	out := make([]domain.PartnerOffer, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Price.LessThan(out[j].Price)
	})
	for i := range out {
		out[i].BestPrice = i == 0
	}
	return out
}

// LowestPriceOf expects ranked offers; nil means no availability.
func LowestPriceOf(ranked []domain.PartnerOffer) *domain.LowestPrice {
	if len(ranked) == 0 {
		return nil
	}
	best := ranked[0]
	return &domain.LowestPrice{Amount: best.Price, Currency: best.Currency, PartnerID: best.PartnerID}
}

// SavingsOf is the spread between the highest and lowest total price across
// all offers. Base-price order and total-price order can diverge when taxes
// differ, so both ends are scanned instead of reading the first and last offer.
func SavingsOf(offers []domain.PartnerOffer) *decimal.Decimal {
	if len(offers) < 2 {
		return nil
	}
	lo, hi := offers[0].TotalPrice, offers[0].TotalPrice
	for _, o := range offers[1:] {
		if o.TotalPrice.LessThan(lo) {
			lo = o.TotalPrice
		}
		if o.TotalPrice.GreaterThan(hi) {
			hi = o.TotalPrice
		}
	}
	s := hi.Sub(lo)
	return &s
}

// RankHotels sorts in place by lowest price; hotels without offers go last.
func RankHotels(rs []domain.HotelSearchResult) {
	sort.SliceStable(rs, func(i, j int) bool {
		a, b := rs[i].LowestPrice, rs[j].LowestPrice
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		}
		return a.Amount.LessThan(b.Amount)
	})
}
