package app

import (
	"context"
	"fmt"

	"hotel_compare/internal/domain"
)

// QuoteService prices a hotel live against the catalogue's active partners,
// bypassing the persisted rates.
type QuoteService struct {
	hotels   domain.HotelReader
	partners domain.PartnerReader
	sim      domain.PriceSimulator
}

func NewQuoteService(h domain.HotelReader, p domain.PartnerReader, sim domain.PriceSimulator) *QuoteService {
	return &QuoteService{hotels: h, partners: p, sim: sim}
}

func (s *QuoteService) Quotes(ctx context.Context, hotelID int64) (domain.QuotesResponse, error) {
	h, err := s.hotels.GetHotel(ctx, hotelID)
	if err != nil {
		return domain.QuotesResponse{}, err
	}
	ps, err := s.partners.ListPartners(ctx)
	if err != nil {
		return domain.QuotesResponse{}, fmt.Errorf("list partners: %w", err)
	}
	currency := domain.CurrencyForCountry(h.Country)

	offers := make([]domain.PartnerOffer, 0, len(ps))
	for _, p := range ps {
		if !p.Active {
			continue
		}
		offers = append(offers, offerFromQuote(h, p.ID, currency, s.sim.Quote(p.ID, h.BasePrice)))
	}
	offers = RankOffers(offers)

	return domain.QuotesResponse{
		HotelID:     h.ID,
		Slug:        h.Slug,
		LowestPrice: LowestPriceOf(offers),
		Savings:     SavingsOf(offers),
		Offers:      offers,
	}, nil
}
