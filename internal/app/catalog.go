package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"hotel_compare/internal/domain"
)

const (
	destinationLimit   = 10
	minDestinationTerm = 2

	partnersCacheKey = "partners"
)

func HotelCacheKey(id int64) string { return fmt.Sprintf("hotel:%d", id) }

func destinationsCacheKey(q string) string {
	if q == "" {
		return "destinations:popular"
	}
	return "destinations:q:" + q
}

// CatalogService serves the slow-changing catalogue (hotels, partners,
// destinations) with cache-aside. Rates and offers never go through it.
type CatalogService struct {
	repo     domain.CatalogReader
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewCatalogService(r domain.CatalogReader, c domain.Cache, ttl time.Duration) *CatalogService {
	return &CatalogService{repo: r, cache: c, cacheTTL: ttl}
}

func (s *CatalogService) GetHotel(ctx context.Context, id int64) (domain.Hotel, error) {
	key := HotelCacheKey(id)
	var h domain.Hotel
	if s.get(ctx, key, &h) {
		return h, nil
	}
	h, err := s.repo.GetHotel(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}
	s.set(ctx, key, h)
	return h, nil
}

// ListPartners returns active partners ordered by priority.
func (s *CatalogService) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	var out []domain.Partner
	if s.get(ctx, partnersCacheKey, &out) {
		return out, nil
	}
	ps, err := s.repo.ListPartners(ctx)
	if err != nil {
		return nil, err
	}
	out = make([]domain.Partner, 0, len(ps))
	for _, p := range ps {
		if p.Active {
			out = append(out, p)
		}
	}
	s.set(ctx, partnersCacheKey, out)
	return out, nil
}

// Destinations falls back to the popular list for terms shorter than two
// characters.
func (s *CatalogService) Destinations(ctx context.Context, q string) ([]domain.Destination, error) {
	q = strings.ToLower(strings.TrimSpace(q))
	if len([]rune(q)) < minDestinationTerm {
		q = ""
	}
	key := destinationsCacheKey(q)

	var out []domain.Destination
	if s.get(ctx, key, &out) {
		return out, nil
	}
	var err error
	if q == "" {
		out, err = s.repo.PopularDestinations(ctx, destinationLimit)
	} else {
		out, err = s.repo.SearchDestinations(ctx, q, destinationLimit)
	}
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Destination{}
	}
	s.set(ctx, key, out)
	return out, nil
}

func (s *CatalogService) get(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	ok, _ := s.cache.Get(ctx, key, dst)
	return ok
}

func (s *CatalogService) set(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, v, int(s.cacheTTL.Seconds())); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}
