package app

import (
	"context"
	"errors"
	"fmt"

	"hotel_compare/internal/domain"
)

var ErrBadClick = errors.New("bad click event")

// ClickService persists click events delivered by the queue consumer.
type ClickService struct {
	repo    domain.ClickRepository
	onStore func(partnerID string)
}

func NewClickService(r domain.ClickRepository) *ClickService {
	return &ClickService{repo: r}
}

// OnStore registers a hook called after each stored click.
func (s *ClickService) OnStore(fn func(partnerID string)) *ClickService {
	s.onStore = fn
	return s
}

// Record rejects events that can never be stored; callers should drop
// them rather than retry.
func (s *ClickService) Record(ctx context.Context, c domain.Click) error {
	if c.ID == "" || c.PartnerID == "" || c.HotelID <= 0 {
		return fmt.Errorf("%w: id=%q partner=%q hotel=%d", ErrBadClick, c.ID, c.PartnerID, c.HotelID)
	}
	if c.Device == "" {
		c.Device = DeviceClass(c.UserAgent)
	}
	if err := s.repo.InsertClick(ctx, c); err != nil {
		return fmt.Errorf("insert click %s: %w", c.ID, err)
	}
	if s.onStore != nil {
		s.onStore(c.PartnerID)
	}
	return nil
}
