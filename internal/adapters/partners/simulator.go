// internal/adapters/partners/simulator.go
package partners

import (
	"math/rand/v2"
	"sync"

	"github.com/shopspring/decimal"

	"hotel_compare/internal/domain"
)

// Symmetric uniform spread per partner, in currency units.
var spreads = map[string]float64{
	domain.PartnerBooking:   10,
	domain.PartnerAgoda:     15, // widest
	domain.PartnerExpedia:   8,
	domain.PartnerHotelsCom: 6, // tightest
}

var taxRate = decimal.RequireFromString("0.12")

var refundablePolicies = []string{
	"Free cancellation until 24 hours before check-in",
	"Free cancellation until 48 hours before check-in",
	"Free cancellation until 72 hours before check-in",
}

const NonRefundable = "Non-refundable"

// Simulator synthesizes partner quotes from a canonical base price.
// It is safe for concurrent use; all draws come from the injected source.
type Simulator struct {
	mu             sync.Mutex
	rng            *rand.Rand
	refundableProb float64
}

func NewSimulator(src rand.Source, refundableProb float64) *Simulator {
	if refundableProb < 0 {
		refundableProb = 0
	}
	if refundableProb > 1 {
		refundableProb = 1
	}
	return &Simulator{rng: rand.New(src), refundableProb: refundableProb}
}

// NewSeeded returns a Simulator backed by a PCG source; equal seeds give equal quotes.
func NewSeeded(seed uint64, refundableProb float64) *Simulator {
	return NewSimulator(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15), refundableProb)
}

// RoundMoney rounds to 2 decimal places, half away from zero (half-up for prices).
func RoundMoney(d decimal.Decimal) decimal.Decimal { return d.Round(2) }

// Taxes is 12% of price, rounded to minor units.
func Taxes(price decimal.Decimal) decimal.Decimal { return RoundMoney(price.Mul(taxRate)) }

// Spread reports the perturbation half-width for a partner (0 when unknown).
func Spread(partnerID string) float64 { return spreads[partnerID] }

// Price perturbs base by uniform(-spread, +spread) and rounds.
func (s *Simulator) Price(partnerID string, base decimal.Decimal) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.price(partnerID, base)
}

func (s *Simulator) Quote(partnerID string, base decimal.Decimal) domain.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()

	price := s.price(partnerID, base)
	taxes := Taxes(price)
	refundable := s.rng.Float64() < s.refundableProb

	return domain.Quote{
		Price:        price,
		Taxes:        taxes,
		Total:        price.Add(taxes),
		Refundable:   refundable,
		Cancellation: s.cancellation(refundable),
		Availability: s.rng.IntN(10) + 1,
	}
}

// CancellationPolicy picks the policy text for a refundability flag.
func (s *Simulator) CancellationPolicy(refundable bool) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancellation(refundable)
}

func (s *Simulator) price(partnerID string, base decimal.Decimal) decimal.Decimal {
	w, ok := spreads[partnerID]
	if !ok {
		return RoundMoney(base)
	}
	offset := s.rng.Float64()*2*w - w
	return RoundMoney(base.Add(decimal.NewFromFloat(offset)))
}

func (s *Simulator) cancellation(refundable bool) string {
	if !refundable {
		return NonRefundable
	}
	return refundablePolicies[s.rng.IntN(len(refundablePolicies))]
}
