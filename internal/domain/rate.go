package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoomRate is one persisted partner price for a room type and stay.
// Rows are insert-only; a new stay is a new row.
type RoomRate struct {
	ID           int64
	HotelID      int64
	RoomTypeID   int64
	RoomTypeName string
	PartnerID    string
	Checkin      time.Time
	Checkout     time.Time
	BasePrice    decimal.Decimal
	Taxes        decimal.Decimal
	Currency     string
	Refundable   bool
	Availability int
	BookingURL   string
}

// PartnerOffer is derived per request and never persisted.
type PartnerOffer struct {
	PartnerID    string          `json:"partner"`
	PartnerName  string          `json:"partnerName"`
	RoomType     string          `json:"roomType"`
	Price        decimal.Decimal `json:"price"`
	Currency     string          `json:"currency"`
	Taxes        decimal.Decimal `json:"taxes"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	Refundable   bool            `json:"refundable"`
	Cancellation string          `json:"cancellation"`
	Deeplink     string          `json:"deeplink"`
	BestPrice    bool            `json:"bestPrice"`
}

type LowestPrice struct {
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	PartnerID string          `json:"partner"`
}

type HotelSearchResult struct {
	HotelID      int64            `json:"hotelId"`
	Name         string           `json:"name"`
	Slug         string           `json:"slug"`
	StarRating   int              `json:"starRating"`
	ReviewScore  float64          `json:"rating"`
	ReviewCount  int              `json:"reviewCount"`
	City         string           `json:"city"`
	Country      string           `json:"country"`
	PrimaryImage string           `json:"primaryImage"`
	Description  *string          `json:"description,omitempty"`
	PropertyType *string          `json:"propertyType,omitempty"`
	LowestPrice  *LowestPrice     `json:"lowestPrice"`
	Savings      *decimal.Decimal `json:"savings,omitempty"`
	Offers       []PartnerOffer   `json:"offers"`
}

// SearchQuery zero values (dates, guests) are replaced by defaults at search time.
type SearchQuery struct {
	City     string
	Checkin  time.Time
	Checkout time.Time
	Guests   int
}

type SearchResponse struct {
	SearchID string              `json:"searchId"`
	City     string              `json:"city"`
	Checkin  string              `json:"checkin"`
	Checkout string              `json:"checkout"`
	Guests   int                 `json:"guests"`
	Count    int                 `json:"count"`
	Hotels   []HotelSearchResult `json:"hotels"`
}

// QuotesResponse carries live simulated partner offers for one hotel.
type QuotesResponse struct {
	HotelID     int64            `json:"hotelId"`
	Slug        string           `json:"slug"`
	LowestPrice *LowestPrice     `json:"lowestPrice"`
	Savings     *decimal.Decimal `json:"savings,omitempty"`
	Offers      []PartnerOffer   `json:"offers"`
}

// Quote is one simulated partner price for a base price.
type Quote struct {
	Price        decimal.Decimal
	Taxes        decimal.Decimal
	Total        decimal.Decimal
	Refundable   bool
	Cancellation string
	Availability int
}
