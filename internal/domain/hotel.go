package domain

import "github.com/shopspring/decimal"

type Hotel struct {
	ID           int64
	Name         string
	Slug         string
	City         string
	Country      string
	StarRating   int
	ReviewScore  *float64
	ReviewCount  int
	BasePrice    decimal.Decimal // canonical nightly price the partner simulators perturb
	Description  *string
	PropertyType *string
	PrimaryImage *string
}

type RoomType struct {
	ID      int64
	HotelID int64
	Name    string
}

type Destination struct {
	ID         int64   `json:"id"`
	City       string  `json:"city"`
	Country    string  `json:"country"`
	Region     string  `json:"region"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Population int64   `json:"population"`
	IsPopular  bool    `json:"isPopular"`
}

// CurrencyForCountry maps the seeded countries to their ISO-4217 code.
func CurrencyForCountry(country string) string {
	switch country {
	case "France":
		return "EUR"
	case "United Kingdom":
		return "GBP"
	case "United States":
		return "USD"
	case "Japan":
		return "JPY"
	case "United Arab Emirates":
		return "AED"
	}
	return "USD"
}
