package domain

type Partner struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Logo        string `json:"logo"`
	BookingType string `json:"bookingType"`
	BaseURL     string `json:"baseUrl"`
	Active      bool   `json:"isActive"`
	Priority    int    `json:"priority"`
}

const (
	PartnerBooking   = "booking"
	PartnerAgoda     = "agoda"
	PartnerExpedia   = "expedia"
	PartnerHotelsCom = "hotelscom"
)

// Partners is the fixed set of simulated OTAs, in priority order.
var Partners = []Partner{
	{ID: PartnerBooking, Name: "Booking.com", Logo: "🏨", BookingType: "redirect", BaseURL: "https://www.booking.com", Active: true, Priority: 1},
	{ID: PartnerAgoda, Name: "Agoda", Logo: "🌐", BookingType: "redirect", BaseURL: "https://www.agoda.com", Active: true, Priority: 2},
	{ID: PartnerExpedia, Name: "Expedia", Logo: "✈️", BookingType: "redirect", BaseURL: "https://www.expedia.com", Active: true, Priority: 3},
	{ID: PartnerHotelsCom, Name: "Hotels.com", Logo: "🏢", BookingType: "redirect", BaseURL: "https://www.hotels.com", Active: true, Priority: 4},
}

// PartnerName returns the display name, or the id itself for unknown partners.
func PartnerName(id string) string {
	for _, p := range Partners {
		if p.ID == id {
			return p.Name
		}
	}
	return id
}

func PartnerIDs() []string {
	out := make([]string, 0, len(Partners))
	for _, p := range Partners {
		out = append(out, p.ID)
	}
	return out
}
