package domain

import "time"

// Click is an outbound redirect recorded for analytics.
type Click struct {
	ID        string    `json:"id"`
	HotelID   int64     `json:"hotel_id"`
	PartnerID string    `json:"partner_id"`
	IP        string    `json:"ip"`
	Device    string    `json:"device"` // mobile|desktop
	UserAgent string    `json:"user_agent"`
	ClickedAt time.Time `json:"clicked_at"`
}
