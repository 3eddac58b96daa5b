package domain

import (
	"strings"
	"time"
)

// Hotel гостиница, привязанная к направлению
type Hotel struct {
	ID            int64
	PlaceID       int64
	Name          string
	Description   *string
	PricePerNight float64
	Rating        *float64 // 1-5
	Amenities     *string  // через запятую
	ImageURL      *string
	ContactInfo   *string
	CreatedAt     time.Time
}

// AmenityList разбивает удобства на отдельные элементы
func (h *Hotel) AmenityList() []string {
	if h.Amenities == nil {
		return nil
	}

	parts := strings.Split(*h.Amenities, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
