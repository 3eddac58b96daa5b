package admin_hotels

import (
	"net/http"

	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	hotelsModels "github.com/m04kA/SMC-CulturalTours/internal/service/hotels/models"
)

// FormPage данные страниц добавления и редактирования гостиницы
type FormPage struct {
	Hotel  *domain.Hotel
	Places []*domain.Place
}

func readForm(r *http.Request) *hotelsModels.HotelForm {
	return &hotelsModels.HotelForm{
		PlaceID:       r.PostFormValue("place_id"),
		Name:          r.PostFormValue("name"),
		Description:   r.PostFormValue("description"),
		PricePerNight: r.PostFormValue("price_per_night"),
		Rating:        r.PostFormValue("rating"),
		Amenities:     r.PostFormValue("amenities"),
		ImageURL:      r.PostFormValue("image_url"),
		ContactInfo:   r.PostFormValue("contact_info"),
	}
}
