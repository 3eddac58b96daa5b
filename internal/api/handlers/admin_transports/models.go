package admin_transports

import (
	"net/http"

	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	transportsModels "github.com/m04kA/SMC-CulturalTours/internal/service/transports/models"
)

// FormPage данные страниц добавления и редактирования транспорта
type FormPage struct {
	Transport      *domain.Transport
	Places         []*domain.Place
	TransportTypes []domain.TransportType
}

func readForm(r *http.Request) *transportsModels.TransportForm {
	return &transportsModels.TransportForm{
		PlaceID:        r.PostFormValue("place_id"),
		TransportType:  r.PostFormValue("transport_type"),
		Name:           r.PostFormValue("name"),
		Description:    r.PostFormValue("description"),
		Price:          r.PostFormValue("price"),
		Capacity:       r.PostFormValue("capacity"),
		DurationHours:  r.PostFormValue("duration_hours"),
		OperatingHours: r.PostFormValue("operating_hours"),
		ContactInfo:    r.PostFormValue("contact_info"),
	}
}
