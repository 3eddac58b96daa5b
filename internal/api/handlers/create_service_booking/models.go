package create_service_booking

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-CulturalTours/internal/api/handlers"
	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	placesModels "github.com/m04kA/SMC-CulturalTours/internal/service/places/models"
	createServiceBooking "github.com/m04kA/SMC-CulturalTours/internal/usecase/create_service_booking"
)

// FormPage данные страницы выбора гостиницы и транспорта
type FormPage struct {
	*placesModels.PlaceDetails
	Today         string
	Tomorrow      string
	MainBookingID string
}

// toUseCaseRequest переносит поля формы в запрос use case
// Отсутствующие num_people и num_rooms заменяются значениями по умолчанию формы
func toUseCaseRequest(r *http.Request, placeID int64) *createServiceBooking.Request {
	return &createServiceBooking.Request{
		PlaceID:         placeID,
		CustomerName:    r.PostFormValue("customer_name"),
		CustomerEmail:   r.PostFormValue("customer_email"),
		CustomerPhone:   r.PostFormValue("customer_phone"),
		HotelID:         r.PostFormValue("hotel_id"),
		TransportID:     r.PostFormValue("transport_id"),
		MainBookingID:   r.PostFormValue("main_booking_id"),
		CheckInDate:     r.PostFormValue("check_in"),
		CheckOutDate:    r.PostFormValue("check_out"),
		NumPeople:       handlers.PostFormOr(r, "num_people", strconv.Itoa(domain.DefaultNumPeople)),
		NumRooms:        handlers.PostFormOr(r, "num_rooms", strconv.Itoa(domain.DefaultNumRooms)),
		SpecialRequests: r.PostFormValue("special_requests"),
	}
}
