package create_booking

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-CulturalTours/internal/api/handlers"
	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	createBooking "github.com/m04kA/SMC-CulturalTours/internal/usecase/create_booking"
)

// FormPage данные страницы формы бронирования тура
type FormPage struct {
	Place *domain.Place
	Today string
}

// toUseCaseRequest переносит поля формы в запрос use case без разбора
// Отсутствующее поле num_people заменяется значением по умолчанию формы
func toUseCaseRequest(r *http.Request, placeID int64) *createBooking.Request {
	return &createBooking.Request{
		PlaceID:         placeID,
		Name:            r.PostFormValue("name"),
		Email:           r.PostFormValue("email"),
		Phone:           r.PostFormValue("phone"),
		TravelDate:      r.PostFormValue("travel_date"),
		NumPeople:       handlers.PostFormOr(r, "num_people", strconv.Itoa(domain.DefaultNumPeople)),
		SpecialRequests: r.PostFormValue("special_requests"),
	}
}
