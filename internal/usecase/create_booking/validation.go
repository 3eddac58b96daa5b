package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CulturalTours/pkg/formparse"
	"github.com/m04kA/SMC-CulturalTours/pkg/ptr"
)

// bookingInput разобранные и проверенные поля формы
type bookingInput struct {
	Name            string
	Email           string
	Phone           string
	TravelDate      time.Time
	NumPeople       int
	SpecialRequests *string
}

// validateRequest проверяет поля формы в фиксированном порядке:
// обязательные поля, формат даты, дата не в прошлом, количество человек
func validateRequest(req *Request, now time.Time) (*bookingInput, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	phone := strings.TrimSpace(req.Phone)
	rawDate := strings.TrimSpace(req.TravelDate)

	if name == "" || email == "" || phone == "" || rawDate == "" {
		return nil, ErrMissingFields
	}

	travelDate, err := formparse.Date(rawDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	if travelDate.Before(startOfDay(now)) {
		return nil, ErrDateInPast
	}

	numPeople, err := formparse.PositiveInt(req.NumPeople)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidNumPeople, err)
	}

	return &bookingInput{
		Name:            name,
		Email:           email,
		Phone:           phone,
		TravelDate:      travelDate,
		NumPeople:       numPeople,
		SpecialRequests: ptr.NilIfEmpty(strings.TrimSpace(req.SpecialRequests)),
	}, nil
}

// startOfDay возвращает полночь календарного дня t в UTC, как и даты из формы
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
