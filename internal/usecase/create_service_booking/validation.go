package create_service_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	"github.com/m04kA/SMC-CulturalTours/pkg/formparse"
	"github.com/m04kA/SMC-CulturalTours/pkg/ptr"
)

// serviceInput поля формы после шагов 1-4 проверки
// Идентификаторы услуг остаются строками: они разбираются вместе с поиском записей
type serviceInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	RawHotelID       string
	RawTransportID   string
	RawMainBookingID string

	CheckIn   *time.Time
	CheckOut  *time.Time
	NumDays   int
	NumPeople int
	NumRooms  int

	SpecialRequests *string
}

// validateRequest выполняет проверки, не требующие обращения к БД, в фиксированном порядке:
// контакты, выбор услуги, даты, количества
func validateRequest(req *Request, now time.Time) (*serviceInput, error) {
	in := &serviceInput{
		CustomerName:     strings.TrimSpace(req.CustomerName),
		CustomerEmail:    strings.TrimSpace(req.CustomerEmail),
		CustomerPhone:    strings.TrimSpace(req.CustomerPhone),
		RawHotelID:       strings.TrimSpace(req.HotelID),
		RawTransportID:   strings.TrimSpace(req.TransportID),
		RawMainBookingID: strings.TrimSpace(req.MainBookingID),
		SpecialRequests:  ptr.NilIfEmpty(strings.TrimSpace(req.SpecialRequests)),
	}

	// 1. Контактные данные
	if in.CustomerName == "" || in.CustomerEmail == "" || in.CustomerPhone == "" {
		return nil, ErrMissingCustomerDetails
	}

	// 2. Хотя бы одна услуга
	if in.RawHotelID == "" && in.RawTransportID == "" {
		return nil, ErrNoServiceSelected
	}

	// 3. Даты: каждая разбирается, если передана; интервал проверяется только при обеих
	checkIn, err := formparse.OptionalDate(req.CheckInDate)
	if err != nil {
		return nil, fmt.Errorf("%w: check-in: %v", ErrInvalidDateFormat, err)
	}
	checkOut, err := formparse.OptionalDate(req.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("%w: check-out: %v", ErrInvalidDateFormat, err)
	}
	in.CheckIn, in.CheckOut = checkIn, checkOut

	in.NumDays = domain.DefaultNumDays
	if checkIn != nil && checkOut != nil {
		if !checkOut.After(*checkIn) {
			return nil, ErrCheckOutNotAfterCheckIn
		}
		if checkIn.Before(startOfDay(now)) {
			return nil, ErrCheckInInPast
		}
		in.NumDays = domain.StayDays(*checkIn, *checkOut)
		if in.NumDays <= 0 {
			return nil, ErrMinimumStay
		}
	}

	// 4. Количество человек и номеров
	in.NumPeople, err = formparse.PositiveInt(req.NumPeople)
	if err != nil {
		return nil, fmt.Errorf("%w: num_people: %v", ErrInvalidQuantities, err)
	}
	in.NumRooms, err = formparse.PositiveInt(req.NumRooms)
	if err != nil {
		return nil, fmt.Errorf("%w: num_rooms: %v", ErrInvalidQuantities, err)
	}

	return in, nil
}

// startOfDay возвращает полночь календарного дня t в UTC, как и даты из формы
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// startOfLocalDay возвращает полночь календарного дня t в его часовом поясе
// Используется для сравнения с created_at
func startOfLocalDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
