package domain

import "time"

// BookingStatus статус бронирования тура
type BookingStatus string

const (
	BookingPending   BookingStatus = "Pending"
	BookingConfirmed BookingStatus = "Confirmed"
	BookingRejected  BookingStatus = "Rejected"
)

// BookingStatuses допустимые статусы бронирования тура
var BookingStatuses = []BookingStatus{BookingPending, BookingConfirmed, BookingRejected}

// ActiveBookingStatuses статусы, при которых бронирование занимает дату
var ActiveBookingStatuses = []BookingStatus{BookingPending, BookingConfirmed}

// ParseBookingStatus проверяет, что значение входит в допустимый набор
func ParseBookingStatus(s string) (BookingStatus, bool) {
	for _, st := range BookingStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// Booking бронирование тура по направлению
type Booking struct {
	ID              int64
	PlaceID         int64
	Name            string
	Email           string
	Phone           string
	TravelDate      time.Time
	NumPeople       int
	SpecialRequests *string
	Status          BookingStatus
	CreatedAt       time.Time
}

// IsActive returns true if the booking holds its travel date
func (b *Booking) IsActive() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}

// BookingFilter фильтр бронирований туров, все поля опциональны
type BookingFilter struct {
	PlaceID    *int64
	Email      *string
	TravelDate *time.Time
	Statuses   []BookingStatus // пусто - любой статус
}
