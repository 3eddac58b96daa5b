package domain

import "time"

// ServiceBookingStatus статус бронирования услуг
type ServiceBookingStatus string

const (
	ServiceBookingPending   ServiceBookingStatus = "Pending"
	ServiceBookingConfirmed ServiceBookingStatus = "Confirmed"
	ServiceBookingCancelled ServiceBookingStatus = "Cancelled"
)

// ServiceBookingStatuses допустимые статусы бронирования услуг
var ServiceBookingStatuses = []ServiceBookingStatus{
	ServiceBookingPending,
	ServiceBookingConfirmed,
	ServiceBookingCancelled,
}

// ActiveServiceBookingStatuses статусы, при которых бронирование занимает ресурс
var ActiveServiceBookingStatuses = []ServiceBookingStatus{ServiceBookingPending, ServiceBookingConfirmed}

// ParseServiceBookingStatus проверяет, что значение входит в допустимый набор
func ParseServiceBookingStatus(s string) (ServiceBookingStatus, bool) {
	for _, st := range ServiceBookingStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// ServiceBooking бронирование гостиницы и/или транспорта
type ServiceBooking struct {
	ID            int64
	MainBookingID *int64 // связь с бронированием тура (опционально)

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	PlaceID     int64
	HotelID     *int64
	TransportID *int64

	CheckInDate     *time.Time
	CheckOutDate    *time.Time
	NumPeople       int
	NumRooms        int
	NumDays         int
	SpecialRequests *string

	HotelTotal     float64
	TransportTotal float64
	TotalAmount    float64

	Status    ServiceBookingStatus
	CreatedAt time.Time
}

// Pricing расчет стоимости бронирования услуг
type Pricing struct {
	HotelTotal     float64
	TransportTotal float64
	TotalAmount    float64
}

// CalculatePricing считает стоимость услуг:
// hotel = price_per_night * days * rooms, transport = price * people.
// Для невыбранной услуги сумма равна 0
func CalculatePricing(hotel *Hotel, transport *Transport, numDays, numRooms, numPeople int) Pricing {
	var p Pricing
	if hotel != nil {
		p.HotelTotal = hotel.PricePerNight * float64(numDays) * float64(numRooms)
	}
	if transport != nil {
		p.TransportTotal = transport.Price * float64(numPeople)
	}
	p.TotalAmount = p.HotelTotal + p.TransportTotal
	return p
}

// StayDays количество ночей между датами заезда и выезда
func StayDays(checkIn, checkOut time.Time) int {
	in := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)
	return int(out.Sub(in).Hours() / 24)
}

// ServiceBookingFilter фильтр бронирований услуг, все поля опциональны
//
// Пересечение с интервалом [A, B] задается как
// CheckInOnOrBefore = B, CheckOutOnOrAfter = A
type ServiceBookingFilter struct {
	PlaceID       *int64
	HotelID       *int64
	TransportID   *int64
	CustomerEmail *string

	CheckInDate       *time.Time // check_in_date = X
	CheckInOnOrBefore *time.Time // check_in_date <= X
	CheckOutOnOrAfter *time.Time // check_out_date >= X
	CreatedFrom       *time.Time // created_at >= X

	Statuses []ServiceBookingStatus // пусто - любой статус
}
