package create_service_booking

import "errors"

var (
	// ErrPlaceNotFound возвращается, когда направление не найдено
	ErrPlaceNotFound = errors.New("create_service_booking: place not found")

	// ErrMissingCustomerDetails возвращается, когда не заполнены имя, email или телефон
	ErrMissingCustomerDetails = errors.New("create_service_booking: customer details are missing")

	// ErrNoServiceSelected возвращается, когда не выбраны ни гостиница, ни транспорт
	ErrNoServiceSelected = errors.New("create_service_booking: no service selected")

	// ErrInvalidDateFormat возвращается, когда дата заезда или выезда не в формате YYYY-MM-DD
	ErrInvalidDateFormat = errors.New("create_service_booking: invalid date format")

	// ErrCheckOutNotAfterCheckIn возвращается, когда дата выезда не позже даты заезда
	ErrCheckOutNotAfterCheckIn = errors.New("create_service_booking: check-out must be after check-in")

	// ErrCheckInInPast возвращается, когда дата заезда раньше сегодняшней
	ErrCheckInInPast = errors.New("create_service_booking: check-in date is in the past")

	// ErrMinimumStay возвращается, когда проживание короче одного дня
	ErrMinimumStay = errors.New("create_service_booking: minimum stay is one day")

	// ErrInvalidQuantities возвращается, когда количество человек или номеров не положительное целое
	ErrInvalidQuantities = errors.New("create_service_booking: people and rooms must be positive integers")

	// ErrHotelNotFound возвращается, когда выбранная гостиница не найдена
	ErrHotelNotFound = errors.New("create_service_booking: hotel not found")

	// ErrTransportNotFound возвращается, когда выбранный транспорт не найден
	ErrTransportNotFound = errors.New("create_service_booking: transport not found")

	// ErrMainBookingNotFound возвращается, когда указанное бронирование тура не найдено
	ErrMainBookingNotFound = errors.New("create_service_booking: main booking not found")

	// ErrHotelUnavailable возвращается, когда гостиница занята на пересекающиеся даты
	ErrHotelUnavailable = errors.New("create_service_booking: hotel is not available for these dates")

	// ErrDuplicateHotelBooking возвращается, когда у email уже есть бронирование этой гостиницы с той же датой заезда
	ErrDuplicateHotelBooking = errors.New("create_service_booking: duplicate hotel booking")

	// ErrDuplicateTransportBooking возвращается, когда у email уже есть бронирование этого транспорта сегодня
	ErrDuplicateTransportBooking = errors.New("create_service_booking: duplicate transport booking")

	// ErrDuplicatePlaceBooking возвращается, когда у email уже есть бронирование услуг направления с той же датой заезда
	ErrDuplicatePlaceBooking = errors.New("create_service_booking: duplicate place booking")

	// ErrConcurrentRequest возвращается, когда параллельная заявка зафиксировалась раньше
	ErrConcurrentRequest = errors.New("create_service_booking: concurrent request, please resubmit")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_service_booking: internal error")
)
