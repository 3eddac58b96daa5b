package create_booking

import "errors"

var (
	// ErrPlaceNotFound возвращается, когда направление не найдено
	ErrPlaceNotFound = errors.New("create_booking: place not found")

	// ErrMissingFields возвращается, когда не заполнено одно из обязательных полей
	ErrMissingFields = errors.New("create_booking: required fields are missing")

	// ErrInvalidDate возвращается, когда дата поездки не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("create_booking: invalid travel date")

	// ErrDateInPast возвращается, когда дата поездки раньше сегодняшней
	ErrDateInPast = errors.New("create_booking: travel date is in the past")

	// ErrInvalidNumPeople возвращается, когда количество человек не положительное целое
	ErrInvalidNumPeople = errors.New("create_booking: number of people must be a positive integer")

	// ErrDuplicateBooking возвращается, когда у email уже есть активное бронирование на эту дату
	ErrDuplicateBooking = errors.New("create_booking: booking for this email and date already exists")

	// ErrConcurrentRequest возвращается, когда параллельная заявка зафиксировалась раньше
	ErrConcurrentRequest = errors.New("create_booking: concurrent request, please resubmit")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
