package service_bookings

import "errors"

var (
	// ErrServiceBookingNotFound возвращается, когда бронирование услуг не найдено
	ErrServiceBookingNotFound = errors.New("service_bookings: service booking not found")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("service_bookings: invalid status")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service_bookings: internal error")
)
