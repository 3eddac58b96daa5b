package service_booking

import "errors"

var (
	// ErrServiceBookingNotFound возвращается, когда бронирование услуг не найдено
	ErrServiceBookingNotFound = errors.New("service_booking.repository: booking not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("service_booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("service_booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("service_booking.repository: failed to scan row")
)
