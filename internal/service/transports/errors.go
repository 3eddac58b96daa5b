package transports

import "errors"

var (
	// ErrTransportNotFound возвращается, когда транспорт не найден
	ErrTransportNotFound = errors.New("transports: transport not found")

	// ErrPlaceNotFound возвращается, когда направление транспорта не найдено
	ErrPlaceNotFound = errors.New("transports: place not found")

	// ErrInvalidInput возвращается при некорректных данных формы
	ErrInvalidInput = errors.New("transports: invalid input")

	// ErrHasBookings возвращается при попытке удалить транспорт с бронированиями
	ErrHasBookings = errors.New("transports: transport has service bookings")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("transports: internal error")
)
