package hotels

import "errors"

var (
	// ErrHotelNotFound возвращается, когда гостиница не найдена
	ErrHotelNotFound = errors.New("hotels: hotel not found")

	// ErrPlaceNotFound возвращается, когда направление гостиницы не найдено
	ErrPlaceNotFound = errors.New("hotels: place not found")

	// ErrInvalidInput возвращается при некорректных данных формы
	ErrInvalidInput = errors.New("hotels: invalid input")

	// ErrHasBookings возвращается при попытке удалить гостиницу с бронированиями
	ErrHasBookings = errors.New("hotels: hotel has service bookings")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("hotels: internal error")
)
