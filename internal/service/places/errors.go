package places

import "errors"

var (
	// ErrPlaceNotFound возвращается, когда направление не найдено
	ErrPlaceNotFound = errors.New("places: place not found")

	// ErrInvalidInput возвращается при некорректных данных формы
	// Ошибки полей доступны через errors.As в formparse.Errors
	ErrInvalidInput = errors.New("places: invalid input")

	// ErrHasBookings возвращается при попытке удалить направление с бронированиями
	ErrHasBookings = errors.New("places: place has bookings")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("places: internal error")
)
