package dashboard

import (
	"context"
	"errors"

	"github.com/m04kA/SMC-CulturalTours/internal/domain"
)

// ErrInternal возвращается при внутренних ошибках сервиса
var ErrInternal = errors.New("dashboard: internal error")

// PlaceRepository интерфейс репозитория направлений
type PlaceRepository interface {
	Count(ctx context.Context) (int, error)
}

// BookingRepository интерфейс репозитория бронирований туров
type BookingRepository interface {
	Count(ctx context.Context, filter domain.BookingFilter) (int, error)
}

// HotelRepository интерфейс репозитория гостиниц
type HotelRepository interface {
	Count(ctx context.Context) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
