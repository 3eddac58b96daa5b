package bookings

import (
	"context"

	"github.com/m04kA/SMC-CulturalTours/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований туров
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// PlaceRepository интерфейс репозитория направлений
type PlaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Place, error)
	List(ctx context.Context, filter domain.PlaceFilter) ([]*domain.Place, error)
}

// Metrics интерфейс для доменных метрик
type Metrics interface {
	StatusChanged(kind, status string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
