package service_bookings

import (
	"context"

	"github.com/m04kA/SMC-CulturalTours/internal/domain"
)

// ServiceBookingRepository интерфейс репозитория бронирований услуг
type ServiceBookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ServiceBooking, error)
	List(ctx context.Context, filter domain.ServiceBookingFilter) ([]*domain.ServiceBooking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ServiceBookingStatus) error
}

// PlaceRepository интерфейс репозитория направлений
type PlaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Place, error)
	List(ctx context.Context, filter domain.PlaceFilter) ([]*domain.Place, error)
}

// HotelRepository интерфейс репозитория гостиниц
type HotelRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
	List(ctx context.Context) ([]*domain.Hotel, error)
}

// TransportRepository интерфейс репозитория транспорта
type TransportRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Transport, error)
	List(ctx context.Context) ([]*domain.Transport, error)
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
