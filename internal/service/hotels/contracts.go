package hotels

import (
	"context"

	"github.com/m04kA/SMC-CulturalTours/internal/domain"
)

// HotelRepository интерфейс репозитория гостиниц
type HotelRepository interface {
	Create(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error)
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
	List(ctx context.Context) ([]*domain.Hotel, error)
	Update(ctx context.Context, hotel *domain.Hotel) error
	Delete(ctx context.Context, id int64) error
}

// PlaceRepository интерфейс репозитория направлений
type PlaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Place, error)
	List(ctx context.Context, filter domain.PlaceFilter) ([]*domain.Place, error)
}

// ServiceBookingRepository интерфейс репозитория бронирований услуг
type ServiceBookingRepository interface {
	Exists(ctx context.Context, filter domain.ServiceBookingFilter) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
