package places

import (
	"context"

	"github.com/m04kA/SMC-CulturalTours/internal/domain"
)

// PlaceRepository интерфейс репозитория направлений
type PlaceRepository interface {
	Create(ctx context.Context, place *domain.Place) (*domain.Place, error)
	GetByID(ctx context.Context, id int64) (*domain.Place, error)
	List(ctx context.Context, filter domain.PlaceFilter) ([]*domain.Place, error)
	Update(ctx context.Context, place *domain.Place) error
	Delete(ctx context.Context, id int64) error
}

// HotelRepository интерфейс репозитория гостиниц
type HotelRepository interface {
	ListByPlace(ctx context.Context, placeID int64) ([]*domain.Hotel, error)
}

// TransportRepository интерфейс репозитория транспорта
type TransportRepository interface {
	ListByPlace(ctx context.Context, placeID int64) ([]*domain.Transport, error)
}

// BookingRepository интерфейс репозитория бронирований туров
type BookingRepository interface {
	Exists(ctx context.Context, filter domain.BookingFilter) (bool, error)
}

// ServiceBookingRepository интерфейс репозитория бронирований услуг
type ServiceBookingRepository interface {
	Exists(ctx context.Context, filter domain.ServiceBookingFilter) (bool, error)
}

// PlacesCache кеш публичного списка направлений
// Может отсутствовать (nil), тогда чтение идет напрямую из БД
type PlacesCache interface {
	GetPlaces(ctx context.Context, filter domain.PlaceFilter) ([]*domain.Place, bool, error)
	SetPlaces(ctx context.Context, filter domain.PlaceFilter, places []*domain.Place) error
	InvalidatePlaces(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
