package transports

import (
	"context"

	"github.com/m04kA/SMC-CulturalTours/internal/domain"
)

// TransportRepository интерфейс репозитория транспорта
type TransportRepository interface {
	Create(ctx context.Context, transport *domain.Transport) (*domain.Transport, error)
	GetByID(ctx context.Context, id int64) (*domain.Transport, error)
	List(ctx context.Context) ([]*domain.Transport, error)
	Update(ctx context.Context, transport *domain.Transport) error
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
