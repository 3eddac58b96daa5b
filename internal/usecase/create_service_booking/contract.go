package create_service_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CulturalTours/internal/domain"
)

// PlaceRepository интерфейс репозитория направлений
type PlaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Place, error)
}

// HotelRepository интерфейс репозитория гостиниц
type HotelRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
}

// TransportRepository интерфейс репозитория транспорта
type TransportRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Transport, error)
}

// BookingRepository интерфейс репозитория бронирований туров (для связи с основным бронированием)
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// ServiceBookingRepository интерфейс репозитория бронирований услуг
type ServiceBookingRepository interface {
	Exists(ctx context.Context, filter domain.ServiceBookingFilter) (bool, error)
	Create(ctx context.Context, booking *domain.ServiceBooking) (*domain.ServiceBooking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчики бронирований
type Metrics interface {
	BookingCreated(kind string)
	BookingRejected(kind, reason string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
