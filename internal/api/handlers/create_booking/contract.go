package create_booking

import (
	"context"

	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	bookingsModels "github.com/m04kA/SMC-CulturalTours/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-CulturalTours/internal/usecase/create_booking"
)

type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

type PlacesService interface {
	GetByID(ctx context.Context, id int64) (*domain.Place, error)
}

type BookingsService interface {
	GetByID(ctx context.Context, id int64) (*bookingsModels.BookingDetails, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
