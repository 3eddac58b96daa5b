package create_service_booking

import (
	"context"

	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	placesModels "github.com/m04kA/SMC-CulturalTours/internal/service/places/models"
	serviceBookingsModels "github.com/m04kA/SMC-CulturalTours/internal/service/service_bookings/models"
	createServiceBooking "github.com/m04kA/SMC-CulturalTours/internal/usecase/create_service_booking"
)

type CreateServiceBookingUseCase interface {
	Execute(ctx context.Context, req *createServiceBooking.Request) (*createServiceBooking.Response, error)
}

type PlacesService interface {
	GetByID(ctx context.Context, id int64) (*domain.Place, error)
	GetDetails(ctx context.Context, id int64) (*placesModels.PlaceDetails, error)
}

type ServiceBookingsService interface {
	GetByID(ctx context.Context, id int64) (*serviceBookingsModels.ServiceBookingItem, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
