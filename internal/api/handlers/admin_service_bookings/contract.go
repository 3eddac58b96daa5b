package admin_service_bookings

import (
	"context"

	serviceBookingsModels "github.com/m04kA/SMC-CulturalTours/internal/service/service_bookings/models"
)

type ServiceBookingsService interface {
	List(ctx context.Context, req *serviceBookingsModels.ListRequest) ([]*serviceBookingsModels.ServiceBookingItem, error)
	UpdateStatus(ctx context.Context, bookingID int64, req *serviceBookingsModels.UpdateStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
