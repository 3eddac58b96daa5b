package admin_bookings

import (
	"context"

	bookingsModels "github.com/m04kA/SMC-CulturalTours/internal/service/bookings/models"
)

type BookingsService interface {
	List(ctx context.Context, req *bookingsModels.ListRequest) ([]*bookingsModels.BookingItem, error)
	UpdateStatus(ctx context.Context, bookingID int64, req *bookingsModels.UpdateStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
