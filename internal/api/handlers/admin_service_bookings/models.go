package admin_service_bookings

import (
	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	serviceBookingsModels "github.com/m04kA/SMC-CulturalTours/internal/service/service_bookings/models"
)

// ListPage данные страницы бронирований услуг
type ListPage struct {
	Bookings       []*serviceBookingsModels.ServiceBookingItem
	Statuses       []domain.ServiceBookingStatus
	SelectedStatus string
}
