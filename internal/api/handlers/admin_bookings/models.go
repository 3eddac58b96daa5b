package admin_bookings

import (
	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	bookingsModels "github.com/m04kA/SMC-CulturalTours/internal/service/bookings/models"
)

// ListPage данные страницы бронирований туров
type ListPage struct {
	Bookings       []*bookingsModels.BookingItem
	Statuses       []domain.BookingStatus
	SelectedStatus string
}
