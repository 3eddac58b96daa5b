package admin_hotels

import (
	"context"

	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	hotelsModels "github.com/m04kA/SMC-CulturalTours/internal/service/hotels/models"
)

type HotelsService interface {
	List(ctx context.Context) ([]*hotelsModels.HotelItem, error)
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
	Create(ctx context.Context, form *hotelsModels.HotelForm) (*domain.Hotel, error)
	Update(ctx context.Context, id int64, form *hotelsModels.HotelForm) (*domain.Hotel, error)
	Delete(ctx context.Context, id int64) error
}

// PlacesService источник списка направлений для выпадающего списка формы
type PlacesService interface {
	List(ctx context.Context, filter domain.PlaceFilter) ([]*domain.Place, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
