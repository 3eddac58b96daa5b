package admin_places

import (
	"context"

	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	placesModels "github.com/m04kA/SMC-CulturalTours/internal/service/places/models"
)

type PlacesService interface {
	List(ctx context.Context, filter domain.PlaceFilter) ([]*domain.Place, error)
	GetByID(ctx context.Context, id int64) (*domain.Place, error)
	Create(ctx context.Context, form *placesModels.PlaceForm) (*domain.Place, error)
	Update(ctx context.Context, id int64, form *placesModels.PlaceForm) (*domain.Place, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
