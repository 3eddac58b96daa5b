package places

import (
	"context"

	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	placesModels "github.com/m04kA/SMC-CulturalTours/internal/service/places/models"
)

type PlacesService interface {
	List(ctx context.Context, filter domain.PlaceFilter) ([]*domain.Place, error)
	GetDetails(ctx context.Context, id int64) (*placesModels.PlaceDetails, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
