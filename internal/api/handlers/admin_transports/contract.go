package admin_transports

import (
	"context"

	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	transportsModels "github.com/m04kA/SMC-CulturalTours/internal/service/transports/models"
)

type TransportsService interface {
	List(ctx context.Context) ([]*transportsModels.TransportItem, error)
	GetByID(ctx context.Context, id int64) (*domain.Transport, error)
	Create(ctx context.Context, form *transportsModels.TransportForm) (*domain.Transport, error)
	Update(ctx context.Context, id int64, form *transportsModels.TransportForm) (*domain.Transport, error)
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
