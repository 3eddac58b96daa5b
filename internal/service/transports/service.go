package transports

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	placeRepo "github.com/m04kA/SMC-CulturalTours/internal/infra/storage/place"
	transportRepo "github.com/m04kA/SMC-CulturalTours/internal/infra/storage/transport"
	"github.com/m04kA/SMC-CulturalTours/internal/service/transports/models"
)

// Service сервис для работы с транспортными услугами
type Service struct {
	transportRepo      TransportRepository
	placeRepo          PlaceRepository
	serviceBookingRepo ServiceBookingRepository
	logger             Logger
}

// NewService создает новый экземпляр сервиса транспорта
func NewService(
	transportRepo TransportRepository,
	placeRepo PlaceRepository,
	serviceBookingRepo ServiceBookingRepository,
	logger Logger,
) *Service {
	return &Service{
		transportRepo:      transportRepo,
		placeRepo:          placeRepo,
		serviceBookingRepo: serviceBookingRepo,
		logger:             logger,
	}
}

// List возвращает весь транспорт с названиями направлений
func (s *Service) List(ctx context.Context) ([]*models.TransportItem, error) {
	list, err := s.transportRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	places, err := s.placeRepo.List(ctx, domain.PlaceFilter{})
	if err != nil {
		s.logger.Error("List: failed to list places: %v", err)
		return nil, fmt.Errorf("%w: List - places: %v", ErrInternal, err)
	}
	names := make(map[int64]string, len(places))
	for _, p := range places {
		names[p.ID] = p.Name
	}

	items := make([]*models.TransportItem, 0, len(list))
	for _, t := range list {
		items = append(items, &models.TransportItem{Transport: t, PlaceName: names[t.PlaceID]})
	}
	return items, nil
}

// GetByID получает транспорт по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Transport, error) {
	transport, err := s.transportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, transportRepo.ErrTransportNotFound) {
			s.logger.Warn("GetByID: transport id=%d not found", id)
			return nil, ErrTransportNotFound
		}
		s.logger.Error("GetByID: repository error for transport id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return transport, nil
}

// Create создает транспортную услугу из формы
func (s *Service) Create(ctx context.Context, form *models.TransportForm) (*domain.Transport, error) {
	s.logger.Info("Create: creating transport name=%q type=%q place=%q", form.Name, form.TransportType, form.PlaceID)

	transport, err := s.parse(ctx, form)
	if err != nil {
		return nil, err
	}

	created, err := s.transportRepo.Create(ctx, transport)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created transport id=%d", created.ID)
	return created, nil
}

// Update перезаписывает транспортную услугу значениями формы
func (s *Service) Update(ctx context.Context, id int64, form *models.TransportForm) (*domain.Transport, error) {
	s.logger.Info("Update: updating transport id=%d", id)

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	transport, err := s.parse(ctx, form)
	if err != nil {
		return nil, err
	}
	transport.ID = existing.ID
	transport.CreatedAt = existing.CreatedAt

	if err := s.transportRepo.Update(ctx, transport); err != nil {
		if errors.Is(err, transportRepo.ErrTransportNotFound) {
			return nil, ErrTransportNotFound
		}
		s.logger.Error("Update: repository error for transport id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated transport id=%d", id)
	return transport, nil
}

// Delete удаляет транспортную услугу
// Удаление запрещено, пока на нее ссылается бронирование услуг в любом статусе
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting transport id=%d", id)

	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	hasBookings, err := s.serviceBookingRepo.Exists(ctx, domain.ServiceBookingFilter{TransportID: &id})
	if err != nil {
		s.logger.Error("Delete: failed to check service bookings for transport id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - service bookings check: %v", ErrInternal, err)
	}
	if hasBookings {
		s.logger.Warn("Delete: transport id=%d has service bookings", id)
		return ErrHasBookings
	}

	if err := s.transportRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, transportRepo.ErrTransportNotFound) {
			return ErrTransportNotFound
		}
		s.logger.Error("Delete: repository error for transport id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted transport id=%d", id)
	return nil
}

// parse разбирает форму и проверяет, что направление существует
func (s *Service) parse(ctx context.Context, form *models.TransportForm) (*domain.Transport, error) {
	transport, errs := form.ToDomainTransport()
	if errs != nil {
		s.logger.Warn("validation failed: %v", errs)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, errs)
	}

	if _, err := s.placeRepo.GetByID(ctx, transport.PlaceID); err != nil {
		if errors.Is(err, placeRepo.ErrPlaceNotFound) {
			s.logger.Warn("place id=%d not found", transport.PlaceID)
			return nil, ErrPlaceNotFound
		}
		s.logger.Error("failed to get place id=%d: %v", transport.PlaceID, err)
		return nil, fmt.Errorf("%w: failed to get place: %v", ErrInternal, err)
	}

	return transport, nil
}
