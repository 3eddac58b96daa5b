package places

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	placeRepo "github.com/m04kA/SMC-CulturalTours/internal/infra/storage/place"
	"github.com/m04kA/SMC-CulturalTours/internal/service/places/models"
)

// Service сервис для работы с направлениями
type Service struct {
	placeRepo          PlaceRepository
	hotelRepo          HotelRepository
	transportRepo      TransportRepository
	bookingRepo        BookingRepository
	serviceBookingRepo ServiceBookingRepository
	cache              PlacesCache
	logger             Logger
}

// NewService создает новый экземпляр сервиса направлений
// cache может быть nil
func NewService(
	placeRepo PlaceRepository,
	hotelRepo HotelRepository,
	transportRepo TransportRepository,
	bookingRepo BookingRepository,
	serviceBookingRepo ServiceBookingRepository,
	cache PlacesCache,
	logger Logger,
) *Service {
	return &Service{
		placeRepo:          placeRepo,
		hotelRepo:          hotelRepo,
		transportRepo:      transportRepo,
		bookingRepo:        bookingRepo,
		serviceBookingRepo: serviceBookingRepo,
		cache:              cache,
		logger:             logger,
	}
}

// List возвращает направления, новые первыми
// Публичный список читается через кеш, ошибки кеша не прерывают запрос
func (s *Service) List(ctx context.Context, filter domain.PlaceFilter) ([]*domain.Place, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.GetPlaces(ctx, filter)
		if err != nil {
			s.logger.Warn("List: cache read failed, falling back to db: %v", err)
		} else if ok {
			return cached, nil
		}
	}

	list, err := s.placeRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.SetPlaces(ctx, filter, list); err != nil {
			s.logger.Warn("List: cache write failed: %v", err)
		}
	}

	return list, nil
}

// GetByID получает направление по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Place, error) {
	place, err := s.placeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, placeRepo.ErrPlaceNotFound) {
			s.logger.Warn("GetByID: place id=%d not found", id)
			return nil, ErrPlaceNotFound
		}
		s.logger.Error("GetByID: repository error for place id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return place, nil
}

// GetDetails получает направление вместе с гостиницами и транспортом
func (s *Service) GetDetails(ctx context.Context, id int64) (*models.PlaceDetails, error) {
	place, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hotels, err := s.hotelRepo.ListByPlace(ctx, id)
	if err != nil {
		s.logger.Error("GetDetails: failed to list hotels for place id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetDetails - hotels: %v", ErrInternal, err)
	}

	transports, err := s.transportRepo.ListByPlace(ctx, id)
	if err != nil {
		s.logger.Error("GetDetails: failed to list transports for place id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetDetails - transports: %v", ErrInternal, err)
	}

	return &models.PlaceDetails{Place: place, Hotels: hotels, Transports: transports}, nil
}

// Create создает направление из формы
func (s *Service) Create(ctx context.Context, form *models.PlaceForm) (*domain.Place, error) {
	s.logger.Info("Create: creating place name=%q state=%q", form.Name, form.State)

	place, errs := form.ToDomainPlace()
	if errs != nil {
		s.logger.Warn("Create: validation failed: %v", errs)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, errs)
	}

	created, err := s.placeRepo.Create(ctx, place)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx)
	s.logger.Info("Create: successfully created place id=%d", created.ID)
	return created, nil
}

// Update перезаписывает направление значениями формы
func (s *Service) Update(ctx context.Context, id int64, form *models.PlaceForm) (*domain.Place, error) {
	s.logger.Info("Update: updating place id=%d", id)

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	place, errs := form.ToDomainPlace()
	if errs != nil {
		s.logger.Warn("Update: validation failed for place id=%d: %v", id, errs)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, errs)
	}
	place.ID = existing.ID
	place.CreatedAt = existing.CreatedAt

	if err := s.placeRepo.Update(ctx, place); err != nil {
		if errors.Is(err, placeRepo.ErrPlaceNotFound) {
			s.logger.Warn("Update: place id=%d not found during update", id)
			return nil, ErrPlaceNotFound
		}
		s.logger.Error("Update: repository error for place id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx)
	s.logger.Info("Update: successfully updated place id=%d", id)
	return place, nil
}

// Delete удаляет направление вместе с его гостиницами и транспортом
// Удаление запрещено, пока на направление, его гостиницы или транспорт ссылается
// хотя бы одно бронирование тура или услуг в любом статусе
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting place id=%d", id)

	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	hasBookings, err := s.hasBookings(ctx, id)
	if err != nil {
		return err
	}
	if hasBookings {
		s.logger.Warn("Delete: place id=%d has bookings", id)
		return ErrHasBookings
	}

	if err := s.placeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, placeRepo.ErrPlaceNotFound) {
			return ErrPlaceNotFound
		}
		s.logger.Error("Delete: repository error for place id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx)
	s.logger.Info("Delete: successfully deleted place id=%d", id)
	return nil
}

// hasBookings проверяет ссылки на направление и на его услуги
// Бронирование услуги может ссылаться на гостиницу направления при другом place_id
func (s *Service) hasBookings(ctx context.Context, placeID int64) (bool, error) {
	found, err := s.bookingRepo.Exists(ctx, domain.BookingFilter{PlaceID: &placeID})
	if err != nil {
		s.logger.Error("Delete: failed to check bookings for place id=%d: %v", placeID, err)
		return false, fmt.Errorf("%w: Delete - bookings check: %v", ErrInternal, err)
	}
	if found {
		return true, nil
	}

	filters := []domain.ServiceBookingFilter{{PlaceID: &placeID}}

	hotels, err := s.hotelRepo.ListByPlace(ctx, placeID)
	if err != nil {
		s.logger.Error("Delete: failed to list hotels for place id=%d: %v", placeID, err)
		return false, fmt.Errorf("%w: Delete - hotels: %v", ErrInternal, err)
	}
	for _, h := range hotels {
		filters = append(filters, domain.ServiceBookingFilter{HotelID: &h.ID})
	}

	transports, err := s.transportRepo.ListByPlace(ctx, placeID)
	if err != nil {
		s.logger.Error("Delete: failed to list transports for place id=%d: %v", placeID, err)
		return false, fmt.Errorf("%w: Delete - transports: %v", ErrInternal, err)
	}
	for _, t := range transports {
		filters = append(filters, domain.ServiceBookingFilter{TransportID: &t.ID})
	}

	for _, filter := range filters {
		found, err := s.serviceBookingRepo.Exists(ctx, filter)
		if err != nil {
			s.logger.Error("Delete: failed to check service bookings for place id=%d: %v", placeID, err)
			return false, fmt.Errorf("%w: Delete - service bookings check: %v", ErrInternal, err)
		}
		if found {
			return true, nil
		}
	}
	return false, nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidatePlaces(ctx); err != nil {
		s.logger.Warn("failed to invalidate places cache: %v", err)
	}
}
