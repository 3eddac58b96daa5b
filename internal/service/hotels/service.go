package hotels

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	hotelRepo "github.com/m04kA/SMC-CulturalTours/internal/infra/storage/hotel"
	placeRepo "github.com/m04kA/SMC-CulturalTours/internal/infra/storage/place"
	"github.com/m04kA/SMC-CulturalTours/internal/service/hotels/models"
)

// Service сервис для работы с гостиницами
type Service struct {
	hotelRepo          HotelRepository
	placeRepo          PlaceRepository
	serviceBookingRepo ServiceBookingRepository
	logger             Logger
}

// NewService создает новый экземпляр сервиса гостиниц
func NewService(
	hotelRepo HotelRepository,
	placeRepo PlaceRepository,
	serviceBookingRepo ServiceBookingRepository,
	logger Logger,
) *Service {
	return &Service{
		hotelRepo:          hotelRepo,
		placeRepo:          placeRepo,
		serviceBookingRepo: serviceBookingRepo,
		logger:             logger,
	}
}

// List возвращает все гостиницы с названиями направлений
func (s *Service) List(ctx context.Context) ([]*models.HotelItem, error) {
	list, err := s.hotelRepo.List(ctx)
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

	items := make([]*models.HotelItem, 0, len(list))
	for _, h := range list {
		items = append(items, &models.HotelItem{Hotel: h, PlaceName: names[h.PlaceID]})
	}
	return items, nil
}

// GetByID получает гостиницу по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	hotel, err := s.hotelRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, hotelRepo.ErrHotelNotFound) {
			s.logger.Warn("GetByID: hotel id=%d not found", id)
			return nil, ErrHotelNotFound
		}
		s.logger.Error("GetByID: repository error for hotel id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return hotel, nil
}

// Create создает гостиницу из формы
// Направление гостиницы должно существовать
func (s *Service) Create(ctx context.Context, form *models.HotelForm) (*domain.Hotel, error) {
	s.logger.Info("Create: creating hotel name=%q place=%q", form.Name, form.PlaceID)

	hotel, err := s.parse(ctx, form)
	if err != nil {
		return nil, err
	}

	created, err := s.hotelRepo.Create(ctx, hotel)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created hotel id=%d", created.ID)
	return created, nil
}

// Update перезаписывает гостиницу значениями формы
func (s *Service) Update(ctx context.Context, id int64, form *models.HotelForm) (*domain.Hotel, error) {
	s.logger.Info("Update: updating hotel id=%d", id)

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hotel, err := s.parse(ctx, form)
	if err != nil {
		return nil, err
	}
	hotel.ID = existing.ID
	hotel.CreatedAt = existing.CreatedAt

	if err := s.hotelRepo.Update(ctx, hotel); err != nil {
		if errors.Is(err, hotelRepo.ErrHotelNotFound) {
			return nil, ErrHotelNotFound
		}
		s.logger.Error("Update: repository error for hotel id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated hotel id=%d", id)
	return hotel, nil
}

// Delete удаляет гостиницу
// Удаление запрещено, пока на гостиницу ссылается бронирование услуг в любом статусе
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting hotel id=%d", id)

	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	hasBookings, err := s.serviceBookingRepo.Exists(ctx, domain.ServiceBookingFilter{HotelID: &id})
	if err != nil {
		s.logger.Error("Delete: failed to check service bookings for hotel id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - service bookings check: %v", ErrInternal, err)
	}
	if hasBookings {
		s.logger.Warn("Delete: hotel id=%d has service bookings", id)
		return ErrHasBookings
	}

	if err := s.hotelRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, hotelRepo.ErrHotelNotFound) {
			return ErrHotelNotFound
		}
		s.logger.Error("Delete: repository error for hotel id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted hotel id=%d", id)
	return nil
}

func (s *Service) parse(ctx context.Context, form *models.HotelForm) (*domain.Hotel, error) {
	hotel, errs := form.ToDomainHotel()
	if errs != nil {
		s.logger.Warn("validation failed: %v", errs)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, errs)
	}

	if _, err := s.placeRepo.GetByID(ctx, hotel.PlaceID); err != nil {
		if errors.Is(err, placeRepo.ErrPlaceNotFound) {
			s.logger.Warn("place id=%d not found", hotel.PlaceID)
			return nil, ErrPlaceNotFound
		}
		s.logger.Error("failed to get place id=%d: %v", hotel.PlaceID, err)
		return nil, fmt.Errorf("%w: failed to get place: %v", ErrInternal, err)
	}

	return hotel, nil
}
