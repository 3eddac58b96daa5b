package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CulturalTours/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CulturalTours/internal/service/bookings/models"
)

const metricsKind = "trip"

// Service сервис для работы с бронированиями туров
type Service struct {
	bookingRepo BookingRepository
	placeRepo   PlaceRepository
	metrics     Metrics
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	placeRepo PlaceRepository,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		placeRepo:   placeRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// GetByID получает бронирование вместе с направлением
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingDetails, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	place, err := s.placeRepo.GetByID(ctx, booking.PlaceID)
	if err != nil {
		s.logger.Error("GetByID: failed to get place id=%d for booking id=%d: %v", booking.PlaceID, id, err)
		return nil, fmt.Errorf("%w: GetByID - place: %v", ErrInternal, err)
	}

	return &models.BookingDetails{Booking: booking, Place: place}, nil
}

// List возвращает бронирования, новые первыми
func (s *Service) List(ctx context.Context, req *models.ListRequest) ([]*models.BookingItem, error) {
	filter := domain.BookingFilter{}
	if status := strings.TrimSpace(req.Status); status != "" {
		parsed, ok := domain.ParseBookingStatus(status)
		if !ok {
			s.logger.Warn("List: invalid status filter=%q", status)
			return nil, ErrInvalidStatus
		}
		filter.Statuses = []domain.BookingStatus{parsed}
	}

	list, err := s.bookingRepo.List(ctx, filter)
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

	items := make([]*models.BookingItem, 0, len(list))
	for _, b := range list {
		items = append(items, &models.BookingItem{Booking: b, PlaceName: names[b.PlaceID]})
	}
	return items, nil
}

// UpdateStatus меняет статус бронирования
// Допустимы только Pending, Confirmed и Rejected; иначе запись не меняется
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%q", bookingID, req.Status)

	// Получаем бронирование
	if _, err := s.bookingRepo.GetByID(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Валидируем статус
	newStatus, ok := domain.ParseBookingStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%q for booking id=%d", req.Status, bookingID)
		return ErrInvalidStatus
	}

	// Обновляем статус
	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.metrics.StatusChanged(metricsKind, string(newStatus))
	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}
