package service_bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	serviceBookingRepo "github.com/m04kA/SMC-CulturalTours/internal/infra/storage/service_booking"
	"github.com/m04kA/SMC-CulturalTours/internal/service/service_bookings/models"
)

const metricsKind = "service"

// Service сервис для работы с бронированиями услуг
type Service struct {
	serviceBookingRepo ServiceBookingRepository
	placeRepo          PlaceRepository
	hotelRepo          HotelRepository
	transportRepo      TransportRepository
	metrics            Metrics
	logger             Logger
}

// NewService создает новый экземпляр сервиса бронирований услуг
func NewService(
	serviceBookingRepo ServiceBookingRepository,
	placeRepo PlaceRepository,
	hotelRepo HotelRepository,
	transportRepo TransportRepository,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		serviceBookingRepo: serviceBookingRepo,
		placeRepo:          placeRepo,
		hotelRepo:          hotelRepo,
		transportRepo:      transportRepo,
		metrics:            metrics,
		logger:             logger,
	}
}

// GetByID получает бронирование услуг с названиями направления, гостиницы и транспорта
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ServiceBookingItem, error) {
	booking, err := s.serviceBookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceBookingRepo.ErrServiceBookingNotFound) {
			s.logger.Warn("GetByID: service booking id=%d not found", id)
			return nil, ErrServiceBookingNotFound
		}
		s.logger.Error("GetByID: repository error for service booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	item := &models.ServiceBookingItem{Booking: booking}

	place, err := s.placeRepo.GetByID(ctx, booking.PlaceID)
	if err != nil {
		s.logger.Error("GetByID: failed to get place id=%d: %v", booking.PlaceID, err)
		return nil, fmt.Errorf("%w: GetByID - place: %v", ErrInternal, err)
	}
	item.PlaceName = place.Name

	if booking.HotelID != nil {
		hotel, err := s.hotelRepo.GetByID(ctx, *booking.HotelID)
		if err != nil {
			s.logger.Error("GetByID: failed to get hotel id=%d: %v", *booking.HotelID, err)
			return nil, fmt.Errorf("%w: GetByID - hotel: %v", ErrInternal, err)
		}
		item.HotelName = hotel.Name
	}

	if booking.TransportID != nil {
		transport, err := s.transportRepo.GetByID(ctx, *booking.TransportID)
		if err != nil {
			s.logger.Error("GetByID: failed to get transport id=%d: %v", *booking.TransportID, err)
			return nil, fmt.Errorf("%w: GetByID - transport: %v", ErrInternal, err)
		}
		item.TransportName = transport.Name
	}

	return item, nil
}

// List возвращает бронирования услуг, новые первыми
func (s *Service) List(ctx context.Context, req *models.ListRequest) ([]*models.ServiceBookingItem, error) {
	filter := domain.ServiceBookingFilter{}
	if status := strings.TrimSpace(req.Status); status != "" {
		parsed, ok := domain.ParseServiceBookingStatus(status)
		if !ok {
			s.logger.Warn("List: invalid status filter=%q", status)
			return nil, ErrInvalidStatus
		}
		filter.Statuses = []domain.ServiceBookingStatus{parsed}
	}

	list, err := s.serviceBookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	names, err := s.loadNames(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*models.ServiceBookingItem, 0, len(list))
	for _, b := range list {
		item := &models.ServiceBookingItem{Booking: b, PlaceName: names.places[b.PlaceID]}
		if b.HotelID != nil {
			item.HotelName = names.hotels[*b.HotelID]
		}
		if b.TransportID != nil {
			item.TransportName = names.transports[*b.TransportID]
		}
		items = append(items, item)
	}
	return items, nil
}

// UpdateStatus меняет статус бронирования услуг
// Допустимы только Pending, Confirmed и Cancelled; иначе запись не меняется
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating service booking id=%d to status=%q", id, req.Status)

	if _, err := s.serviceBookingRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, serviceBookingRepo.ErrServiceBookingNotFound) {
			s.logger.Warn("UpdateStatus: service booking id=%d not found", id)
			return ErrServiceBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for service booking id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	newStatus, ok := domain.ParseServiceBookingStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%q for service booking id=%d", req.Status, id)
		return ErrInvalidStatus
	}

	if err := s.serviceBookingRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, serviceBookingRepo.ErrServiceBookingNotFound) {
			return ErrServiceBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for service booking id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.metrics.StatusChanged(metricsKind, string(newStatus))
	s.logger.Info("UpdateStatus: successfully updated service booking id=%d to status=%s", id, newStatus)
	return nil
}

type catalogNames struct {
	places     map[int64]string
	hotels     map[int64]string
	transports map[int64]string
}

func (s *Service) loadNames(ctx context.Context) (*catalogNames, error) {
	places, err := s.placeRepo.List(ctx, domain.PlaceFilter{})
	if err != nil {
		s.logger.Error("failed to list places: %v", err)
		return nil, fmt.Errorf("%w: list places: %v", ErrInternal, err)
	}
	hotels, err := s.hotelRepo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list hotels: %v", err)
		return nil, fmt.Errorf("%w: list hotels: %v", ErrInternal, err)
	}
	transports, err := s.transportRepo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list transports: %v", err)
		return nil, fmt.Errorf("%w: list transports: %v", ErrInternal, err)
	}

	names := &catalogNames{
		places:     make(map[int64]string, len(places)),
		hotels:     make(map[int64]string, len(hotels)),
		transports: make(map[int64]string, len(transports)),
	}
	for _, p := range places {
		names.places[p.ID] = p.Name
	}
	for _, h := range hotels {
		names.hotels[h.ID] = h.Name
	}
	for _, t := range transports {
		names.transports[t.ID] = t.Name
	}
	return names, nil
}
