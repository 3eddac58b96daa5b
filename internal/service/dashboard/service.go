package dashboard

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CulturalTours/internal/domain"
)

// Stats счетчики главной страницы администратора
type Stats struct {
	TotalPlaces     int
	TotalBookings   int
	PendingBookings int
	TotalHotels     int
}

// Service сервис счетчиков админ-панели
type Service struct {
	placeRepo   PlaceRepository
	bookingRepo BookingRepository
	hotelRepo   HotelRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса админ-панели
func NewService(placeRepo PlaceRepository, bookingRepo BookingRepository, hotelRepo HotelRepository, logger Logger) *Service {
	return &Service{
		placeRepo:   placeRepo,
		bookingRepo: bookingRepo,
		hotelRepo:   hotelRepo,
		logger:      logger,
	}
}

// GetStats собирает счетчики направлений, бронирований и гостиниц
func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	var (
		stats Stats
		err   error
	)

	if stats.TotalPlaces, err = s.placeRepo.Count(ctx); err != nil {
		s.logger.Error("GetStats: failed to count places: %v", err)
		return nil, fmt.Errorf("%w: count places: %v", ErrInternal, err)
	}

	if stats.TotalBookings, err = s.bookingRepo.Count(ctx, domain.BookingFilter{}); err != nil {
		s.logger.Error("GetStats: failed to count bookings: %v", err)
		return nil, fmt.Errorf("%w: count bookings: %v", ErrInternal, err)
	}

	pending := domain.BookingFilter{Statuses: []domain.BookingStatus{domain.BookingPending}}
	if stats.PendingBookings, err = s.bookingRepo.Count(ctx, pending); err != nil {
		s.logger.Error("GetStats: failed to count pending bookings: %v", err)
		return nil, fmt.Errorf("%w: count pending bookings: %v", ErrInternal, err)
	}

	if stats.TotalHotels, err = s.hotelRepo.Count(ctx); err != nil {
		s.logger.Error("GetStats: failed to count hotels: %v", err)
		return nil, fmt.Errorf("%w: count hotels: %v", ErrInternal, err)
	}

	return &stats, nil
}
