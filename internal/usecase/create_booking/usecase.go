package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	placeRepo "github.com/m04kA/SMC-CulturalTours/internal/infra/storage/place"
	"github.com/m04kA/SMC-CulturalTours/pkg/txmanager"
)

const metricsKind = "trip"

// UseCase use case для бронирования тура
type UseCase struct {
	placeRepo    PlaceRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	placeRepo PlaceRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		placeRepo:    placeRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case бронирования тура
// Проверка дубликата и вставка выполняются в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: place=%d, email=%s, date=%q", req.PlaceID, req.Email, req.TravelDate)

	// 1. Направление должно существовать
	place, err := uc.placeRepo.GetByID(ctx, req.PlaceID)
	if err != nil {
		if errors.Is(err, placeRepo.ErrPlaceNotFound) {
			uc.logger.Warn("CreateBooking: place id=%d not found", req.PlaceID)
			return nil, ErrPlaceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get place id=%d: %v", req.PlaceID, err)
		return nil, fmt.Errorf("%w: failed to get place: %v", ErrInternal, err)
	}

	// 2. Валидация полей формы
	input, err := validateRequest(req, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.reject(err)
		return nil, err
	}

	var result *domain.Booking

	// 3. Проверка дубликата и создание в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		duplicate, err := uc.bookingRepo.Exists(txCtx, domain.BookingFilter{
			Email:      &input.Email,
			TravelDate: &input.TravelDate,
			Statuses:   domain.ActiveBookingStatuses,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check duplicates: %v", err)
			return fmt.Errorf("%w: failed to check duplicates: %w", ErrInternal, err)
		}
		if duplicate {
			uc.logger.Warn("CreateBooking: email=%s already has a booking on %s",
				input.Email, input.TravelDate.Format(domain.DateFormat))
			return ErrDuplicateBooking
		}

		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			PlaceID:         place.ID,
			Name:            input.Name,
			Email:           input.Email,
			Phone:           input.Phone,
			TravelDate:      input.TravelDate,
			NumPeople:       input.NumPeople,
			SpecialRequests: input.SpecialRequests,
			Status:          domain.BookingPending,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("CreateBooking: concurrent submission for email=%s: %v", input.Email, err)
			err = ErrConcurrentRequest
		} else if !errors.Is(err, ErrDuplicateBooking) && !errors.Is(err, ErrInternal) {
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
			err = fmt.Errorf("%w: %v", ErrInternal, err)
		}
		uc.reject(err)
		return nil, err
	}

	uc.metrics.BookingCreated(metricsKind)
	uc.logger.Info("CreateBooking: booking id=%d created for place=%d", result.ID, place.ID)

	return toResponse(result, place), nil
}

func (uc *UseCase) reject(err error) {
	if reason := rejectReason(err); reason != "" {
		uc.metrics.BookingRejected(metricsKind, reason)
	}
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, ErrMissingFields):
		return "missing_fields"
	case errors.Is(err, ErrInvalidDate):
		return "invalid_date"
	case errors.Is(err, ErrDateInPast):
		return "past_date"
	case errors.Is(err, ErrInvalidNumPeople):
		return "invalid_num_people"
	case errors.Is(err, ErrDuplicateBooking):
		return "duplicate"
	case errors.Is(err, ErrConcurrentRequest):
		return "concurrent"
	default:
		return ""
	}
}

func toResponse(b *domain.Booking, place *domain.Place) *Response {
	return &Response{
		ID:              b.ID,
		PlaceID:         b.PlaceID,
		PlaceName:       place.Name,
		Name:            b.Name,
		Email:           b.Email,
		Phone:           b.Phone,
		TravelDate:      b.TravelDate,
		NumPeople:       b.NumPeople,
		SpecialRequests: b.SpecialRequests,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
	}
}
