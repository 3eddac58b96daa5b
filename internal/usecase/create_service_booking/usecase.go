package create_service_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CulturalTours/internal/infra/storage/booking"
	hotelRepo "github.com/m04kA/SMC-CulturalTours/internal/infra/storage/hotel"
	placeRepo "github.com/m04kA/SMC-CulturalTours/internal/infra/storage/place"
	transportRepo "github.com/m04kA/SMC-CulturalTours/internal/infra/storage/transport"
	"github.com/m04kA/SMC-CulturalTours/pkg/formparse"
	"github.com/m04kA/SMC-CulturalTours/pkg/txmanager"
)

const metricsKind = "service"

// UseCase use case для бронирования гостиницы и/или транспорта
type UseCase struct {
	placeRepo          PlaceRepository
	hotelRepo          HotelRepository
	transportRepo      TransportRepository
	bookingRepo        BookingRepository
	serviceBookingRepo ServiceBookingRepository
	txManager          TransactionManager
	metrics            Metrics
	timeProvider       TimeProvider
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	placeRepo PlaceRepository,
	hotelRepo HotelRepository,
	transportRepo TransportRepository,
	bookingRepo BookingRepository,
	serviceBookingRepo ServiceBookingRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		placeRepo:          placeRepo,
		hotelRepo:          hotelRepo,
		transportRepo:      transportRepo,
		bookingRepo:        bookingRepo,
		serviceBookingRepo: serviceBookingRepo,
		txManager:          txManager,
		metrics:            metrics,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
	}
}

// Execute выполняет use case бронирования услуг
//
// Порядок проверок фиксирован, первая неудачная прерывает выполнение:
// контакты, выбор услуги, даты, количества, существование записей,
// занятость гостиницы, дубликаты (гостиница, транспорт, направление).
// Проверки занятости и дубликатов выполняются вместе со вставкой в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateServiceBooking: place=%d, email=%s, hotel=%q, transport=%q, check_in=%q, check_out=%q",
		req.PlaceID, req.CustomerEmail, req.HotelID, req.TransportID, req.CheckInDate, req.CheckOutDate)

	place, err := uc.placeRepo.GetByID(ctx, req.PlaceID)
	if err != nil {
		if errors.Is(err, placeRepo.ErrPlaceNotFound) {
			uc.logger.Warn("CreateServiceBooking: place id=%d not found", req.PlaceID)
			return nil, ErrPlaceNotFound
		}
		uc.logger.Error("CreateServiceBooking: failed to get place id=%d: %v", req.PlaceID, err)
		return nil, fmt.Errorf("%w: failed to get place: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()

	// 1-4. Проверки полей формы
	input, err := validateRequest(req, now)
	if err != nil {
		uc.logger.Warn("CreateServiceBooking: validation failed: %v", err)
		uc.reject(err)
		return nil, err
	}

	// 5. Выбранные услуги должны существовать
	hotel, err := uc.resolveHotel(ctx, input.RawHotelID)
	if err != nil {
		uc.reject(err)
		return nil, err
	}
	transport, err := uc.resolveTransport(ctx, input.RawTransportID)
	if err != nil {
		uc.reject(err)
		return nil, err
	}
	mainBookingID, err := uc.resolveMainBooking(ctx, input.RawMainBookingID)
	if err != nil {
		uc.reject(err)
		return nil, err
	}

	// 6. Расчет стоимости
	pricing := domain.CalculatePricing(hotel, transport, input.NumDays, input.NumRooms, input.NumPeople)

	booking := &domain.ServiceBooking{
		MainBookingID:   mainBookingID,
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		PlaceID:         place.ID,
		CheckInDate:     input.CheckIn,
		CheckOutDate:    input.CheckOut,
		NumPeople:       input.NumPeople,
		NumRooms:        input.NumRooms,
		NumDays:         input.NumDays,
		SpecialRequests: input.SpecialRequests,
		HotelTotal:      pricing.HotelTotal,
		TransportTotal:  pricing.TransportTotal,
		TotalAmount:     pricing.TotalAmount,
		Status:          domain.ServiceBookingPending,
	}
	if hotel != nil {
		booking.HotelID = &hotel.ID
	}
	if transport != nil {
		booking.TransportID = &transport.ID
	}

	var result *domain.ServiceBooking

	// 7-8. Занятость, дубликаты и вставка в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.checkConflicts(txCtx, booking, now); err != nil {
			return err
		}

		created, err := uc.serviceBookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateServiceBooking: failed to create service booking: %v", err)
			return fmt.Errorf("%w: failed to create service booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("CreateServiceBooking: concurrent submission for email=%s: %v", input.CustomerEmail, err)
			err = ErrConcurrentRequest
		} else if rejectReason(err) == "" && !errors.Is(err, ErrInternal) {
			uc.logger.Error("CreateServiceBooking: transaction failed: %v", err)
			err = fmt.Errorf("%w: %v", ErrInternal, err)
		}
		uc.reject(err)
		return nil, err
	}

	uc.metrics.BookingCreated(metricsKind)
	uc.logger.Info("CreateServiceBooking: service booking id=%d created for place=%d, total=%.2f",
		result.ID, place.ID, result.TotalAmount)

	return toResponse(result, place, hotel, transport), nil
}

// checkConflicts проверяет занятость гостиницы и повторные заявки того же клиента
func (uc *UseCase) checkConflicts(ctx context.Context, b *domain.ServiceBooking, now time.Time) error {
	// 7. Гостиница занята: существующий [in, out] пересекается с новым включительно
	if b.HotelID != nil && b.CheckInDate != nil && b.CheckOutDate != nil {
		busy, err := uc.exists(ctx, "hotel conflict", domain.ServiceBookingFilter{
			HotelID:           b.HotelID,
			CheckInOnOrBefore: b.CheckOutDate,
			CheckOutOnOrAfter: b.CheckInDate,
			Statuses:          domain.ActiveServiceBookingStatuses,
		})
		if err != nil {
			return err
		}
		if busy {
			uc.logger.Warn("CreateServiceBooking: hotel id=%d is booked for %s..%s", *b.HotelID,
				b.CheckInDate.Format(domain.DateFormat), b.CheckOutDate.Format(domain.DateFormat))
			return ErrHotelUnavailable
		}
	}

	// 8. Повторные заявки
	if b.HotelID != nil && b.CheckInDate != nil {
		dup, err := uc.exists(ctx, "duplicate hotel", domain.ServiceBookingFilter{
			CustomerEmail: &b.CustomerEmail,
			HotelID:       b.HotelID,
			CheckInDate:   b.CheckInDate,
			Statuses:      domain.ActiveServiceBookingStatuses,
		})
		if err != nil {
			return err
		}
		if dup {
			uc.logger.Warn("CreateServiceBooking: email=%s already booked hotel id=%d", b.CustomerEmail, *b.HotelID)
			return ErrDuplicateHotelBooking
		}
	}

	if b.TransportID != nil {
		startOfToday := startOfLocalDay(now)
		dup, err := uc.exists(ctx, "duplicate transport", domain.ServiceBookingFilter{
			CustomerEmail: &b.CustomerEmail,
			TransportID:   b.TransportID,
			CreatedFrom:   &startOfToday,
			Statuses:      domain.ActiveServiceBookingStatuses,
		})
		if err != nil {
			return err
		}
		if dup {
			uc.logger.Warn("CreateServiceBooking: email=%s already booked transport id=%d today", b.CustomerEmail, *b.TransportID)
			return ErrDuplicateTransportBooking
		}
	}

	if b.CheckInDate != nil {
		dup, err := uc.exists(ctx, "duplicate place", domain.ServiceBookingFilter{
			CustomerEmail: &b.CustomerEmail,
			PlaceID:       &b.PlaceID,
			CheckInDate:   b.CheckInDate,
			Statuses:      domain.ActiveServiceBookingStatuses,
		})
		if err != nil {
			return err
		}
		if dup {
			uc.logger.Warn("CreateServiceBooking: email=%s already has a service booking for place id=%d", b.CustomerEmail, b.PlaceID)
			return ErrDuplicatePlaceBooking
		}
	}

	return nil
}

func (uc *UseCase) exists(ctx context.Context, check string, filter domain.ServiceBookingFilter) (bool, error) {
	found, err := uc.serviceBookingRepo.Exists(ctx, filter)
	if err != nil {
		uc.logger.Error("CreateServiceBooking: %s check failed: %v", check, err)
		return false, fmt.Errorf("%w: %s check: %w", ErrInternal, check, err)
	}
	return found, nil
}

func (uc *UseCase) resolveHotel(ctx context.Context, raw string) (*domain.Hotel, error) {
	id, err := formparse.OptionalID(raw)
	if err != nil {
		uc.logger.Warn("CreateServiceBooking: malformed hotel id %q", raw)
		return nil, ErrHotelNotFound
	}
	if id == nil {
		return nil, nil
	}

	hotel, err := uc.hotelRepo.GetByID(ctx, *id)
	if err != nil {
		if errors.Is(err, hotelRepo.ErrHotelNotFound) {
			uc.logger.Warn("CreateServiceBooking: hotel id=%d not found", *id)
			return nil, ErrHotelNotFound
		}
		uc.logger.Error("CreateServiceBooking: failed to get hotel id=%d: %v", *id, err)
		return nil, fmt.Errorf("%w: failed to get hotel: %v", ErrInternal, err)
	}
	return hotel, nil
}

func (uc *UseCase) resolveTransport(ctx context.Context, raw string) (*domain.Transport, error) {
	id, err := formparse.OptionalID(raw)
	if err != nil {
		uc.logger.Warn("CreateServiceBooking: malformed transport id %q", raw)
		return nil, ErrTransportNotFound
	}
	if id == nil {
		return nil, nil
	}

	transport, err := uc.transportRepo.GetByID(ctx, *id)
	if err != nil {
		if errors.Is(err, transportRepo.ErrTransportNotFound) {
			uc.logger.Warn("CreateServiceBooking: transport id=%d not found", *id)
			return nil, ErrTransportNotFound
		}
		uc.logger.Error("CreateServiceBooking: failed to get transport id=%d: %v", *id, err)
		return nil, fmt.Errorf("%w: failed to get transport: %v", ErrInternal, err)
	}
	return transport, nil
}

func (uc *UseCase) resolveMainBooking(ctx context.Context, raw string) (*int64, error) {
	id, err := formparse.OptionalID(raw)
	if err != nil {
		uc.logger.Warn("CreateServiceBooking: malformed main booking id %q", raw)
		return nil, ErrMainBookingNotFound
	}
	if id == nil {
		return nil, nil
	}

	if _, err := uc.bookingRepo.GetByID(ctx, *id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CreateServiceBooking: main booking id=%d not found", *id)
			return nil, ErrMainBookingNotFound
		}
		uc.logger.Error("CreateServiceBooking: failed to get main booking id=%d: %v", *id, err)
		return nil, fmt.Errorf("%w: failed to get main booking: %v", ErrInternal, err)
	}
	return id, nil
}

func (uc *UseCase) reject(err error) {
	if reason := rejectReason(err); reason != "" {
		uc.metrics.BookingRejected(metricsKind, reason)
	}
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, ErrMissingCustomerDetails):
		return "missing_fields"
	case errors.Is(err, ErrNoServiceSelected):
		return "no_service"
	case errors.Is(err, ErrInvalidDateFormat),
		errors.Is(err, ErrCheckOutNotAfterCheckIn),
		errors.Is(err, ErrCheckInInPast),
		errors.Is(err, ErrMinimumStay):
		return "invalid_dates"
	case errors.Is(err, ErrInvalidQuantities):
		return "invalid_quantities"
	case errors.Is(err, ErrHotelNotFound),
		errors.Is(err, ErrTransportNotFound),
		errors.Is(err, ErrMainBookingNotFound):
		return "not_found"
	case errors.Is(err, ErrHotelUnavailable):
		return "hotel_unavailable"
	case errors.Is(err, ErrDuplicateHotelBooking),
		errors.Is(err, ErrDuplicateTransportBooking),
		errors.Is(err, ErrDuplicatePlaceBooking):
		return "duplicate"
	case errors.Is(err, ErrConcurrentRequest):
		return "concurrent"
	default:
		return ""
	}
}

func toResponse(b *domain.ServiceBooking, place *domain.Place, hotel *domain.Hotel, transport *domain.Transport) *Response {
	resp := &Response{
		ID:             b.ID,
		PlaceID:        b.PlaceID,
		PlaceName:      place.Name,
		CustomerName:   b.CustomerName,
		CustomerEmail:  b.CustomerEmail,
		HotelID:        b.HotelID,
		TransportID:    b.TransportID,
		CheckInDate:    b.CheckInDate,
		CheckOutDate:   b.CheckOutDate,
		NumPeople:      b.NumPeople,
		NumRooms:       b.NumRooms,
		NumDays:        b.NumDays,
		HotelTotal:     b.HotelTotal,
		TransportTotal: b.TransportTotal,
		TotalAmount:    b.TotalAmount,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
	}
	if hotel != nil {
		resp.HotelName = hotel.Name
	}
	if transport != nil {
		resp.TransportName = transport.Name
	}
	return resp
}
