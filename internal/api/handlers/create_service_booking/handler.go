package create_service_booking

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-CulturalTours/internal/api/handlers"
	"github.com/m04kA/SMC-CulturalTours/internal/api/session"
	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	placesService "github.com/m04kA/SMC-CulturalTours/internal/service/places"
	serviceBookingsService "github.com/m04kA/SMC-CulturalTours/internal/service/service_bookings"
	createServiceBooking "github.com/m04kA/SMC-CulturalTours/internal/usecase/create_service_booking"
)

const (
	msgMissingCustomerDetails = "Please fill in all required customer details."
	msgNoServiceSelected      = "Please select at least one service (hotel or transport)."
	msgInvalidDateFormat      = "Invalid date format."
	msgCheckOutNotAfter       = "Check-out date must be after check-in date."
	msgCheckInInPast          = "Check-in date cannot be in the past."
	msgMinimumStay            = "Minimum stay must be at least 1 day."
	msgInvalidQuantities      = "Number of people and rooms must be positive numbers."
	msgHotelNotFound          = "Selected hotel not found."
	msgTransportNotFound      = "Selected transport service not found."
	msgMainBookingNotFound    = "Linked trip booking not found."
	msgHotelUnavailable       = "Sorry, the selected hotel is not available for the chosen dates. Please select different dates or another hotel."
	msgDuplicateHotel         = "You already have a booking for this hotel on %s. Please choose a different date or contact us to modify your existing booking."
	msgDuplicateTransport     = "You already have a booking for this transport service today. Please contact us for multiple bookings."
	msgDuplicatePlace         = "You already have a service booking for %s on %s. Please choose a different date or contact us to modify your existing booking."
	msgConcurrentRequest      = "Your request conflicted with another submission. Please try again."
	msgCreated                = "Your service booking has been submitted successfully! We will contact you shortly to confirm."

	placeNameFallback = "this place"
)

type Handler struct {
	useCase         CreateServiceBookingUseCase
	places          PlacesService
	serviceBookings ServiceBookingsService
	responder       *handlers.Responder
	logger          Logger
}

func NewHandler(
	useCase CreateServiceBookingUseCase,
	places PlacesService,
	serviceBookings ServiceBookingsService,
	responder *handlers.Responder,
	logger Logger,
) *Handler {
	return &Handler{
		useCase:         useCase,
		places:          places,
		serviceBookings: serviceBookings,
		responder:       responder,
		logger:          logger,
	}
}

// Form GET /book-services/{placeId}?main_booking_id=
func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	placeID, ok := handlers.PathID(r, "placeId")
	if !ok {
		h.responder.RespondNotFound(w, r)
		return
	}

	details, err := h.places.GetDetails(r.Context(), placeID)
	if err != nil {
		if errors.Is(err, placesService.ErrPlaceNotFound) {
			h.responder.RespondNotFound(w, r)
			return
		}
		h.logger.Error("GET /book-services/%d - Failed to get place details: %v", placeID, err)
		h.responder.RespondInternalError(w, r)
		return
	}

	today := time.Now()
	h.responder.Render(w, r, http.StatusOK, "book_services", FormPage{
		PlaceDetails:  details,
		Today:         today.Format(domain.DateFormat),
		Tomorrow:      today.AddDate(0, 0, 1).Format(domain.DateFormat),
		MainBookingID: r.URL.Query().Get("main_booking_id"),
	})
}

// Handle POST /book-services/{placeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	placeID, ok := handlers.PathID(r, "placeId")
	if !ok {
		h.responder.RespondNotFound(w, r)
		return
	}

	req := toUseCaseRequest(r, placeID)
	formURL := fmt.Sprintf("/book-services/%d", placeID)
	checkIn := strings.TrimSpace(req.CheckInDate)

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, createServiceBooking.ErrPlaceNotFound) {
			h.logger.Warn("POST /book-services/%d - Place not found", placeID)
			h.responder.RespondNotFound(w, r)
			return
		}

		message, known := h.errorMessage(r, err, placeID, checkIn)
		if !known {
			h.logger.Error("POST /book-services/%d - Failed to create service booking: email=%s, error=%v",
				placeID, req.CustomerEmail, err)
			h.responder.RespondInternalError(w, r)
			return
		}

		h.logger.Warn("POST /book-services/%d - Rejected: email=%s, reason=%v", placeID, req.CustomerEmail, err)
		h.responder.RedirectWithFlash(w, r, formURL, session.FlashDanger, message)
		return
	}

	h.logger.Info("POST /book-services/%d - Service booking created successfully: booking_id=%d", placeID, result.ID)
	h.responder.RedirectWithFlash(w, r, fmt.Sprintf("/service-booking-success/%d", result.ID), session.FlashSuccess, msgCreated)
}

// Success GET /service-booking-success/{bookingId}
func (h *Handler) Success(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := handlers.PathID(r, "bookingId")
	if !ok {
		h.responder.RespondNotFound(w, r)
		return
	}

	item, err := h.serviceBookings.GetByID(r.Context(), bookingID)
	if err != nil {
		if errors.Is(err, serviceBookingsService.ErrServiceBookingNotFound) {
			h.responder.RespondNotFound(w, r)
			return
		}
		h.logger.Error("GET /service-booking-success/%d - Failed to get service booking: %v", bookingID, err)
		h.responder.RespondInternalError(w, r)
		return
	}

	h.responder.Render(w, r, http.StatusOK, "service_booking_success", item)
}

// errorMessage подбирает текст flash-сообщения для отказа use case
func (h *Handler) errorMessage(r *http.Request, err error, placeID int64, checkIn string) (string, bool) {
	switch {
	case errors.Is(err, createServiceBooking.ErrMissingCustomerDetails):
		return msgMissingCustomerDetails, true
	case errors.Is(err, createServiceBooking.ErrNoServiceSelected):
		return msgNoServiceSelected, true
	case errors.Is(err, createServiceBooking.ErrInvalidDateFormat):
		return msgInvalidDateFormat, true
	case errors.Is(err, createServiceBooking.ErrCheckOutNotAfterCheckIn):
		return msgCheckOutNotAfter, true
	case errors.Is(err, createServiceBooking.ErrCheckInInPast):
		return msgCheckInInPast, true
	case errors.Is(err, createServiceBooking.ErrMinimumStay):
		return msgMinimumStay, true
	case errors.Is(err, createServiceBooking.ErrInvalidQuantities):
		return msgInvalidQuantities, true
	case errors.Is(err, createServiceBooking.ErrHotelNotFound):
		return msgHotelNotFound, true
	case errors.Is(err, createServiceBooking.ErrTransportNotFound):
		return msgTransportNotFound, true
	case errors.Is(err, createServiceBooking.ErrMainBookingNotFound):
		return msgMainBookingNotFound, true
	case errors.Is(err, createServiceBooking.ErrHotelUnavailable):
		return msgHotelUnavailable, true
	case errors.Is(err, createServiceBooking.ErrDuplicateHotelBooking):
		return fmt.Sprintf(msgDuplicateHotel, checkIn), true
	case errors.Is(err, createServiceBooking.ErrDuplicateTransportBooking):
		return msgDuplicateTransport, true
	case errors.Is(err, createServiceBooking.ErrDuplicatePlaceBooking):
		return fmt.Sprintf(msgDuplicatePlace, h.placeName(r, placeID), checkIn), true
	case errors.Is(err, createServiceBooking.ErrConcurrentRequest):
		return msgConcurrentRequest, true
	default:
		return "", false
	}
}

func (h *Handler) placeName(r *http.Request, placeID int64) string {
	place, err := h.places.GetByID(r.Context(), placeID)
	if err != nil {
		h.logger.Warn("POST /book-services/%d - Failed to get place name: %v", placeID, err)
		return placeNameFallback
	}
	return place.Name
}
