package create_booking

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-CulturalTours/internal/api/handlers"
	"github.com/m04kA/SMC-CulturalTours/internal/api/session"
	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	bookingsService "github.com/m04kA/SMC-CulturalTours/internal/service/bookings"
	placesService "github.com/m04kA/SMC-CulturalTours/internal/service/places"
	createBooking "github.com/m04kA/SMC-CulturalTours/internal/usecase/create_booking"
)

const (
	msgMissingFields     = "All required fields must be filled."
	msgInvalidDate       = "Invalid travel date."
	msgDateInPast        = "Travel date cannot be in the past."
	msgInvalidNumPeople  = "Number of people must be a positive number."
	msgDuplicateBooking  = "You already have a booking on %s. Please choose a different date or contact us to modify your existing booking."
	msgConcurrentRequest = "Your request conflicted with another submission. Please try again."
	msgCreated           = "Your booking request has been submitted!"
)

type Handler struct {
	useCase   CreateBookingUseCase
	places    PlacesService
	bookings  BookingsService
	responder *handlers.Responder
	logger    Logger
}

func NewHandler(
	useCase CreateBookingUseCase,
	places PlacesService,
	bookings BookingsService,
	responder *handlers.Responder,
	logger Logger,
) *Handler {
	return &Handler{
		useCase:   useCase,
		places:    places,
		bookings:  bookings,
		responder: responder,
		logger:    logger,
	}
}

// Form GET /book/{placeId}
func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	placeID, ok := handlers.PathID(r, "placeId")
	if !ok {
		h.responder.RespondNotFound(w, r)
		return
	}

	place, err := h.places.GetByID(r.Context(), placeID)
	if err != nil {
		if errors.Is(err, placesService.ErrPlaceNotFound) {
			h.responder.RespondNotFound(w, r)
			return
		}
		h.logger.Error("GET /book/%d - Failed to get place: %v", placeID, err)
		h.responder.RespondInternalError(w, r)
		return
	}

	h.responder.Render(w, r, http.StatusOK, "booking_form", FormPage{
		Place: place,
		Today: time.Now().Format(domain.DateFormat),
	})
}

// Handle POST /book/{placeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	placeID, ok := handlers.PathID(r, "placeId")
	if !ok {
		h.responder.RespondNotFound(w, r)
		return
	}

	req := toUseCaseRequest(r, placeID)
	formURL := fmt.Sprintf("/book/%d", placeID)

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrPlaceNotFound):
			h.logger.Warn("POST /book/%d - Place not found", placeID)
			h.responder.RespondNotFound(w, r)

		case errors.Is(err, createBooking.ErrMissingFields):
			h.responder.RedirectWithFlash(w, r, formURL, session.FlashDanger, msgMissingFields)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.responder.RedirectWithFlash(w, r, formURL, session.FlashDanger, msgInvalidDate)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.responder.RedirectWithFlash(w, r, formURL, session.FlashDanger, msgDateInPast)

		case errors.Is(err, createBooking.ErrInvalidNumPeople):
			h.responder.RedirectWithFlash(w, r, formURL, session.FlashDanger, msgInvalidNumPeople)

		case errors.Is(err, createBooking.ErrDuplicateBooking):
			h.logger.Warn("POST /book/%d - Duplicate booking: email=%s, date=%s", placeID, req.Email, req.TravelDate)
			h.responder.RedirectWithFlash(w, r, formURL, session.FlashDanger,
				fmt.Sprintf(msgDuplicateBooking, strings.TrimSpace(req.TravelDate)))

		case errors.Is(err, createBooking.ErrConcurrentRequest):
			h.responder.RedirectWithFlash(w, r, formURL, session.FlashDanger, msgConcurrentRequest)

		default:
			h.logger.Error("POST /book/%d - Failed to create booking: email=%s, error=%v", placeID, req.Email, err)
			h.responder.RespondInternalError(w, r)
		}
		return
	}

	h.logger.Info("POST /book/%d - Booking created successfully: booking_id=%d", placeID, result.ID)
	h.responder.RedirectWithFlash(w, r, fmt.Sprintf("/booking-success/%d", result.ID), session.FlashSuccess, msgCreated)
}

// Success GET /booking-success/{bookingId}
func (h *Handler) Success(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := handlers.PathID(r, "bookingId")
	if !ok {
		h.responder.RespondNotFound(w, r)
		return
	}

	details, err := h.bookings.GetByID(r.Context(), bookingID)
	if err != nil {
		if errors.Is(err, bookingsService.ErrBookingNotFound) {
			h.responder.RespondNotFound(w, r)
			return
		}
		h.logger.Error("GET /booking-success/%d - Failed to get booking: %v", bookingID, err)
		h.responder.RespondInternalError(w, r)
		return
	}

	h.responder.Render(w, r, http.StatusOK, "booking_success", details)
}
