package admin_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CulturalTours/internal/api/handlers"
	"github.com/m04kA/SMC-CulturalTours/internal/api/session"
	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	bookingsService "github.com/m04kA/SMC-CulturalTours/internal/service/bookings"
	bookingsModels "github.com/m04kA/SMC-CulturalTours/internal/service/bookings/models"
)

const (
	msgStatusUpdated = "Booking status updated."
	msgInvalidStatus = "Invalid status."

	listPath = "/admin/bookings"
)

type Handler struct {
	service   BookingsService
	responder *handlers.Responder
	logger    Logger
}

func NewHandler(service BookingsService, responder *handlers.Responder, logger Logger) *Handler {
	return &Handler{
		service:   service,
		responder: responder,
		logger:    logger,
	}
}

// List GET /admin/bookings?status=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	bookings, err := h.service.List(r.Context(), &bookingsModels.ListRequest{Status: status})
	if err != nil {
		if errors.Is(err, bookingsService.ErrInvalidStatus) {
			h.responder.RedirectWithFlash(w, r, listPath, session.FlashDanger, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
		h.responder.RespondInternalError(w, r)
		return
	}

	h.responder.Render(w, r, http.StatusOK, "admin_bookings", ListPage{
		Bookings:       bookings,
		Statuses:       domain.BookingStatuses,
		SelectedStatus: status,
	})
}

// UpdateStatus POST /admin/bookings/{id}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(r, "id")
	if !ok {
		h.responder.RespondNotFound(w, r)
		return
	}

	req := &bookingsModels.UpdateStatusRequest{Status: r.PostFormValue("status")}
	if err := h.service.UpdateStatus(r.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.responder.RespondNotFound(w, r)
		case errors.Is(err, bookingsService.ErrInvalidStatus):
			h.logger.Warn("POST /admin/bookings/%d/status - Invalid status: %q", id, req.Status)
			h.responder.RedirectWithFlash(w, r, listPath, session.FlashDanger, msgInvalidStatus)
		default:
			h.logger.Error("POST /admin/bookings/%d/status - Failed to update status: %v", id, err)
			h.responder.RespondInternalError(w, r)
		}
		return
	}

	h.logger.Info("POST /admin/bookings/%d/status - Status updated to %s", id, req.Status)
	h.responder.RedirectWithFlash(w, r, listPath, session.FlashSuccess, msgStatusUpdated)
}
