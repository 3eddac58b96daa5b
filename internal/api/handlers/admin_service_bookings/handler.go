package admin_service_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CulturalTours/internal/api/handlers"
	"github.com/m04kA/SMC-CulturalTours/internal/api/session"
	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	serviceBookingsService "github.com/m04kA/SMC-CulturalTours/internal/service/service_bookings"
	serviceBookingsModels "github.com/m04kA/SMC-CulturalTours/internal/service/service_bookings/models"
)

const (
	msgStatusUpdated = "Service booking status updated."
	msgInvalidStatus = "Invalid status."

	listPath = "/admin/service-bookings"
)

type Handler struct {
	service   ServiceBookingsService
	responder *handlers.Responder
	logger    Logger
}

func NewHandler(service ServiceBookingsService, responder *handlers.Responder, logger Logger) *Handler {
	return &Handler{
		service:   service,
		responder: responder,
		logger:    logger,
	}
}

// List GET /admin/service-bookings?status=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	bookings, err := h.service.List(r.Context(), &serviceBookingsModels.ListRequest{Status: status})
	if err != nil {
		if errors.Is(err, serviceBookingsService.ErrInvalidStatus) {
			h.responder.RedirectWithFlash(w, r, listPath, session.FlashDanger, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /admin/service-bookings - Failed to list service bookings: %v", err)
		h.responder.RespondInternalError(w, r)
		return
	}

	h.responder.Render(w, r, http.StatusOK, "admin_service_bookings", ListPage{
		Bookings:       bookings,
		Statuses:       domain.ServiceBookingStatuses,
		SelectedStatus: status,
	})
}

// UpdateStatus POST /admin/service-bookings/{id}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(r, "id")
	if !ok {
		h.responder.RespondNotFound(w, r)
		return
	}

	req := &serviceBookingsModels.UpdateStatusRequest{Status: r.PostFormValue("status")}
	if err := h.service.UpdateStatus(r.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, serviceBookingsService.ErrServiceBookingNotFound):
			h.responder.RespondNotFound(w, r)
		case errors.Is(err, serviceBookingsService.ErrInvalidStatus):
			h.logger.Warn("POST /admin/service-bookings/%d/status - Invalid status: %q", id, req.Status)
			h.responder.RedirectWithFlash(w, r, listPath, session.FlashDanger, msgInvalidStatus)
		default:
			h.logger.Error("POST /admin/service-bookings/%d/status - Failed to update status: %v", id, err)
			h.responder.RespondInternalError(w, r)
		}
		return
	}

	h.logger.Info("POST /admin/service-bookings/%d/status - Status updated to %s", id, req.Status)
	h.responder.RedirectWithFlash(w, r, listPath, session.FlashSuccess, msgStatusUpdated)
}
