package admin_transports

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-CulturalTours/internal/api/handlers"
	"github.com/m04kA/SMC-CulturalTours/internal/api/session"
	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	transportsService "github.com/m04kA/SMC-CulturalTours/internal/service/transports"
	transportsModels "github.com/m04kA/SMC-CulturalTours/internal/service/transports/models"
)

const (
	msgAdded       = "Transport service added successfully."
	msgUpdated     = "Transport service updated successfully."
	msgDeleted     = "Transport service deleted successfully."
	msgHasBookings = "Cannot delete this transport service because there are existing service bookings. Please delete the bookings first or mark the transport as inactive."

	listPath = "/admin/transport"
	addPath  = "/admin/transport/add"
)

type Handler struct {
	service   TransportsService
	places    PlacesService
	responder *handlers.Responder
	logger    Logger
}

func NewHandler(service TransportsService, places PlacesService, responder *handlers.Responder, logger Logger) *Handler {
	return &Handler{
		service:   service,
		places:    places,
		responder: responder,
		logger:    logger,
	}
}

// List GET /admin/transport
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	transports, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/transport - Failed to list transport services: %v", err)
		h.responder.RespondInternalError(w, r)
		return
	}
	h.responder.Render(w, r, http.StatusOK, "admin_transports", transports)
}

// AddForm GET /admin/transport/add
func (h *Handler) AddForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, nil)
}

// Add POST /admin/transport/add
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	transport, err := h.service.Create(r.Context(), readForm(r))
	if err != nil {
		if h.redirectInvalid(w, r, addPath, err) {
			return
		}
		h.logger.Error("POST /admin/transport/add - Failed to create transport service: %v", err)
		h.responder.RespondInternalError(w, r)
		return
	}

	h.logger.Info("POST /admin/transport/add - Transport service created: id=%d", transport.ID)
	h.responder.RedirectWithFlash(w, r, listPath, session.FlashSuccess, msgAdded)
}

// EditForm GET /admin/transport/{id}/edit
func (h *Handler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(r, "id")
	if !ok {
		h.responder.RespondNotFound(w, r)
		return
	}

	transport, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, r, "GET /admin/transport/%d/edit", id, err)
		return
	}

	h.renderForm(w, r, transport)
}

// Edit POST /admin/transport/{id}/edit
func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(r, "id")
	if !ok {
		h.responder.RespondNotFound(w, r)
		return
	}

	if _, err := h.service.Update(r.Context(), id, readForm(r)); err != nil {
		if h.redirectInvalid(w, r, fmt.Sprintf("/admin/transport/%d/edit", id), err) {
			return
		}
		h.respondError(w, r, "POST /admin/transport/%d/edit", id, err)
		return
	}

	h.logger.Info("POST /admin/transport/%d/edit - Transport service updated", id)
	h.responder.RedirectWithFlash(w, r, listPath, session.FlashSuccess, msgUpdated)
}

// Delete POST /admin/transport/{id}/delete
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(r, "id")
	if !ok {
		h.responder.RespondNotFound(w, r)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, transportsService.ErrHasBookings) {
			h.logger.Warn("POST /admin/transport/%d/delete - Transport service has service bookings", id)
			h.responder.RedirectWithFlash(w, r, listPath, session.FlashDanger, msgHasBookings)
			return
		}
		h.respondError(w, r, "POST /admin/transport/%d/delete", id, err)
		return
	}

	h.logger.Info("POST /admin/transport/%d/delete - Transport service deleted", id)
	h.responder.RedirectWithFlash(w, r, listPath, session.FlashSuccess, msgDeleted)
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, transport *domain.Transport) {
	places, err := h.places.List(r.Context(), domain.PlaceFilter{})
	if err != nil {
		h.logger.Error("%s %s - Failed to list places: %v", r.Method, r.URL.Path, err)
		h.responder.RespondInternalError(w, r)
		return
	}
	h.responder.Render(w, r, http.StatusOK, "admin_transport_form", FormPage{
		Transport:      transport,
		Places:         places,
		TransportTypes: domain.TransportTypes,
	})
}

// redirectInvalid возвращает форму с сообщениями, если ошибка относится к данным формы
func (h *Handler) redirectInvalid(w http.ResponseWriter, r *http.Request, url string, err error) bool {
	if errs, ok := handlers.AsFieldErrors(err); ok {
		h.responder.RedirectWithFieldErrors(w, r, url, errs)
		return true
	}
	if errors.Is(err, transportsService.ErrPlaceNotFound) {
		h.responder.RedirectWithFlash(w, r, url, session.FlashDanger, transportsModels.MsgInvalidPlace)
		return true
	}
	return false
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, route string, id int64, err error) {
	if errors.Is(err, transportsService.ErrTransportNotFound) {
		h.responder.RespondNotFound(w, r)
		return
	}
	h.logger.Error(route+" - Failed: %v", id, err)
	h.responder.RespondInternalError(w, r)
}
