package admin_places

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-CulturalTours/internal/api/handlers"
	"github.com/m04kA/SMC-CulturalTours/internal/api/session"
	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	placesService "github.com/m04kA/SMC-CulturalTours/internal/service/places"
)

const (
	msgAdded       = "Place added successfully."
	msgUpdated     = "Place updated successfully."
	msgDeleted     = "Place deleted successfully."
	msgHasBookings = "Cannot delete this place because there are existing bookings. Please delete the bookings first or mark the place as inactive."

	listPath = "/admin/places"
	addPath  = "/admin/places/add"
)

type Handler struct {
	service   PlacesService
	states    []string
	responder *handlers.Responder
	logger    Logger
}

func NewHandler(service PlacesService, states []string, responder *handlers.Responder, logger Logger) *Handler {
	return &Handler{
		service:   service,
		states:    states,
		responder: responder,
		logger:    logger,
	}
}

// List GET /admin/places
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	places, err := h.service.List(r.Context(), domain.PlaceFilter{})
	if err != nil {
		h.logger.Error("GET /admin/places - Failed to list places: %v", err)
		h.responder.RespondInternalError(w, r)
		return
	}
	h.responder.Render(w, r, http.StatusOK, "admin_places", places)
}

// AddForm GET /admin/places/add
func (h *Handler) AddForm(w http.ResponseWriter, r *http.Request) {
	h.responder.Render(w, r, http.StatusOK, "admin_place_form", FormPage{States: h.states})
}

// Add POST /admin/places/add
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	place, err := h.service.Create(r.Context(), readForm(r))
	if err != nil {
		if errs, ok := handlers.AsFieldErrors(err); ok {
			h.responder.RedirectWithFieldErrors(w, r, addPath, errs)
			return
		}
		h.logger.Error("POST /admin/places/add - Failed to create place: %v", err)
		h.responder.RespondInternalError(w, r)
		return
	}

	h.logger.Info("POST /admin/places/add - Place created: id=%d", place.ID)
	h.responder.RedirectWithFlash(w, r, listPath, session.FlashSuccess, msgAdded)
}

// EditForm GET /admin/places/{id}/edit
func (h *Handler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(r, "id")
	if !ok {
		h.responder.RespondNotFound(w, r)
		return
	}

	place, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, r, "GET /admin/places/%d/edit", id, err)
		return
	}

	h.responder.Render(w, r, http.StatusOK, "admin_place_form", FormPage{Place: place, States: h.states})
}

// Edit POST /admin/places/{id}/edit
func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(r, "id")
	if !ok {
		h.responder.RespondNotFound(w, r)
		return
	}

	if _, err := h.service.Update(r.Context(), id, readForm(r)); err != nil {
		if errs, ok := handlers.AsFieldErrors(err); ok {
			h.responder.RedirectWithFieldErrors(w, r, fmt.Sprintf("/admin/places/%d/edit", id), errs)
			return
		}
		h.respondError(w, r, "POST /admin/places/%d/edit", id, err)
		return
	}

	h.logger.Info("POST /admin/places/%d/edit - Place updated", id)
	h.responder.RedirectWithFlash(w, r, listPath, session.FlashSuccess, msgUpdated)
}

// Delete POST /admin/places/{id}/delete
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(r, "id")
	if !ok {
		h.responder.RespondNotFound(w, r)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, placesService.ErrHasBookings) {
			h.logger.Warn("POST /admin/places/%d/delete - Place has bookings", id)
			h.responder.RedirectWithFlash(w, r, listPath, session.FlashDanger, msgHasBookings)
			return
		}
		h.respondError(w, r, "POST /admin/places/%d/delete", id, err)
		return
	}

	h.logger.Info("POST /admin/places/%d/delete - Place deleted", id)
	h.responder.RedirectWithFlash(w, r, listPath, session.FlashSuccess, msgDeleted)
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, route string, id int64, err error) {
	if errors.Is(err, placesService.ErrPlaceNotFound) {
		h.responder.RespondNotFound(w, r)
		return
	}
	h.logger.Error(route+" - Failed: %v", id, err)
	h.responder.RespondInternalError(w, r)
}
