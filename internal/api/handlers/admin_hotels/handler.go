package admin_hotels

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-CulturalTours/internal/api/handlers"
	"github.com/m04kA/SMC-CulturalTours/internal/api/session"
	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	hotelsService "github.com/m04kA/SMC-CulturalTours/internal/service/hotels"
	hotelsModels "github.com/m04kA/SMC-CulturalTours/internal/service/hotels/models"
)

const (
	msgAdded       = "Hotel added successfully."
	msgUpdated     = "Hotel updated successfully."
	msgDeleted     = "Hotel deleted successfully."
	msgHasBookings = "Cannot delete this hotel because there are existing service bookings. Please delete the bookings first or mark the hotel as inactive."

	listPath = "/admin/hotels"
	addPath  = "/admin/hotels/add"
)

type Handler struct {
	service   HotelsService
	places    PlacesService
	responder *handlers.Responder
	logger    Logger
}

func NewHandler(service HotelsService, places PlacesService, responder *handlers.Responder, logger Logger) *Handler {
	return &Handler{
		service:   service,
		places:    places,
		responder: responder,
		logger:    logger,
	}
}

// List GET /admin/hotels
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	hotels, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/hotels - Failed to list hotels: %v", err)
		h.responder.RespondInternalError(w, r)
		return
	}
	h.responder.Render(w, r, http.StatusOK, "admin_hotels", hotels)
}

// AddForm GET /admin/hotels/add
func (h *Handler) AddForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, nil)
}

// Add POST /admin/hotels/add
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.service.Create(r.Context(), readForm(r))
	if err != nil {
		if h.redirectInvalid(w, r, addPath, err) {
			return
		}
		h.logger.Error("POST /admin/hotels/add - Failed to create hotel: %v", err)
		h.responder.RespondInternalError(w, r)
		return
	}

	h.logger.Info("POST /admin/hotels/add - Hotel created: id=%d", hotel.ID)
	h.responder.RedirectWithFlash(w, r, listPath, session.FlashSuccess, msgAdded)
}

// EditForm GET /admin/hotels/{id}/edit
func (h *Handler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(r, "id")
	if !ok {
		h.responder.RespondNotFound(w, r)
		return
	}

	hotel, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, r, "GET /admin/hotels/%d/edit", id, err)
		return
	}

	h.renderForm(w, r, hotel)
}

// Edit POST /admin/hotels/{id}/edit
func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(r, "id")
	if !ok {
		h.responder.RespondNotFound(w, r)
		return
	}

	if _, err := h.service.Update(r.Context(), id, readForm(r)); err != nil {
		if h.redirectInvalid(w, r, fmt.Sprintf("/admin/hotels/%d/edit", id), err) {
			return
		}
		h.respondError(w, r, "POST /admin/hotels/%d/edit", id, err)
		return
	}

	h.logger.Info("POST /admin/hotels/%d/edit - Hotel updated", id)
	h.responder.RedirectWithFlash(w, r, listPath, session.FlashSuccess, msgUpdated)
}

// Delete POST /admin/hotels/{id}/delete
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(r, "id")
	if !ok {
		h.responder.RespondNotFound(w, r)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, hotelsService.ErrHasBookings) {
			h.logger.Warn("POST /admin/hotels/%d/delete - Hotel has service bookings", id)
			h.responder.RedirectWithFlash(w, r, listPath, session.FlashDanger, msgHasBookings)
			return
		}
		h.respondError(w, r, "POST /admin/hotels/%d/delete", id, err)
		return
	}

	h.logger.Info("POST /admin/hotels/%d/delete - Hotel deleted", id)
	h.responder.RedirectWithFlash(w, r, listPath, session.FlashSuccess, msgDeleted)
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, hotel *domain.Hotel) {
	places, err := h.places.List(r.Context(), domain.PlaceFilter{})
	if err != nil {
		h.logger.Error("%s %s - Failed to list places: %v", r.Method, r.URL.Path, err)
		h.responder.RespondInternalError(w, r)
		return
	}
	h.responder.Render(w, r, http.StatusOK, "admin_hotel_form", FormPage{Hotel: hotel, Places: places})
}

// redirectInvalid возвращает форму с сообщениями, если ошибка относится к данным формы
func (h *Handler) redirectInvalid(w http.ResponseWriter, r *http.Request, url string, err error) bool {
	if errs, ok := handlers.AsFieldErrors(err); ok {
		h.responder.RedirectWithFieldErrors(w, r, url, errs)
		return true
	}
	if errors.Is(err, hotelsService.ErrPlaceNotFound) {
		h.responder.RedirectWithFlash(w, r, url, session.FlashDanger, hotelsModels.MsgInvalidPlace)
		return true
	}
	return false
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, route string, id int64, err error) {
	if errors.Is(err, hotelsService.ErrHotelNotFound) {
		h.responder.RespondNotFound(w, r)
		return
	}
	h.logger.Error(route+" - Failed: %v", id, err)
	h.responder.RespondInternalError(w, r)
}
