package places

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-CulturalTours/internal/api/handlers"
	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	placesService "github.com/m04kA/SMC-CulturalTours/internal/service/places"
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

// Index GET /?state=...
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	var filter domain.PlaceFilter
	state := strings.TrimSpace(r.URL.Query().Get("state"))
	if state != "" {
		filter.State = &state
	}

	list, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET / - Failed to list places: state=%q, error=%v", state, err)
		h.responder.RespondInternalError(w, r)
		return
	}

	h.responder.Render(w, r, http.StatusOK, "index", IndexPage{
		Places:        list,
		States:        h.states,
		SelectedState: state,
	})
}

// Detail GET /place/{placeId}
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(r, "placeId")
	if !ok {
		h.responder.RespondNotFound(w, r)
		return
	}

	details, err := h.service.GetDetails(r.Context(), id)
	if err != nil {
		if errors.Is(err, placesService.ErrPlaceNotFound) {
			h.logger.Warn("GET /place/%d - Place not found", id)
			h.responder.RespondNotFound(w, r)
			return
		}
		h.logger.Error("GET /place/%d - Failed to get place: %v", id, err)
		h.responder.RespondInternalError(w, r)
		return
	}

	h.responder.Render(w, r, http.StatusOK, "place_detail", details)
}
