package admin_dashboard

import (
	"net/http"

	"github.com/m04kA/SMC-CulturalTours/internal/api/handlers"
)

type Handler struct {
	service   DashboardService
	responder *handlers.Responder
	logger    Logger
}

func NewHandler(service DashboardService, responder *handlers.Responder, logger Logger) *Handler {
	return &Handler{
		service:   service,
		responder: responder,
		logger:    logger,
	}
}

// Handle GET /admin
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		h.logger.Error("GET /admin - Failed to get stats: %v", err)
		h.responder.RespondInternalError(w, r)
		return
	}

	h.responder.Render(w, r, http.StatusOK, "admin_dashboard", stats)
}
