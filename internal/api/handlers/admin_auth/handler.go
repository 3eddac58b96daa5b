package admin_auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-CulturalTours/internal/api/handlers"
	"github.com/m04kA/SMC-CulturalTours/internal/api/middleware"
	"github.com/m04kA/SMC-CulturalTours/internal/api/session"
	authService "github.com/m04kA/SMC-CulturalTours/internal/service/auth"
)

const (
	msgLoggedIn           = "Logged in as admin."
	msgInvalidCredentials = "Invalid credentials"
	msgLoggedOut          = "Logged out."

	dashboardPath = "/admin"
	homePath      = "/"
)

type Handler struct {
	auth      AuthService
	sessions  AdminSessions
	responder *handlers.Responder
	logger    Logger
}

func NewHandler(auth AuthService, sessions AdminSessions, responder *handlers.Responder, logger Logger) *Handler {
	return &Handler{
		auth:      auth,
		sessions:  sessions,
		responder: responder,
		logger:    logger,
	}
}

// LoginForm GET /admin/login
func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if h.sessions.IsAdmin(r) {
		http.Redirect(w, r, dashboardPath, http.StatusSeeOther)
		return
	}
	h.responder.Render(w, r, http.StatusOK, "admin_login", nil)
}

// Login POST /admin/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")

	if err := h.auth.Authenticate(username, password); err != nil {
		if errors.Is(err, authService.ErrInvalidCredentials) {
			h.logger.Warn("POST /admin/login - Invalid credentials: username=%s", username)
			h.responder.RedirectWithFlash(w, r, middleware.LoginPath, session.FlashDanger, msgInvalidCredentials)
			return
		}
		h.logger.Error("POST /admin/login - Failed to authenticate: %v", err)
		h.responder.RespondInternalError(w, r)
		return
	}

	if err := h.sessions.SetAdmin(w, r, true); err != nil {
		h.logger.Error("POST /admin/login - Failed to save session: %v", err)
		h.responder.RespondInternalError(w, r)
		return
	}

	h.logger.Info("POST /admin/login - Admin logged in: username=%s", username)
	h.responder.RedirectWithFlash(w, r, dashboardPath, session.FlashSuccess, msgLoggedIn)
}

// Logout GET /admin/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.SetAdmin(w, r, false); err != nil {
		h.logger.Error("GET /admin/logout - Failed to save session: %v", err)
		h.responder.RespondInternalError(w, r)
		return
	}
	h.responder.RedirectWithFlash(w, r, homePath, session.FlashInfo, msgLoggedOut)
}
