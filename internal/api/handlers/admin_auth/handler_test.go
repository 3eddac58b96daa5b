package admin_auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-CulturalTours/internal/api/handlers/handlerstest"
	"github.com/m04kA/SMC-CulturalTours/internal/api/session"
	authService "github.com/m04kA/SMC-CulturalTours/internal/service/auth"
)

type MockAuthService struct{ mock.Mock }

func (m *MockAuthService) Authenticate(username, password string) error {
	return m.Called(username, password).Error(0)
}

type fakeSessions struct {
	admin   bool
	saveErr error
}

func (s *fakeSessions) IsAdmin(*http.Request) bool { return s.admin }

func (s *fakeSessions) SetAdmin(_ http.ResponseWriter, _ *http.Request, loggedIn bool) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.admin = loggedIn
	return nil
}

type fixture struct {
	auth     *MockAuthService
	sessions *fakeSessions
	view     *handlerstest.View
	flashes  *handlerstest.Flashes
	router   *mux.Router
}

func newFixture() *fixture {
	f := &fixture{auth: &MockAuthService{}, sessions: &fakeSessions{}}
	responder, view, flashes := handlerstest.NewResponder()
	f.view, f.flashes = view, flashes

	h := NewHandler(f.auth, f.sessions, responder, handlerstest.NopLogger{})
	f.router = mux.NewRouter()
	f.router.HandleFunc("/admin/login", h.LoginForm).Methods(http.MethodGet)
	f.router.HandleFunc("/admin/login", h.Login).Methods(http.MethodPost)
	f.router.HandleFunc("/admin/logout", h.Logout).Methods(http.MethodGet)
	return f
}

func loginRequest(username, password string) *http.Request {
	body := url.Values{"username": {username}, "password": {password}}.Encode()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestLoginForm(t *testing.T) {
	f := newFixture()

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/login", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin_login", f.view.Name)
}

func TestLoginForm_AlreadyLoggedIn(t *testing.T) {
	f := newFixture()
	f.sessions.admin = true

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/login", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get("Location"))
}

func TestLogin_Success(t *testing.T) {
	f := newFixture()
	f.auth.On("Authenticate", "admin", "secret").Return(nil)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, loginRequest(" admin ", "secret"))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get("Location"))
	assert.True(t, f.sessions.admin)
	assert.Equal(t, []session.Flash{{Kind: session.FlashSuccess, Message: msgLoggedIn}}, f.flashes.Added)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	f := newFixture()
	f.auth.On("Authenticate", "admin", "wrong").Return(authService.ErrInvalidCredentials)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, loginRequest("admin", "wrong"))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
	assert.False(t, f.sessions.admin)
	assert.Equal(t, []string{msgInvalidCredentials}, f.flashes.Messages())
}

func TestLogin_SessionSaveFails(t *testing.T) {
	f := newFixture()
	f.sessions.saveErr = errors.New("securecookie: too long")
	f.auth.On("Authenticate", "admin", "secret").Return(nil)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, loginRequest("admin", "secret"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLogout(t *testing.T) {
	f := newFixture()
	f.sessions.admin = true

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/logout", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.False(t, f.sessions.admin)
	assert.Equal(t, []session.Flash{{Kind: session.FlashInfo, Message: msgLoggedOut}}, f.flashes.Added)
}
