package admin_auth

import "net/http"

type AuthService interface {
	Authenticate(username, password string) error
}

type AdminSessions interface {
	IsAdmin(r *http.Request) bool
	SetAdmin(w http.ResponseWriter, r *http.Request, loggedIn bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
