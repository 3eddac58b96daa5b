package middleware

import (
	"context"
	"net/http"
)

type adminKey struct{}

// LoginPath страница входа администратора
const LoginPath = "/admin/login"

// Admin состояние администратора в рамках одного запроса
type Admin struct {
	LoggedIn bool
}

// AdminSessions источник признака администратора
type AdminSessions interface {
	IsAdmin(r *http.Request) bool
}

// WithAdmin кладет значение Admin в контекст запроса
func WithAdmin(ctx context.Context, admin Admin) context.Context {
	return context.WithValue(ctx, adminKey{}, admin)
}

// AdminFromContext возвращает состояние администратора текущего запроса
func AdminFromContext(ctx context.Context) Admin {
	admin, _ := ctx.Value(adminKey{}).(Admin)
	return admin
}

// LoadAdmin читает признак администратора из сессии для каждого запроса
func LoadAdmin(sessions AdminSessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithAdmin(r.Context(), Admin{LoggedIn: sessions.IsAdmin(r)})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminGate пропускает только вошедшего администратора, остальных
// перенаправляет на страницу входа
func AdminGate(sessions AdminSessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			admin := AdminFromContext(r.Context())
			if !admin.LoggedIn && sessions.IsAdmin(r) {
				admin = Admin{LoggedIn: true}
			}
			if !admin.LoggedIn {
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context(), admin)))
		})
	}
}
