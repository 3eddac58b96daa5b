// Package session хранит признак администратора и flash-сообщения в подписанной cookie.
package session

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/m04kA/SMC-CulturalTours/internal/config"
)

const adminKey = "admin_logged_in"

// Виды flash-сообщений (CSS-классы в шаблонах)
const (
	FlashSuccess = "success"
	FlashDanger  = "danger"
	FlashInfo    = "info"
)

// Flash одноразовое сообщение пользователю
type Flash struct {
	Kind    string
	Message string
}

func init() {
	gob.Register(Flash{})
}

// Store cookie-сессия поверх gorilla/sessions
type Store struct {
	store sessions.Store
	name  string
}

// NewStore создает хранилище сессий из конфигурации
func NewStore(cfg config.SessionConfig) *Store {
	cs := sessions.NewCookieStore([]byte(cfg.Secret))
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.MaxAge,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{store: cs, name: cfg.CookieName}
}

// IsAdmin сообщает, вошел ли администратор в этой сессии
// Поврежденная или чужая cookie считается отсутствующей
func (s *Store) IsAdmin(r *http.Request) bool {
	sess, err := s.store.Get(r, s.name)
	if err != nil {
		return false
	}
	loggedIn, _ := sess.Values[adminKey].(bool)
	return loggedIn
}

// SetAdmin устанавливает или снимает признак администратора
func (s *Store) SetAdmin(w http.ResponseWriter, r *http.Request, loggedIn bool) error {
	sess, _ := s.store.Get(r, s.name)
	if loggedIn {
		sess.Values[adminKey] = true
	} else {
		delete(sess.Values, adminKey)
	}
	return sess.Save(r, w)
}

// AddFlash добавляет сообщения, которые будут показаны на следующей странице
func (s *Store) AddFlash(w http.ResponseWriter, r *http.Request, kind string, messages ...string) error {
	sess, _ := s.store.Get(r, s.name)
	for _, m := range messages {
		sess.AddFlash(Flash{Kind: kind, Message: m})
	}
	return sess.Save(r, w)
}

// Flashes забирает накопленные сообщения; повторный вызов вернет пустой список
func (s *Store) Flashes(w http.ResponseWriter, r *http.Request) []Flash {
	sess, err := s.store.Get(r, s.name)
	if err != nil {
		return nil
	}

	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = sess.Save(r, w)

	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}
	return flashes
}
