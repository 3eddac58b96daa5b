// Package handlers содержит общие функции HTML-ответов для обработчиков.
package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CulturalTours/internal/api/middleware"
	"github.com/m04kA/SMC-CulturalTours/internal/api/session"
	"github.com/m04kA/SMC-CulturalTours/pkg/formparse"
)

// Имена служебных страниц
const (
	PageNotFound      = "not_found"
	PageInternalError = "error"
)

// Renderer отрисовывает именованный шаблон
type Renderer interface {
	Render(w io.Writer, name string, data interface{}) error
}

// FlashStore хранилище flash-сообщений сессии
type FlashStore interface {
	AddFlash(w http.ResponseWriter, r *http.Request, kind string, messages ...string) error
	Flashes(w http.ResponseWriter, r *http.Request) []session.Flash
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Page данные, общие для всех страниц
type Page struct {
	Flashes []session.Flash
	Admin   bool
	Data    interface{}
}

// Responder формирует HTML-ответы и redirect с flash-сообщениями
type Responder struct {
	view    Renderer
	flashes FlashStore
	logger  Logger
}

// NewResponder создает Responder
func NewResponder(view Renderer, flashes FlashStore, logger Logger) *Responder {
	return &Responder{view: view, flashes: flashes, logger: logger}
}

// Render отрисовывает страницу с накопленными flash-сообщениями
// Шаблон выполняется в буфер, чтобы ошибка шаблона не оставила половину страницы
func (rs *Responder) Render(w http.ResponseWriter, r *http.Request, status int, name string, data interface{}) {
	page := Page{
		Flashes: rs.flashes.Flashes(w, r),
		Admin:   middleware.AdminFromContext(r.Context()).LoggedIn,
		Data:    data,
	}

	var buf bytes.Buffer
	if err := rs.view.Render(&buf, name, page); err != nil {
		rs.logger.Error("Render: template %s failed: %v", name, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		rs.logger.Warn("Render: failed to write %s: %v", name, err)
	}
}

// RedirectWithFlash сохраняет сообщение и перенаправляет с кодом 303
func (rs *Responder) RedirectWithFlash(w http.ResponseWriter, r *http.Request, url, kind, message string) {
	if err := rs.flashes.AddFlash(w, r, kind, message); err != nil {
		rs.logger.Error("RedirectWithFlash: failed to save flash: %v", err)
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// RedirectWithFieldErrors сохраняет по сообщению на каждую ошибку поля
func (rs *Responder) RedirectWithFieldErrors(w http.ResponseWriter, r *http.Request, url string, errs formparse.Errors) {
	messages := make([]string, 0, len(errs))
	for _, fe := range errs {
		messages = append(messages, fe.Message)
	}
	if err := rs.flashes.AddFlash(w, r, session.FlashDanger, messages...); err != nil {
		rs.logger.Error("RedirectWithFieldErrors: failed to save flash: %v", err)
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// RespondNotFound отвечает страницей 404
func (rs *Responder) RespondNotFound(w http.ResponseWriter, r *http.Request) {
	rs.Render(w, r, http.StatusNotFound, PageNotFound, nil)
}

// RespondInternalError отвечает страницей 500
func (rs *Responder) RespondInternalError(w http.ResponseWriter, r *http.Request) {
	rs.Render(w, r, http.StatusInternalServerError, PageInternalError, nil)
}

// PathID разбирает числовой параметр маршрута
func PathID(r *http.Request, name string) (int64, bool) {
	id, err := formparse.ID(mux.Vars(r)[name])
	if err != nil {
		return 0, false
	}
	return id, true
}

// AsFieldErrors извлекает ошибки полей формы из цепочки ошибок сервиса
func AsFieldErrors(err error) (formparse.Errors, bool) {
	var errs formparse.Errors
	if errors.As(err, &errs) {
		return errs, true
	}
	return nil, false
}

// PostFormOr возвращает значение поля формы или def, если поле не передано
// Переданное пустое значение возвращается как есть
func PostFormOr(r *http.Request, key, def string) string {
	value := r.PostFormValue(key)
	if _, ok := r.PostForm[key]; !ok {
		return def
	}
	return value
}
