// Package handlerstest содержит подмены зависимостей Responder для тестов обработчиков.
package handlerstest

import (
	"fmt"
	"io"
	"net/http"

	"github.com/m04kA/SMC-CulturalTours/internal/api/handlers"
	"github.com/m04kA/SMC-CulturalTours/internal/api/session"
)

// View запоминает последнюю отрисованную страницу и пишет ее имя в тело ответа
type View struct {
	Name string
	Page handlers.Page
}

func (v *View) Render(w io.Writer, name string, data interface{}) error {
	v.Name = name
	if page, ok := data.(handlers.Page); ok {
		v.Page = page
	}
	_, err := fmt.Fprint(w, name)
	return err
}

// Flashes держит flash-сообщения в памяти
type Flashes struct {
	Added   []session.Flash
	Pending []session.Flash
}

func (f *Flashes) AddFlash(_ http.ResponseWriter, _ *http.Request, kind string, messages ...string) error {
	for _, m := range messages {
		f.Added = append(f.Added, session.Flash{Kind: kind, Message: m})
	}
	return nil
}

func (f *Flashes) Flashes(http.ResponseWriter, *http.Request) []session.Flash {
	out := f.Pending
	f.Pending = nil
	return out
}

// Messages возвращает тексты добавленных сообщений
func (f *Flashes) Messages() []string {
	out := make([]string, 0, len(f.Added))
	for _, fl := range f.Added {
		out = append(out, fl.Message)
	}
	return out
}

// NopLogger логгер без вывода
type NopLogger struct{}

func (NopLogger) Info(string, ...interface{})  {}
func (NopLogger) Warn(string, ...interface{})  {}
func (NopLogger) Error(string, ...interface{}) {}

// NewResponder собирает Responder на подменах
func NewResponder() (*handlers.Responder, *View, *Flashes) {
	view, flashes := &View{}, &Flashes{}
	return handlers.NewResponder(view, flashes, NopLogger{}), view, flashes
}
