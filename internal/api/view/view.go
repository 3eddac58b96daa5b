// Package view отрисовывает HTML-страницы из встроенных шаблонов.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
)

const (
	layoutFile   = "templates/layout.html"
	layoutName   = "layout"
	templateGlob = "templates/*.html"
)

//go:embed templates/*.html
var templatesFS embed.FS

// View набор страниц, каждая собрана вместе с общим layout
type View struct {
	pages map[string]*template.Template
}

// New разбирает все встроенные шаблоны
// Имя страницы - имя файла без расширения
func New() (*View, error) {
	files, err := fs.Glob(templatesFS, templateGlob)
	if err != nil {
		return nil, fmt.Errorf("view: failed to list templates: %w", err)
	}

	v := &View{pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		if file == layoutFile {
			continue
		}

		name := strings.TrimSuffix(path.Base(file), path.Ext(file))
		page, err := template.New(path.Base(layoutFile)).Funcs(funcs).ParseFS(templatesFS, layoutFile, file)
		if err != nil {
			return nil, fmt.Errorf("view: failed to parse %s: %w", file, err)
		}
		v.pages[name] = page
	}

	return v, nil
}

// Render выполняет страницу name с данными data
func (v *View) Render(w io.Writer, name string, data interface{}) error {
	page, ok := v.pages[name]
	if !ok {
		return fmt.Errorf("view: unknown page %q", name)
	}
	return page.ExecuteTemplate(w, layoutName, data)
}

// Pages возвращает имена всех страниц
func (v *View) Pages() []string {
	names := make([]string, 0, len(v.pages))
	for name := range v.pages {
		names = append(names, name)
	}
	return names
}
