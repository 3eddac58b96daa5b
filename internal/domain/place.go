package domain

import (
	"net/url"
	"strings"
	"time"
)

// Place туристическое направление
type Place struct {
	ID                 int64
	Name               string
	State              string
	City               string
	ShortIntro         string
	Description        string
	CultureDescription string
	ImageURL           *string
	VideoURL           *string
	PricePerPerson     float64
	DurationDays       int
	CreatedAt          time.Time
}

// HasRequiredFields проверяет обязательные текстовые поля направления
func (p *Place) HasRequiredFields() bool {
	return p.Name != "" &&
		p.State != "" &&
		p.ShortIntro != "" &&
		p.Description != "" &&
		p.CultureDescription != ""
}

// EmbedVideoURL возвращает ссылку на видео в формате для iframe
func (p *Place) EmbedVideoURL() string {
	if p.VideoURL == nil {
		return ""
	}
	return YouTubeEmbedURL(*p.VideoURL)
}

// YouTubeEmbedURL преобразует ссылки youtube.com/watch?v=ID и youtu.be/ID
// в https://www.youtube.com/embed/ID. Остальные ссылки возвращаются как есть
func YouTubeEmbedURL(raw string) string {
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	if strings.Contains(u.Host, "youtube.com") && u.Path == "/watch" {
		if id := u.Query().Get("v"); id != "" {
			return "https://www.youtube.com/embed/" + id
		}
	}

	if strings.Contains(u.Host, "youtu.be") {
		if id := strings.TrimPrefix(u.Path, "/"); id != "" {
			return "https://www.youtube.com/embed/" + id
		}
	}

	return raw
}

// PlaceFilter фильтр списка направлений
type PlaceFilter struct {
	State *string // nil - все штаты
}
