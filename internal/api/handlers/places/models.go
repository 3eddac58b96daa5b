package places

import "github.com/m04kA/SMC-CulturalTours/internal/domain"

// IndexPage данные главной страницы
type IndexPage struct {
	Places        []*domain.Place
	States        []string
	SelectedState string
}
