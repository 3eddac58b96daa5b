package admin_places

import (
	"net/http"

	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	placesModels "github.com/m04kA/SMC-CulturalTours/internal/service/places/models"
)

// FormPage данные страниц добавления и редактирования направления
// Place пустой на странице добавления
type FormPage struct {
	Place  *domain.Place
	States []string
}

func readForm(r *http.Request) *placesModels.PlaceForm {
	return &placesModels.PlaceForm{
		Name:               r.PostFormValue("name"),
		State:              r.PostFormValue("state"),
		City:               r.PostFormValue("city"),
		ShortIntro:         r.PostFormValue("short_intro"),
		Description:        r.PostFormValue("description"),
		CultureDescription: r.PostFormValue("culture_description"),
		ImageURL:           r.PostFormValue("image_url"),
		VideoURL:           r.PostFormValue("video_url"),
		PricePerPerson:     r.PostFormValue("price_per_person"),
		DurationDays:       r.PostFormValue("duration_days"),
	}
}
