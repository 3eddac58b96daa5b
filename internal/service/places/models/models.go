package models

import (
	"strings"

	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	"github.com/m04kA/SMC-CulturalTours/pkg/formparse"
	"github.com/m04kA/SMC-CulturalTours/pkg/ptr"
)

// Сообщения валидации формы направления
const (
	MsgRequiredFields      = "Please fill all required fields."
	MsgInvalidPrice        = "Price per person must be a number."
	MsgNegativePrice       = "Price per person cannot be negative."
	MsgInvalidDurationDays = "Duration must be a positive whole number of days."
)

// PlaceForm сырые значения формы направления
type PlaceForm struct {
	Name               string
	State              string
	City               string
	ShortIntro         string
	Description        string
	CultureDescription string
	ImageURL           string
	VideoURL           string
	PricePerPerson     string
	DurationDays       string
}

// ToDomainPlace разбирает форму в направление
// Сначала проверяются обязательные поля, затем числовые
func (f *PlaceForm) ToDomainPlace() (*domain.Place, formparse.Errors) {
	place := &domain.Place{
		Name:               strings.TrimSpace(f.Name),
		State:              strings.TrimSpace(f.State),
		City:               strings.TrimSpace(f.City),
		ShortIntro:         strings.TrimSpace(f.ShortIntro),
		Description:        strings.TrimSpace(f.Description),
		CultureDescription: strings.TrimSpace(f.CultureDescription),
		ImageURL:           ptr.NilIfEmpty(strings.TrimSpace(f.ImageURL)),
		VideoURL:           ptr.NilIfEmpty(strings.TrimSpace(f.VideoURL)),
	}

	var errs formparse.Errors
	if !place.HasRequiredFields() {
		errs.Add("required", MsgRequiredFields)
		return nil, errs
	}

	price, err := formparse.FloatOr(f.PricePerPerson, 0)
	switch {
	case err != nil:
		errs.Add("price_per_person", MsgInvalidPrice)
	case price < 0:
		errs.Add("price_per_person", MsgNegativePrice)
	}

	days, err := formparse.IntOr(f.DurationDays, domain.DefaultDurationDays)
	if err != nil || days <= 0 {
		errs.Add("duration_days", MsgInvalidDurationDays)
	}

	if !errs.Empty() {
		return nil, errs
	}

	place.PricePerPerson = price
	place.DurationDays = days
	return place, nil
}

// PlaceDetails направление вместе с услугами для страниц бронирования
type PlaceDetails struct {
	Place      *domain.Place
	Hotels     []*domain.Hotel
	Transports []*domain.Transport
}
