package models

import (
	"strings"

	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	"github.com/m04kA/SMC-CulturalTours/pkg/formparse"
	"github.com/m04kA/SMC-CulturalTours/pkg/ptr"
)

// Сообщения валидации формы гостиницы
const (
	MsgRequiredFields = "Place and name are required."
	MsgInvalidPlace   = "Selected place is not valid."
	MsgInvalidPrice   = "Price per night must be a non-negative number."
	MsgInvalidRating  = "Rating must be a number from 1 to 5."
)

const (
	minRating = 1.0
	maxRating = 5.0
)

// HotelForm сырые значения формы гостиницы
type HotelForm struct {
	PlaceID       string
	Name          string
	Description   string
	PricePerNight string
	Rating        string
	Amenities     string
	ImageURL      string
	ContactInfo   string
}

// ToDomainHotel разбирает форму в гостиницу
func (f *HotelForm) ToDomainHotel() (*domain.Hotel, formparse.Errors) {
	var errs formparse.Errors

	name := strings.TrimSpace(f.Name)
	if strings.TrimSpace(f.PlaceID) == "" || name == "" {
		errs.Add("required", MsgRequiredFields)
		return nil, errs
	}

	placeID, err := formparse.ID(f.PlaceID)
	if err != nil {
		errs.Add("place_id", MsgInvalidPlace)
	}

	price, err := formparse.FloatOr(f.PricePerNight, 0)
	if err != nil || price < 0 {
		errs.Add("price_per_night", MsgInvalidPrice)
	}

	rating, err := formparse.OptionalFloat(f.Rating)
	if err != nil || (rating != nil && (*rating < minRating || *rating > maxRating)) {
		errs.Add("rating", MsgInvalidRating)
	}

	if !errs.Empty() {
		return nil, errs
	}

	return &domain.Hotel{
		PlaceID:       placeID,
		Name:          name,
		Description:   ptr.NilIfEmpty(strings.TrimSpace(f.Description)),
		PricePerNight: price,
		Rating:        rating,
		Amenities:     ptr.NilIfEmpty(strings.TrimSpace(f.Amenities)),
		ImageURL:      ptr.NilIfEmpty(strings.TrimSpace(f.ImageURL)),
		ContactInfo:   ptr.NilIfEmpty(strings.TrimSpace(f.ContactInfo)),
	}, nil
}

// HotelItem гостиница с названием направления для списков
type HotelItem struct {
	Hotel     *domain.Hotel
	PlaceName string
}
