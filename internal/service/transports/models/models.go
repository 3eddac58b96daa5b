package models

import (
	"strings"

	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	"github.com/m04kA/SMC-CulturalTours/pkg/formparse"
	"github.com/m04kA/SMC-CulturalTours/pkg/ptr"
)

// Сообщения валидации формы транспорта
const (
	MsgRequiredFields  = "Place, transport type and name are required."
	MsgInvalidPlace    = "Selected place is not valid."
	MsgInvalidType     = "Transport type must be bus, cab or train."
	MsgInvalidPrice    = "Price must be a non-negative number."
	MsgInvalidCapacity = "Capacity must be a positive whole number."
	MsgInvalidDuration = "Duration must be a positive number of hours."
)

// TransportForm сырые значения формы транспорта
type TransportForm struct {
	PlaceID        string
	TransportType  string
	Name           string
	Description    string
	Price          string
	Capacity       string
	DurationHours  string
	OperatingHours string
	ContactInfo    string
}

// ToDomainTransport разбирает форму в транспортную услугу
func (f *TransportForm) ToDomainTransport() (*domain.Transport, formparse.Errors) {
	var errs formparse.Errors

	name := strings.TrimSpace(f.Name)
	kind := domain.TransportType(strings.TrimSpace(f.TransportType))
	if strings.TrimSpace(f.PlaceID) == "" || kind == "" || name == "" {
		errs.Add("required", MsgRequiredFields)
		return nil, errs
	}

	placeID, err := formparse.ID(f.PlaceID)
	if err != nil {
		errs.Add("place_id", MsgInvalidPlace)
	}

	if !kind.IsValid() {
		errs.Add("transport_type", MsgInvalidType)
	}

	price, err := formparse.FloatOr(f.Price, 0)
	if err != nil || price < 0 {
		errs.Add("price", MsgInvalidPrice)
	}

	capacity, err := formparse.OptionalInt(f.Capacity)
	if err != nil || (capacity != nil && *capacity <= 0) {
		errs.Add("capacity", MsgInvalidCapacity)
	}

	duration, err := formparse.OptionalFloat(f.DurationHours)
	if err != nil || (duration != nil && *duration <= 0) {
		errs.Add("duration_hours", MsgInvalidDuration)
	}

	if !errs.Empty() {
		return nil, errs
	}

	return &domain.Transport{
		PlaceID:        placeID,
		Type:           kind,
		Name:           name,
		Description:    ptr.NilIfEmpty(strings.TrimSpace(f.Description)),
		Price:          price,
		Capacity:       capacity,
		DurationHours:  duration,
		OperatingHours: ptr.NilIfEmpty(strings.TrimSpace(f.OperatingHours)),
		ContactInfo:    ptr.NilIfEmpty(strings.TrimSpace(f.ContactInfo)),
	}, nil
}

// TransportItem транспорт с названием направления для списков
type TransportItem struct {
	Transport *domain.Transport
	PlaceName string
}
