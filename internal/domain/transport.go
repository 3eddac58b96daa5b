package domain

import "time"

// TransportType тип транспорта
type TransportType string

const (
	TransportBus   TransportType = "bus"
	TransportCab   TransportType = "cab"
	TransportTrain TransportType = "train"
)

// TransportTypes допустимые типы транспорта
var TransportTypes = []TransportType{TransportBus, TransportCab, TransportTrain}

// IsValid проверяет, что тип входит в список допустимых
func (t TransportType) IsValid() bool {
	for _, v := range TransportTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Transport транспортная услуга, привязанная к направлению
type Transport struct {
	ID             int64
	PlaceID        int64
	Type           TransportType
	Name           string
	Description    *string
	Price          float64 // за человека
	Capacity       *int
	DurationHours  *float64
	OperatingHours *string
	ContactInfo    *string
	CreatedAt      time.Time
}
