package create_booking

import "time"

// Request модель запроса на бронирование тура
// Поля формы передаются как есть, разбор выполняет usecase
type Request struct {
	PlaceID         int64
	Name            string
	Email           string
	Phone           string
	TravelDate      string // "2025-10-15"
	NumPeople       string // положительное целое
	SpecialRequests string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	PlaceID         int64
	PlaceName       string
	Name            string
	Email           string
	Phone           string
	TravelDate      time.Time
	NumPeople       int
	SpecialRequests *string
	Status          string
	CreatedAt       time.Time
}
