package create_service_booking

import "time"

// Request модель запроса на бронирование услуг
// Поля формы передаются как есть, разбор выполняет usecase
type Request struct {
	PlaceID       int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	HotelID       string // пусто - без гостиницы
	TransportID   string // пусто - без транспорта
	MainBookingID string // пусто - без связи с бронированием тура

	CheckInDate  string // "2025-10-15", опционально
	CheckOutDate string // опционально
	NumPeople    string // положительное целое
	NumRooms     string // положительное целое

	SpecialRequests string
}

// Response модель ответа с созданным бронированием услуг
type Response struct {
	ID            int64
	PlaceID       int64
	PlaceName     string
	CustomerName  string
	CustomerEmail string

	HotelID       *int64
	HotelName     string
	TransportID   *int64
	TransportName string

	CheckInDate  *time.Time
	CheckOutDate *time.Time
	NumPeople    int
	NumRooms     int
	NumDays      int

	HotelTotal     float64
	TransportTotal float64
	TotalAmount    float64

	Status    string
	CreatedAt time.Time
}
