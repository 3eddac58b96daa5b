package models

import "github.com/m04kA/SMC-CulturalTours/internal/domain"

// ListRequest запрос списка бронирований услуг для администратора
type ListRequest struct {
	Status string // пусто - все статусы
}

// UpdateStatusRequest запрос на смену статуса бронирования услуг
type UpdateStatusRequest struct {
	Status string
}

// ServiceBookingItem бронирование услуг с названиями связанных записей
// Пустое название означает, что услуга не выбрана
type ServiceBookingItem struct {
	Booking       *domain.ServiceBooking
	PlaceName     string
	HotelName     string
	TransportName string
}
