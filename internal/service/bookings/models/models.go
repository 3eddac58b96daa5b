package models

import "github.com/m04kA/SMC-CulturalTours/internal/domain"

// ListRequest запрос списка бронирований для администратора
type ListRequest struct {
	Status string // пусто - все статусы
}

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	Status string
}

// BookingItem бронирование с названием направления
type BookingItem struct {
	Booking   *domain.Booking
	PlaceName string
}

// BookingDetails бронирование вместе с направлением (страница подтверждения)
type BookingDetails struct {
	Booking *domain.Booking
	Place   *domain.Place
}
