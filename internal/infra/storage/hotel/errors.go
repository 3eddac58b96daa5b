package hotel

import "errors"

var (
	// ErrHotelNotFound возвращается, когда гостиница не найдена
	ErrHotelNotFound = errors.New("hotel.repository: hotel not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("hotel.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("hotel.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("hotel.repository: failed to scan row")
)
