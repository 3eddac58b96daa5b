package transport

import "errors"

var (
	// ErrTransportNotFound возвращается, когда транспортная услуга не найдена
	ErrTransportNotFound = errors.New("transport.repository: transport not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("transport.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("transport.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("transport.repository: failed to scan row")
)
