package worker

import "errors"

var (
	// ErrProfileNotFound возвращается, когда профиль доступности не найден
	ErrProfileNotFound = errors.New("worker.repository: availability profile not found")

	// ErrProfileExists возвращается при попытке создать дубликат профиля
	ErrProfileExists = errors.New("worker.repository: availability profile already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("worker.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("worker.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("worker.repository: failed to scan row")
)
