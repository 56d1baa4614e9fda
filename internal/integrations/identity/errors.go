package identity

import "errors"

var (
	// ErrWorkerNotFound возвращается, когда работник не зарегистрирован в IdentityService
	ErrWorkerNotFound = errors.New("worker not found in identity service")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("identity client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("identity client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что IdentityService недоступен и бронирование создается
	// без денормализованных данных о работнике
	ErrServiceDegraded = errors.New("identity service unavailable: graceful degradation applied")
)
