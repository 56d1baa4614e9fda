package availability

import "errors"

var (
	// ErrWorkerNotFound возвращается, когда работник не известен ни хранилищу,
	// ни IdentityService
	ErrWorkerNotFound = errors.New("worker not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate возвращается, когда дата не соответствует формату YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidWorkingHours возвращается при некорректной конфигурации рабочих часов
	ErrInvalidWorkingHours = errors.New("invalid working hours configuration")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
