package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInvalidDate возвращается, когда дата не соответствует формату YYYY-MM-DD
	ErrInvalidDate = errors.New("get_available_slots: invalid date format, expected YYYY-MM-DD")

	// ErrWorkerNotFound возвращается, когда работник не найден
	ErrWorkerNotFound = errors.New("get_available_slots: worker not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
