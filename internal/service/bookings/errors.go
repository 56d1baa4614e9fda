package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrStatusLocked возвращается при попытке перевести бронирование
	// из терминального статуса в другой
	ErrStatusLocked = errors.New("booking status is terminal and cannot change")

	// ErrNotDeletable возвращается при попытке скрыть активное бронирование:
	// мягкое удаление доступно только для терминальных статусов
	ErrNotDeletable = errors.New("only completed or cancelled bookings can be deleted")

	// ErrAccessDenied возвращается, когда работник пытается скрыть чужое бронирование
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSlotConflict возвращается, когда смена статуса реанимировала бы
	// бронирование в уже занятый слот
	ErrSlotConflict = errors.New("slot is already taken by another active booking")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
