package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrWorkerNotFound возвращается, когда работник не найден
	ErrWorkerNotFound = errors.New("create_booking: worker not found")

	// ErrDateBlocked возвращается, когда работник заблокировал указанную дату
	ErrDateBlocked = errors.New("create_booking: worker is not available on this date")

	// ErrOutOfHours возвращается, когда время не входит в сетку слотов работника
	ErrOutOfHours = errors.New("create_booking: time is outside working hours")

	// ErrSlotConflict возвращается, когда слот или дата уже заняты активным бронированием
	ErrSlotConflict = errors.New("create_booking: slot is already taken")

	// ErrTransactionsUnsupported возвращается, когда безопасный путь запрошен
	// на развертывании без поддержки транзакций
	ErrTransactionsUnsupported = errors.New("create_booking: transactions are not supported, use the standard endpoint")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
