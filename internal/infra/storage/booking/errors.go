package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken возвращается при нарушении уникального индекса слота:
	// на (worker, date, time) уже есть активное бронирование
	ErrSlotTaken = errors.New("booking.repository: slot already taken")

	// ErrDateTaken возвращается при нарушении индекса дневных бронирований:
	// на (worker, date) уже есть активное бронирование без слота
	ErrDateTaken = errors.New("booking.repository: date already taken")

	// ErrTrackingIDTaken возвращается при коллизии кода отслеживания
	ErrTrackingIDTaken = errors.New("booking.repository: tracking id already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
