package hard_delete_booking

import "context"

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	HardDelete(ctx context.Context, bookingID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
