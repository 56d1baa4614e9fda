package create_booking_safe

import (
	"context"

	createBooking "github.com/sevadoor/booking-service/internal/usecase/create_booking"
)

// CreateBookingSafeUseCase интерфейс безопасного пути создания бронирования
type CreateBookingSafeUseCase interface {
	ExecuteSafe(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
