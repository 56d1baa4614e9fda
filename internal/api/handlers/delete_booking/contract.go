package delete_booking

import (
	"context"

	"github.com/sevadoor/booking-service/internal/domain"
)

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	SoftDelete(ctx context.Context, bookingID int64, actor domain.Actor, actorWorkerID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
