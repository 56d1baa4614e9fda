package bookings

import (
	"context"

	"github.com/sevadoor/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByTrackingID(ctx context.Context, trackingID string) (*domain.Booking, error)
	GetByWorkerID(ctx context.Context, workerID string) ([]*domain.Booking, error)
	GetByClientName(ctx context.Context, clientName string) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	SetDeleted(ctx context.Context, id int64, actor domain.Actor) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
