package get_available_slots

import (
	"context"
	"time"

	"github.com/sevadoor/booking-service/internal/domain"
	"github.com/sevadoor/booking-service/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetActiveForDate(ctx context.Context, workerID string, date time.Time, timeSlot *types.TimeString) ([]*domain.Booking, error)
}

// AvailabilityProvider интерфейс сервиса доступности работников
type AvailabilityProvider interface {
	GetProfile(ctx context.Context, workerID string) (*domain.AvailabilityProfile, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
