package get_availability

import (
	"context"

	"github.com/sevadoor/booking-service/internal/service/availability/models"
)

// AvailabilityService интерфейс сервиса доступности
type AvailabilityService interface {
	GetAvailability(ctx context.Context, workerID string) (*models.AvailabilityResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
