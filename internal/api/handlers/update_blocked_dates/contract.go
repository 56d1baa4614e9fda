package update_blocked_dates

import (
	"context"

	"github.com/sevadoor/booking-service/internal/service/availability/models"
)

// AvailabilityService интерфейс сервиса доступности
type AvailabilityService interface {
	UpdateBlockedDates(ctx context.Context, workerID string, req *models.UpdateBlockedDatesRequest) (*models.BlockedDatesResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
