package get_available_slots

import (
	"context"

	getSlots "github.com/sevadoor/booking-service/internal/usecase/get_available_slots"
)

// GetAvailableSlotsUseCase интерфейс use case расчета свободных слотов
type GetAvailableSlotsUseCase interface {
	Execute(ctx context.Context, req *getSlots.Request) (*getSlots.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
