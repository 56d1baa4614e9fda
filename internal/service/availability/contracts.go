package availability

import (
	"context"

	"github.com/sevadoor/booking-service/internal/domain"
	"github.com/sevadoor/booking-service/internal/integrations/identity"
	"github.com/sevadoor/booking-service/pkg/types"
)

// WorkerRepository интерфейс репозитория профилей доступности
type WorkerRepository interface {
	Create(ctx context.Context, profile *domain.AvailabilityProfile) error
	GetByWorkerID(ctx context.Context, workerID string) (*domain.AvailabilityProfile, error)
	AddBlockedDates(ctx context.Context, workerID string, dates []types.DateString) ([]types.DateString, error)
	RemoveBlockedDates(ctx context.Context, workerID string, dates []types.DateString) ([]types.DateString, error)
	ReplaceBlockedDates(ctx context.Context, workerID string, dates []types.DateString) ([]types.DateString, error)
	SetWorkingHours(ctx context.Context, workerID string, hours domain.WorkingHours) error
}

// IdentityClient интерфейс клиента IdentityService
type IdentityClient interface {
	GetWorkerWithGracefulDegradation(ctx context.Context, workerID string) (*identity.Worker, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
