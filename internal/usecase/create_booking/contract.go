package create_booking

import (
	"context"
	"time"

	"github.com/sevadoor/booking-service/internal/domain"
	"github.com/sevadoor/booking-service/internal/integrations/identity"
	"github.com/sevadoor/booking-service/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetActiveForDate(ctx context.Context, workerID string, date time.Time, timeSlot *types.TimeString) ([]*domain.Booking, error)
	ExistsByTrackingID(ctx context.Context, trackingID string) (bool, error)
}

// AvailabilityProvider интерфейс сервиса доступности работников
type AvailabilityProvider interface {
	GetProfile(ctx context.Context, workerID string) (*domain.AvailabilityProfile, error)
}

// IdentityClient интерфейс клиента IdentityService
type IdentityClient interface {
	GetWorkerWithGracefulDegradation(ctx context.Context, workerID string) (*identity.Worker, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
