package domain

import "github.com/sevadoor/booking-service/pkg/types"

// Default working-hours configuration for a worker without an explicit one
const (
	DefaultWorkStart           = types.TimeString("09:00")
	DefaultWorkEnd             = types.TimeString("18:00")
	DefaultSlotDurationMinutes = 30
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, при которых бронирование занимает слот
// Используется в фильтрах конфликтов и в частичных уникальных индексах
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusOngoing,
}

// TerminalStatuses статусы, из которых нет переходов
// Только в этих статусах бронирование можно скрыть (soft delete)
var TerminalStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
}
