package domain

import (
	"github.com/sevadoor/booking-service/pkg/types"
)

// WorkingHours is a worker's daily slot configuration
type WorkingHours struct {
	Start        types.TimeString
	End          types.TimeString
	SlotDuration int // minutes
}

// Valid reports whether the configuration can produce slots:
// both bounds well-formed, start strictly before end, positive duration
func (w WorkingHours) Valid() bool {
	if w.Start.Validate() != nil || w.End.Validate() != nil {
		return false
	}
	return w.Start.IsBefore(w.End) && w.SlotDuration > 0
}

// DefaultWorkingHours returns the configuration assigned to freshly
// provisioned workers
func DefaultWorkingHours() WorkingHours {
	return WorkingHours{
		Start:        DefaultWorkStart,
		End:          DefaultWorkEnd,
		SlotDuration: DefaultSlotDurationMinutes,
	}
}

// AvailabilityProfile is a worker's availability state: the dates on which
// the worker accepts no bookings at all, plus the working-hours config that
// drives slot generation
type AvailabilityProfile struct {
	WorkerID     string
	BlockedDates []types.DateString
	WorkingHours WorkingHours
}

// IsDateBlocked returns true if the given date is in the blocked set
func (p *AvailabilityProfile) IsDateBlocked(date types.DateString) bool {
	for _, d := range p.BlockedDates {
		if d == date {
			return true
		}
	}
	return false
}
