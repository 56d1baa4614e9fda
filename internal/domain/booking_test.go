package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sevadoor/booking-service/pkg/types"
)

func TestBooking_IsActive(t *testing.T) {
	tests := []struct {
		status BookingStatus
		active bool
	}{
		{StatusPending, true},
		{StatusConfirmed, true},
		{StatusOngoing, true},
		{StatusCompleted, false},
		{StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.active, b.IsActive())
		})
	}
}

func TestBooking_IsTerminal(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusCompleted}).IsTerminal())
	assert.True(t, (&Booking{Status: StatusCancelled}).IsTerminal())
	assert.False(t, (&Booking{Status: StatusPending}).IsTerminal())
	assert.False(t, (&Booking{Status: StatusConfirmed}).IsTerminal())
	assert.False(t, (&Booking{Status: StatusOngoing}).IsTerminal())
}

func TestBooking_IsDateLevel(t *testing.T) {
	slot := types.TimeString("10:00")

	assert.True(t, (&Booking{}).IsDateLevel())
	assert.False(t, (&Booking{TimeSlot: &slot}).IsDateLevel())
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"pending", "confirmed", "completed", "cancelled"} {
		status, ok := ParseStatus(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, BookingStatus(valid), status)
	}

	// ongoing остался только на легаси-строках и через API не устанавливается
	_, ok := ParseStatus("ongoing")
	assert.False(t, ok)

	_, ok = ParseStatus("unknown")
	assert.False(t, ok)

	_, ok = ParseStatus("")
	assert.False(t, ok)
}

func TestDeletionFlags_IsDeletedBy(t *testing.T) {
	flags := DeletionFlags{ByWorker: true}

	assert.True(t, flags.IsDeletedBy(ActorWorker))
	assert.False(t, flags.IsDeletedBy(ActorCustomer))
	assert.False(t, flags.IsDeletedBy(Actor("admin")))
}

func TestWorkingHours_Valid(t *testing.T) {
	assert.True(t, WorkingHours{Start: "09:00", End: "18:00", SlotDuration: 30}.Valid())

	assert.False(t, WorkingHours{Start: "18:00", End: "09:00", SlotDuration: 30}.Valid())
	assert.False(t, WorkingHours{Start: "09:00", End: "09:00", SlotDuration: 30}.Valid())
	assert.False(t, WorkingHours{Start: "09:00", End: "18:00", SlotDuration: 0}.Valid())
	assert.False(t, WorkingHours{Start: "9am", End: "18:00", SlotDuration: 30}.Valid())
}

func TestAvailabilityProfile_IsDateBlocked(t *testing.T) {
	profile := &AvailabilityProfile{
		WorkerID:     "w-1",
		BlockedDates: []types.DateString{"2026-09-01", "2026-09-15"},
	}

	assert.True(t, profile.IsDateBlocked("2026-09-01"))
	assert.False(t, profile.IsDateBlocked("2026-09-02"))
}
