package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevadoor/booking-service/internal/domain"
	availabilitySvc "github.com/sevadoor/booking-service/internal/service/availability"
	"github.com/sevadoor/booking-service/pkg/ptr"
	"github.com/sevadoor/booking-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// stubBookingRepo отдает фиксированный список активных бронирований
type stubBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (s *stubBookingRepo) GetActiveForDate(context.Context, string, time.Time, *types.TimeString) ([]*domain.Booking, error) {
	return s.bookings, s.err
}

type stubAvailability struct {
	profile *domain.AvailabilityProfile
	err     error
}

func (s *stubAvailability) GetProfile(context.Context, string) (*domain.AvailabilityProfile, error) {
	return s.profile, s.err
}

func narrowProfile() *domain.AvailabilityProfile {
	return &domain.AvailabilityProfile{
		WorkerID:     "w-1",
		BlockedDates: []types.DateString{"2026-09-15"},
		WorkingHours: domain.WorkingHours{Start: "10:00", End: "12:00", SlotDuration: 30},
	}
}

func newTestUseCase(repo *stubBookingRepo, availability *stubAvailability) *UseCase {
	return NewUseCase(repo, availability, nopLogger{})
}

func slotBooking(slot string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		WorkerID: "w-1",
		TimeSlot: ptr.Ptr(types.TimeString(slot)),
		Status:   status,
	}
}

func TestExecute_FullGridWhenNoBookings(t *testing.T) {
	uc := newTestUseCase(&stubBookingRepo{}, &stubAvailability{profile: narrowProfile()})

	resp, err := uc.Execute(context.Background(), &Request{WorkerID: "w-1", Date: "2026-09-10"})
	require.NoError(t, err)

	assert.False(t, resp.Blocked)
	assert.Equal(t, []string{"10:00", "10:30", "11:00", "11:30"}, resp.Slots)
}

func TestExecute_ActiveBookingsOccupySlots(t *testing.T) {
	repo := &stubBookingRepo{bookings: []*domain.Booking{
		slotBooking("10:30", domain.StatusPending),
		slotBooking("11:30", domain.StatusConfirmed),
	}}
	uc := newTestUseCase(repo, &stubAvailability{profile: narrowProfile()})

	resp, err := uc.Execute(context.Background(), &Request{WorkerID: "w-1", Date: "2026-09-10"})
	require.NoError(t, err)

	assert.Equal(t, []string{"10:00", "11:00"}, resp.Slots)
}

func TestExecute_DateLevelBookingDoesNotOccupySlots(t *testing.T) {
	dateLevel := &domain.Booking{WorkerID: "w-1", Status: domain.StatusConfirmed}
	repo := &stubBookingRepo{bookings: []*domain.Booking{dateLevel}}
	uc := newTestUseCase(repo, &stubAvailability{profile: narrowProfile()})

	resp, err := uc.Execute(context.Background(), &Request{WorkerID: "w-1", Date: "2026-09-10"})
	require.NoError(t, err)

	assert.Len(t, resp.Slots, 4)
}

func TestExecute_BlockedDateGivesEmptyList(t *testing.T) {
	uc := newTestUseCase(&stubBookingRepo{}, &stubAvailability{profile: narrowProfile()})

	resp, err := uc.Execute(context.Background(), &Request{WorkerID: "w-1", Date: "2026-09-15"})
	require.NoError(t, err)

	assert.True(t, resp.Blocked)
	assert.Empty(t, resp.Slots)
	assert.NotNil(t, resp.Slots)
}

func TestExecute_WorkerNotFound(t *testing.T) {
	uc := newTestUseCase(&stubBookingRepo{}, &stubAvailability{err: availabilitySvc.ErrWorkerNotFound})

	_, err := uc.Execute(context.Background(), &Request{WorkerID: "w-404", Date: "2026-09-10"})
	assert.ErrorIs(t, err, ErrWorkerNotFound)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&stubBookingRepo{}, &stubAvailability{profile: narrowProfile()})

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{"missing worker", &Request{Date: "2026-09-10"}, ErrInvalidInput},
		{"missing date", &Request{WorkerID: "w-1"}, ErrInvalidInput},
		{"bad date format", &Request{WorkerID: "w-1", Date: "10.09.2026"}, ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
