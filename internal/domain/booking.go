package domain

import (
	"time"

	"github.com/sevadoor/booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"

	// StatusOngoing is a legacy status carried by bookings created before the
	// status model was reduced to four values. It still occupies a slot but
	// can no longer be set through the API.
	StatusOngoing BookingStatus = "ongoing"
)

// Actor identifies which side of a booking performs an action
type Actor string

const (
	ActorWorker   Actor = "worker"
	ActorCustomer Actor = "customer"
)

// Location is an optional geo point attached to a booking
type Location struct {
	Latitude      float64
	Longitude     float64
	GoogleMapsURL string
}

// DeletionFlags is the per-actor visibility record of a booking.
// A set flag hides the booking from that actor's listings; the record itself
// is never removed from storage by a soft delete.
type DeletionFlags struct {
	ByWorker   bool
	ByCustomer bool
}

// IsDeletedBy returns true if the booking is hidden from the given actor
func (f DeletionFlags) IsDeletedBy(actor Actor) bool {
	switch actor {
	case ActorWorker:
		return f.ByWorker
	case ActorCustomer:
		return f.ByCustomer
	default:
		return false
	}
}

// Booking represents a customer booking of a worker's time
type Booking struct {
	ID         int64
	TrackingID string

	WorkerID      string
	ClientName    string
	ClientPhone   *string
	ClientAddress *string
	JobDetails    string

	BookingDate time.Time         // calendar date, time of day is always midnight UTC
	TimeSlot    *types.TimeString // nil = date-level booking without a slot

	Status   BookingStatus
	Deletion DeletionFlags

	// Denormalized worker display data for customer-facing views
	WorkerName       *string
	WorkerProfession *string

	Location *Location
	Photos   []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its slot for conflict purposes
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed || b.Status == StatusOngoing
}

// IsTerminal returns true if the booking reached a final status.
// Terminal bookings are locked for status transitions and are the only
// bookings eligible for soft deletion.
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// IsDateLevel returns true for bookings made without a time slot
func (b *Booking) IsDateLevel() bool {
	return b.TimeSlot == nil
}

// ParseStatus validates a requested status value against the write enum.
// StatusOngoing is intentionally not parseable: it exists only on legacy rows.
func ParseStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return BookingStatus(s), true
	default:
		return "", false
	}
}
