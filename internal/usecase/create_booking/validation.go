package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/sevadoor/booking-service/internal/domain"
	"github.com/sevadoor/booking-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.WorkerID) == "" {
		return fmt.Errorf("%w: workerId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.JobDetails) == "" {
		return fmt.Errorf("%w: jobDetails is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.BookingDate) == "" {
		return fmt.Errorf("%w: bookingDate is required", ErrInvalidInput)
	}

	// Слот опционален, но при наличии обязан соответствовать HH:MM
	if req.Time != nil {
		if err := types.TimeString(*req.Time).Validate(); err != nil {
			return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
		}
	}

	return nil
}

// parseBookingDate разбирает дату из "YYYY-MM-DD" или RFC3339,
// отбрасывая время суток: бронирование всегда привязано к календарной дате
func parseBookingDate(raw string) (time.Time, error) {
	if parsed, err := time.Parse(domain.DateFormat, raw); err == nil {
		return parsed.UTC(), nil
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: expected YYYY-MM-DD or RFC3339, got %q", ErrInvalidDate, raw)
	}

	y, m, d := parsed.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// validateSlotMembership проверяет, что запрошенное время входит в сетку
// слотов, порожденную рабочими часами работника
func validateSlotMembership(slot types.TimeString, hours domain.WorkingHours) error {
	slots := domain.GenerateSlots(hours.Start, hours.End, hours.SlotDuration)
	if !domain.SlotSetContains(slots, slot) {
		return fmt.Errorf("%w: %s is not a valid slot for %s-%s/%d min",
			ErrOutOfHours, slot, hours.Start, hours.End, hours.SlotDuration)
	}
	return nil
}
