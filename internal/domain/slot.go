package domain

import "github.com/sevadoor/booking-service/pkg/types"

// GenerateSlots enumerates the bookable slot labels for a working-hours
// window: starting at start, stepping by slotDurationMinutes, in ascending
// order. A slot is emitted only if the whole slot fits before end; the last
// slot may end exactly at end. Returns the empty slice for a window that
// cannot hold a single slot or for a non-positive duration.
//
// The same sequence is used to enumerate availability and to validate that a
// requested booking time is an aligned member of the worker's slot set.
func GenerateSlots(start, end types.TimeString, slotDurationMinutes int) []types.TimeString {
	slots := make([]types.TimeString, 0)

	if slotDurationMinutes <= 0 {
		return slots
	}
	if start.Validate() != nil || end.Validate() != nil {
		return slots
	}

	current := start
	for current.IsBefore(end) {
		slotEnd, err := current.AddMinutes(slotDurationMinutes)
		if err != nil {
			break
		}
		if slotEnd.IsAfter(end) {
			break
		}

		slots = append(slots, current)

		current = slotEnd
	}

	return slots
}

// SlotSetContains reports whether slot is a member of the generated sequence
func SlotSetContains(slots []types.TimeString, slot types.TimeString) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
