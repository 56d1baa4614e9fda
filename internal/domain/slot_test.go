package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevadoor/booking-service/pkg/types"
)

func TestGenerateSlots_DefaultWorkingHours(t *testing.T) {
	slots := GenerateSlots("09:00", "18:00", 30)

	require.Len(t, slots, 18)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("09:30"), slots[1])
	assert.Equal(t, types.TimeString("17:30"), slots[17])
}

func TestGenerateSlots_LastSlotEndsExactlyAtEnd(t *testing.T) {
	// 10:00-12:00 по 60 минут: слот 11:00 заканчивается ровно в 12:00 и входит
	slots := GenerateSlots("10:00", "12:00", 60)

	assert.Equal(t, []types.TimeString{"10:00", "11:00"}, slots)
}

func TestGenerateSlots_PartialSlotNotEmitted(t *testing.T) {
	// 09:00-10:15 по 30 минут: слот 10:00 закончился бы в 10:30, не входит
	slots := GenerateSlots("09:00", "10:15", 30)

	assert.Equal(t, []types.TimeString{"09:00", "09:30"}, slots)
}

func TestGenerateSlots_UnevenDuration(t *testing.T) {
	slots := GenerateSlots("09:00", "12:01", 45)

	assert.Equal(t, []types.TimeString{"09:00", "09:45", "10:30", "11:15"}, slots)
}

func TestGenerateSlots_EmptyCases(t *testing.T) {
	tests := []struct {
		name     string
		start    types.TimeString
		end      types.TimeString
		duration int
	}{
		{"start equals end", "09:00", "09:00", 30},
		{"start after end", "18:00", "09:00", 30},
		{"zero duration", "09:00", "18:00", 0},
		{"negative duration", "09:00", "18:00", -30},
		{"window smaller than slot", "09:00", "09:20", 30},
		{"invalid start", "9:00", "18:00", 30},
		{"invalid end", "09:00", "25:00", 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := GenerateSlots(tt.start, tt.end, tt.duration)
			assert.NotNil(t, slots)
			assert.Empty(t, slots)
		})
	}
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	first := GenerateSlots("09:00", "18:00", 30)
	second := GenerateSlots("09:00", "18:00", 30)

	assert.Equal(t, first, second)
}

func TestSlotSetContains(t *testing.T) {
	slots := GenerateSlots("09:00", "18:00", 30)

	assert.True(t, SlotSetContains(slots, "09:00"))
	assert.True(t, SlotSetContains(slots, "17:30"))

	// Невыровненное и внесеточное время не являются членами сетки
	assert.False(t, SlotSetContains(slots, "09:15"))
	assert.False(t, SlotSetContains(slots, "18:00"))
	assert.False(t, SlotSetContains(slots, "08:30"))
}
