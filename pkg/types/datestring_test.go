package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateString_Validate(t *testing.T) {
	for _, valid := range []string{"2026-01-01", "2026-12-31", "2024-02-29"} {
		assert.NoError(t, DateString(valid).Validate(), valid)
	}

	for _, invalid := range []string{"", "2026-1-1", "31-12-2026", "2026/12/31", "2026-13-01", "2026-02-30", "tomorrow"} {
		assert.Error(t, DateString(invalid).Validate(), invalid)
	}
}

func TestDateString_Time(t *testing.T) {
	parsed, err := DateString("2026-08-31").Time()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), parsed)

	_, err = DateString("not-a-date").Time()
	assert.Error(t, err)
}
