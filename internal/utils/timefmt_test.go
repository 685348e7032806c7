package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntryTimestamp(t *testing.T) {
	ts, err := ParseEntryTimestamp("14-03-2025", "09:15:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 14, 9, 15, 0, 0, time.UTC), ts)

	ts, err = ParseEntryTimestamp("15-03-2025", "18:40")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 15, 18, 40, 0, 0, time.UTC), ts)

	_, err = ParseEntryTimestamp("2025-03-14", "09:15:00")
	assert.Error(t, err)

	_, err = ParseEntryTimestamp("14-03-2025", "quarter past nine")
	assert.Error(t, err)
}

func TestFormatEntryTimestamp(t *testing.T) {
	assert.Equal(t, "Friday, March 14, 2025, 09:15 AM", FormatEntryTimestamp("14-03-2025", "09:15:00"))
	assert.Equal(t, "Saturday, March 15, 2025, 06:40 PM", FormatEntryTimestamp("15-03-2025", "18:40:00"))

	// Bad records fall back to the raw strings instead of breaking the listing.
	assert.Equal(t, "soon 10:00", FormatEntryTimestamp("soon", "10:00"))
}
