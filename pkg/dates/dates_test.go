package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToEastern_ConvertsUTCInstant(t *testing.T) {
	// 23:59 UTC on March 1st is 18:59 Eastern (EST, UTC-5).
	got, ok := ToEastern("2024-03-01T23:59:00Z")
	require.True(t, ok)
	assert.Equal(t, "2024-03-01T18:59:00", got)
}

func TestToEastern_HonorsDaylightSaving(t *testing.T) {
	// July is EDT (UTC-4).
	got, ok := ToEastern("2024-07-15T12:00:00Z")
	require.True(t, ok)
	assert.Equal(t, "2024-07-15T08:00:00", got)
}

func TestToEastern_RoundTripSameInstant(t *testing.T) {
	const input = "2024-03-01T23:59:00Z"

	got, ok := ToEastern(input)
	require.True(t, ok)

	loc, err := time.LoadLocation(EasternZone)
	require.NoError(t, err)

	converted, err := time.ParseInLocation("2006-01-02T15:04:05", got, loc)
	require.NoError(t, err)

	original, err := time.Parse(time.RFC3339, input)
	require.NoError(t, err)

	assert.True(t, converted.Equal(original), "conversion must preserve the instant")
}

func TestToEastern_ExplicitOffsetAccepted(t *testing.T) {
	got, ok := ToEastern("2024-03-01T23:59:00+00:00")
	require.True(t, ok)
	assert.Equal(t, "2024-03-01T18:59:00", got)
}

func TestToEastern_MalformedInput(t *testing.T) {
	cases := []string{
		"",
		"not a date",
		"2024-03-01",          // date only, no time
		"2024-03-01 23:59:00", // missing T separator
	}

	for _, input := range cases {
		got, ok := ToEastern(input)
		assert.False(t, ok, "input %q should not parse", input)
		assert.Empty(t, got)
	}
}
