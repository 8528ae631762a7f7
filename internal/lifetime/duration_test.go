package lifetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input  string
		expect time.Duration
	}{
		{"30days", 30 * Day},
		{"45d", 45 * Day},
		{"1day", Day},
		{"12h", 12 * time.Hour},
		{"12h30m", 12*time.Hour + 30*time.Minute},
		{"1week 2days", 9 * Day},
		{"2weeks", 2 * Week},
		{"90 minutes", 90 * time.Minute},
		{"1h 30min", 90 * time.Minute},
		{"45s", 45 * time.Second},
		{" 30days ", 30 * Day},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, got)
		})
	}
}

func TestParseDurationErrors(t *testing.T) {
	for _, input := range []string{"", "days", "30", "30 fortnights", "-5d", "30days max"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDuration(input)
			assert.Error(t, err)
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		input  time.Duration
		expect string
	}{
		{0, "0m"},
		{-time.Hour, "0m"},
		{30 * time.Second, "0m"},
		{time.Minute, "1m"},
		{90 * time.Minute, "1h 30m"},
		{Day, "1day"},
		{60 * Day, "60days"},
		{45*Day + 12*time.Hour + 30*time.Minute, "45days 12h 30m"},
		{67*Day + 12*time.Hour, "67days 12h"},
	}

	for _, tt := range tests {
		t.Run(tt.expect, func(t *testing.T) {
			assert.Equal(t, tt.expect, FormatDuration(tt.input))
		})
	}
}

func TestParseTime(t *testing.T) {
	got, err := ParseTime("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseTime("2024-03-01T15:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 15, 4, 5, 0, time.UTC), got.UTC())

	_, err = ParseTime("yesterday")
	assert.Error(t, err)
}
