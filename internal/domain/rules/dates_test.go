package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolidayStamp_Format(t *testing.T) {
	t.Parallel()

	d := time.Date(2025, time.August, 17, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-08-17T00:00:00.000", HolidayStamp(d))
}

func TestHolidayStamp_IgnoresTimeOfDayAndZone(t *testing.T) {
	t.Parallel()

	jakarta := time.FixedZone("WIB", 7*3600)
	late := time.Date(2025, time.August, 17, 23, 45, 0, 0, jakarta)
	assert.Equal(t, "2025-08-17T00:00:00.000", HolidayStamp(late))
}

func TestParseCalendarDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "bare date", in: "2025-08-17", want: "2025-08-17"},
		{name: "holiday stamp", in: "2025-08-17T00:00:00.000", want: "2025-08-17"},
		{name: "iso with offset", in: "2025-08-17T10:30:00+07:00", want: "2025-08-17"},
		{name: "too short", in: "2025-08", wantErr: true},
		{name: "garbage", in: "not-a-date", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseCalendarDate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Format("2006-01-02"))
		})
	}
}

// Stamping a parsed date must reproduce the original stamp regardless of the
// process timezone.
func TestHolidayStamp_RoundTrip(t *testing.T) {
	t.Parallel()

	stamps := []string{
		"2025-01-01T00:00:00.000",
		"2025-12-31T00:00:00.000",
		"2024-02-29T00:00:00.000",
	}
	for _, stamp := range stamps {
		parsed, err := ParseCalendarDate(stamp)
		require.NoError(t, err)
		assert.Equal(t, stamp, HolidayStamp(parsed))
	}
}

func TestDateOnly(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2025-08-17", DateOnly("2025-08-17T00:00:00.000"))
	assert.Equal(t, "2025-08-17", DateOnly("2025-08-17"))
	assert.Equal(t, "2025-08", DateOnly("2025-08"))
}
