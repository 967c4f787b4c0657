package dbtime_test

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholartrack_backend/internals/helpers/dbtime"
)

func TestInstant_Unmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{"date only", `"2026-11-01"`, time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), false},
		{"rfc3339 utc", `"2026-11-01T10:30:00Z"`, time.Date(2026, 11, 1, 10, 30, 0, 0, time.UTC), false},
		{"rfc3339 offset", `"2026-11-01T17:30:00+07:00"`, time.Date(2026, 11, 1, 10, 30, 0, 0, time.UTC), false},
		{"garbage", `"next week"`, time.Time{}, true},
		{"bad date", `"2026-13-40"`, time.Time{}, true},
		{"number", `12345`, time.Time{}, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var got dbtime.Instant
			err := sonic.Unmarshal([]byte(tt.in), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got.Time), "got %s", got.Time)
		})
	}
}

func TestInstant_Ptr(t *testing.T) {
	t.Parallel()

	var nilInstant *dbtime.Instant
	assert.Nil(t, nilInstant.Ptr())

	in, err := dbtime.Parse("2026-01-02")
	require.NoError(t, err)
	p := in.Ptr()
	require.NotNil(t, p)
	assert.Equal(t, 2026, p.Year())
}
