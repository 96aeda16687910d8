package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "hh:mm", input: "18:00", want: "18:00"},
		{name: "with seconds from postgres", input: "06:30:00", want: "06:30"},
		{name: "single digit hour", input: "6:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "out of range", input: "25:00", wantErr: true},
		{name: "garbage", input: "evening", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Arithmetic(t *testing.T) {
	start := TimeString("22:30")

	next, err := start.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:30"), next)

	_, err = start.AddMinutes(120)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	assert.True(t, TimeString("14:00").IsBefore("14:30"))
	assert.False(t, TimeString("14:30").IsBefore("14:30"))
	assert.True(t, TimeString("15:00").IsAfter("14:59"))
	assert.Equal(t, 14, TimeString("14:59").Hour())
	assert.Equal(t, -1, TimeString("bad").Hour())
}

func TestTimeString_On(t *testing.T) {
	date := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	got, err := TimeString("18:15").On(date, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 20, 18, 15, 0, 0, time.UTC), got)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("09:00:00")))
	assert.Equal(t, TimeString("09:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
