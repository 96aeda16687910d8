package catalog

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/arena-booking/pkg/types"
)

func TestDefault_ListSlots(t *testing.T) {
	c := Default()

	want := []types.TimeString{
		"06:00", "07:00", "08:00", "09:00", "10:00", "11:00",
		"12:00", "13:00", "14:00", "15:00", "16:00", "17:00",
		"18:00", "19:00", "20:00", "21:00", "22:00", "23:00",
	}

	got := c.ListSlots(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ListSlots() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 18, c.Len())
}

func TestListSlots_SameForEveryDate(t *testing.T) {
	c := Default()

	a := c.ListSlots(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC))
	b := c.ListSlots(time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, a, b)
	assert.Equal(t, types.TimeString("06:00"), a[0])
	assert.Equal(t, types.TimeString("23:00"), a[len(a)-1])
}

func TestListSlots_ReturnsCopy(t *testing.T) {
	c := Default()

	slots := c.ListSlots(time.Now())
	slots[0] = "00:00"

	assert.Equal(t, types.TimeString("06:00"), c.ListSlots(time.Now())[0])
}

func TestContains(t *testing.T) {
	c := Default()

	assert.True(t, c.Contains("06:00"))
	assert.True(t, c.Contains("23:00"))
	assert.False(t, c.Contains("05:00"))
	assert.False(t, c.Contains("06:30"))
	assert.False(t, c.Contains("6:00"))
}

func TestNew(t *testing.T) {
	t.Run("half hour step", func(t *testing.T) {
		c, err := New("10:00", "11:30", 30)
		require.NoError(t, err)
		assert.Equal(t, []types.TimeString{"10:00", "10:30", "11:00", "11:30"}, c.ListSlots(time.Now()))
	})

	t.Run("single slot", func(t *testing.T) {
		c, err := New("12:00", "12:00", 60)
		require.NoError(t, err)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("stops at end of day", func(t *testing.T) {
		c, err := New("22:00", "23:59", 60)
		require.NoError(t, err)
		assert.Equal(t, []types.TimeString{"22:00", "23:00"}, c.ListSlots(time.Now()))
	})

	invalid := []struct {
		name        string
		first, last types.TimeString
		step        int
	}{
		{"zero step", "06:00", "23:00", 0},
		{"reversed", "23:00", "06:00", 60},
		{"bad first", "6am", "23:00", 60},
		{"bad last", "06:00", "25:00", 60},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.first, tt.last, tt.step)
			assert.ErrorIs(t, err, ErrInvalidBounds)
		})
	}
}

func TestNext(t *testing.T) {
	c := Default()

	next, ok := c.Next("09:00")
	require.True(t, ok)
	assert.Equal(t, types.TimeString("10:00"), next)

	next, ok = c.Next("09:30")
	require.True(t, ok)
	assert.Equal(t, types.TimeString("10:00"), next)

	_, ok = c.Next("23:00")
	assert.False(t, ok)
}
