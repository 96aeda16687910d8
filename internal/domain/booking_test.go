package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBooking_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusConfirmed, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCancelled, false},
		{StatusConfirmed, StatusPending, false},
		{StatusCancelled, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			b := &Booking{Status: tt.from}
			assert.Equal(t, tt.want, b.CanTransitionTo(tt.to))
		})
	}
}

func TestBooking_Key(t *testing.T) {
	b := &Booking{
		Date: time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC),
		Time: "09:00",
	}
	assert.Equal(t, SlotKey("2025-03-07T09:00"), b.Key())
}

func TestUser_CloneIsIndependent(t *testing.T) {
	u := &User{Badges: []string{"referral"}, Achievements: []string{"first_visit"}}
	c := u.Clone()
	c.Badges[0] = "changed"
	c.Achievements = append(c.Achievements, "loyal_customer")

	assert.Equal(t, []string{"referral"}, u.Badges)
	assert.Equal(t, []string{"first_visit"}, u.Achievements)
	assert.Equal(t, 1, u.BadgeCount("referral"))
}

func TestUser_MarkVisit(t *testing.T) {
	may10 := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	may12 := time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC)

	u := &User{}
	u.MarkVisit(may12)
	u.MarkVisit(may10)
	assert.Equal(t, may12, *u.LastVisitAt, "an earlier visit does not move it back")

	c := u.Clone()
	c.MarkVisit(may12.AddDate(0, 0, 1))
	assert.Equal(t, may12, *u.LastVisitAt)
}

func TestCustomerStatusAndSort_IsValid(t *testing.T) {
	assert.True(t, CustomerVIP.IsValid())
	assert.False(t, CustomerStatus("banned").IsValid())
	assert.True(t, SortByLastVisit.IsValid())
	assert.False(t, CustomerSort("age").IsValid())
}
