package domain

import (
	"time"

	"github.com/m04kA/arena-booking/pkg/types"
)

// SlotKey identifies a slot as "YYYY-MM-DDTHH:MM"
type SlotKey string

// NewSlotKey builds the key for a date and a slot label
func NewSlotKey(date time.Time, t types.TimeString) SlotKey {
	return SlotKey(date.Format(DateFormat) + "T" + t.String())
}

// String returns the raw key
func (k SlotKey) String() string {
	return string(k)
}

// Slot is a catalog slot with its availability on a given date
type Slot struct {
	Date      time.Time
	Time      types.TimeString
	Available bool
}

// DaySummary aggregates slot availability for one date
type DaySummary struct {
	Total      int
	Available  int
	Percentage int // доля свободных слотов, округлённая вниз
}
