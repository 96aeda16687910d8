package domain

import "time"

// Default booking values
const (
	DefaultPrice         = 100.0
	DefaultVenue         = "Main Field"
	DefaultBufferMinutes = 60
)

// Validation constants
const (
	MinCustomerNameLength = 3
	PhoneDigits           = 11
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы бронирований, занимающих слот
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// ParseDate разбирает дату YYYY-MM-DD в указанном часовом поясе
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateFormat, s, loc)
}

// DateOnly обнуляет время, сохраняя календарный день
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
