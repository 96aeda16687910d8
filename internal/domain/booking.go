package domain

import (
	"time"

	"github.com/m04kA/arena-booking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid reports whether s is a known status
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Booking represents a reservation of one slot of the arena
type Booking struct {
	ID           int64
	UserID       *int64 // клиент программы лояльности, если бронь к нему привязана
	CustomerName string
	Date         time.Time // календарный день, время обнулено
	Time         types.TimeString
	Phone        string
	Status       BookingStatus
	Price        float64
	Venue        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Key returns the slot key the booking occupies
func (b *Booking) Key() SlotKey {
	return NewSlotKey(b.Date, b.Time)
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeConfirmed returns true if payment confirmation is allowed
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPending
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanTransitionTo checks the booking state machine:
// pending -> confirmed, pending -> cancelled, confirmed -> cancelled
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch next {
	case StatusConfirmed:
		return b.CanBeConfirmed()
	case StatusCancelled:
		return b.CanBeCancelled()
	default:
		return false
	}
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	StartDate       *time.Time     // Начало периода включительно
	EndDate         *time.Time     // Конец периода включительно
	Status          *BookingStatus // Фильтр по статусу
	UserID          *int64
	IncludeInactive bool // Включать ли отменённые бронирования
}

// SingleDate возвращает дату, если фильтр ограничен одним днём
func (f BookingsFilter) SingleDate() (time.Time, bool) {
	if f.StartDate == nil || f.EndDate == nil || !f.StartDate.Equal(*f.EndDate) {
		return time.Time{}, false
	}
	return *f.StartDate, true
}
