package domain

import (
	"time"

	"github.com/m04kA/arena-booking/pkg/types"
)

// ConflictType classifies a pair of bookings
type ConflictType string

const (
	ConflictDoubleBooking    ConflictType = "double_booking"
	ConflictOverlapping      ConflictType = "overlapping"
	ConflictResourceConflict ConflictType = "resource_conflict"
	ConflictTimeConflict     ConflictType = "time_conflict"
)

// ConflictTypes lists all types in a fixed order
func ConflictTypes() []ConflictType {
	return []ConflictType{
		ConflictDoubleBooking,
		ConflictOverlapping,
		ConflictResourceConflict,
		ConflictTimeConflict,
	}
}

// Severity of a conflict
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// ConflictStatus is the lifecycle state of a detected conflict
type ConflictStatus string

const (
	ConflictPending  ConflictStatus = "pending"
	ConflictResolved ConflictStatus = "resolved"
	ConflictIgnored  ConflictStatus = "ignored"
)

// IsValid reports whether s is a known conflict status
func (s ConflictStatus) IsValid() bool {
	switch s {
	case ConflictPending, ConflictResolved, ConflictIgnored:
		return true
	}
	return false
}

// BookingRef is the part of a booking a conflict keeps for display
type BookingRef struct {
	ID           int64
	CustomerName string
	Time         types.TimeString
	Venue        string
}

// RefOf snapshots a booking into a BookingRef
func RefOf(b *Booking) BookingRef {
	return BookingRef{
		ID:           b.ID,
		CustomerName: b.CustomerName,
		Time:         b.Time,
		Venue:        b.Venue,
	}
}

// Conflict is a detected problem between two active bookings on the same date
type Conflict struct {
	ID                  string
	Type                ConflictType
	BookingA            BookingRef
	BookingB            BookingRef
	Date                time.Time
	Severity            Severity
	SuggestedResolution string
	Status              ConflictStatus
	DetectedAt          time.Time
	ResolvedAt          *time.Time
	ResolutionNote      *string
}

// ResolutionAction what an admin does with a conflict
type ResolutionAction string

const (
	ResolveMove   ResolutionAction = "move"
	ResolveCancel ResolutionAction = "cancel"
	ResolveIgnore ResolutionAction = "ignore"
)

// IsValid reports whether a is a known action
func (a ResolutionAction) IsValid() bool {
	switch a {
	case ResolveMove, ResolveCancel, ResolveIgnore:
		return true
	}
	return false
}
