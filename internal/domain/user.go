package domain

import "time"

// User is a loyalty-program customer
type User struct {
	ID           int64
	Name         string
	Phone        string
	Points       int
	Level        int
	Badges       []string // мультимножество: один бейдж может повторяться
	Achievements []string // разблокированные достижения, без повторов
	TotalVisits  int
	TotalSpent   float64
	ReferralCode string
	Status       CustomerStatus
	LastVisitAt  *time.Time // дата последнего подтверждённого бронирования
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Clone returns a deep copy so callers can derive a new user value
func (u *User) Clone() *User {
	c := *u
	c.Badges = append([]string(nil), u.Badges...)
	c.Achievements = append([]string(nil), u.Achievements...)
	if u.LastVisitAt != nil {
		at := *u.LastVisitAt
		c.LastVisitAt = &at
	}
	return &c
}

// MarkVisit moves the last visit forward, never back
func (u *User) MarkVisit(at time.Time) {
	if u.LastVisitAt == nil || at.After(*u.LastVisitAt) {
		u.LastVisitAt = &at
	}
}

// CustomerStatus is the admin-managed customer segment
type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "active"
	CustomerVIP      CustomerStatus = "vip"
	CustomerInactive CustomerStatus = "inactive"
)

// IsValid reports whether s is a known status
func (s CustomerStatus) IsValid() bool {
	switch s {
	case CustomerActive, CustomerVIP, CustomerInactive:
		return true
	}
	return false
}

// CustomerSort orders the admin customer list
type CustomerSort string

const (
	SortByName          CustomerSort = "name"
	SortByTotalSpent    CustomerSort = "totalSpent"
	SortByTotalBookings CustomerSort = "totalBookings"
	SortByLastVisit     CustomerSort = "lastVisit"
)

// IsValid reports whether s is a known sort key
func (s CustomerSort) IsValid() bool {
	switch s {
	case SortByName, SortByTotalSpent, SortByTotalBookings, SortByLastVisit:
		return true
	}
	return false
}

// CustomerFilter narrows the admin customer list.
// Search matches a name substring (case-insensitive) or a phone substring
type CustomerFilter struct {
	Search string
	Status *CustomerStatus
	SortBy CustomerSort
}

// CustomerStats aggregates over all customers
type CustomerStats struct {
	Total        int
	Active       int
	VIP          int
	TotalRevenue float64
	AverageSpent float64
}

// HasAchievement reports whether id is already unlocked
func (u *User) HasAchievement(id string) bool {
	for _, a := range u.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// BadgeCount counts occurrences of a badge
func (u *User) BadgeCount(badge string) int {
	n := 0
	for _, b := range u.Badges {
		if b == badge {
			n++
		}
	}
	return n
}

// LeaderboardCategory ranking dimension
type LeaderboardCategory string

const (
	CategoryPoints   LeaderboardCategory = "points"
	CategoryVisits   LeaderboardCategory = "visits"
	CategorySpending LeaderboardCategory = "spending"
)

// IsValid reports whether c is a known category
func (c LeaderboardCategory) IsValid() bool {
	switch c {
	case CategoryPoints, CategoryVisits, CategorySpending:
		return true
	}
	return false
}

// LeaderboardEntry is one row of a ranking
type LeaderboardEntry struct {
	Rank   int
	UserID int64
	Name   string
	Level  int
	Value  float64
}
