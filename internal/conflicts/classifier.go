// Package conflicts finds clashing pairs of active bookings.
package conflicts

import (
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/arena-booking/internal/domain"
)

// Suggested resolutions shown to the admin
const (
	ResolutionDoubleBooking = "Move second booking to next available slot"
	ResolutionOverlapping   = "Extend first booking or move second booking"
	ResolutionManual        = "Review manually"
)

// conflictNamespace namespace for deterministic conflict ids
var conflictNamespace = uuid.MustParse("8f0a5f0e-3c1d-4b8e-9d7a-2a6f1c4e5b90")

// Classifier сравнивает пары бронирований одной даты
type Classifier struct {
	buffer int // минуты
}

// NewClassifier создает классификатор с буфером перекрытия bufferMinutes.
// Неположительный буфер заменяется значением по умолчанию
func NewClassifier(bufferMinutes int) *Classifier {
	if bufferMinutes <= 0 {
		bufferMinutes = domain.DefaultBufferMinutes
	}
	return &Classifier{buffer: bufferMinutes}
}

// BufferMinutes текущий буфер перекрытия
func (c *Classifier) BufferMinutes() int {
	return c.buffer
}

// Classify определяет тип конфликта пары. ok=false, если конфликта нет
// или время одной из броней не разбирается
func (c *Classifier) Classify(a, b *domain.Booking) (domain.ConflictType, bool) {
	if a.Time == b.Time {
		return domain.ConflictDoubleBooking, true
	}

	ma, errA := a.Time.Minutes()
	mb, errB := b.Time.Minutes()
	if errA != nil || errB != nil {
		return "", false
	}

	delta := ma - mb
	if delta < 0 {
		delta = -delta
	}
	if delta > 0 && delta < c.buffer {
		return domain.ConflictOverlapping, true
	}

	return "", false
}

// FindConflicts группирует активные бронирования по дате (даты по возрастанию),
// внутри даты сортирует по id и сравнивает все пары i<j.
// Вход не изменяется, результат детерминирован
func (c *Classifier) FindConflicts(bookings []*domain.Booking, detectedAt time.Time) []domain.Conflict {
	groups := make(map[string][]*domain.Booking)
	dates := make([]string, 0)

	for _, b := range bookings {
		if b == nil || !b.IsActive() {
			continue
		}
		key := b.Date.Format(domain.DateFormat)
		if _, ok := groups[key]; !ok {
			dates = append(dates, key)
		}
		groups[key] = append(groups[key], b)
	}
	sort.Strings(dates)

	result := make([]domain.Conflict, 0)
	for _, date := range dates {
		group := groups[date]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].ID < group[j].ID
		})

		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				conflictType, ok := c.Classify(group[i], group[j])
				if !ok {
					continue
				}
				result = append(result, newConflict(conflictType, group[i], group[j], detectedAt))
			}
		}
	}

	return result
}

func newConflict(t domain.ConflictType, a, b *domain.Booking, detectedAt time.Time) domain.Conflict {
	return domain.Conflict{
		ID:                  ConflictID(a.Date, t, a.ID, b.ID),
		Type:                t,
		BookingA:            domain.RefOf(a),
		BookingB:            domain.RefOf(b),
		Date:                a.Date,
		Severity:            SeverityFor(t),
		SuggestedResolution: SuggestedResolution(t),
		Status:              domain.ConflictPending,
		DetectedAt:          detectedAt,
	}
}

// ConflictID UUIDv5 от даты, типа и пары id: повторное сканирование
// тех же данных даёт тот же идентификатор
func ConflictID(date time.Time, t domain.ConflictType, idA, idB int64) string {
	name := date.Format(domain.DateFormat) + "|" + string(t) + "|" +
		strconv.FormatInt(idA, 10) + "|" + strconv.FormatInt(idB, 10)
	return uuid.NewSHA1(conflictNamespace, []byte(name)).String()
}

// SeverityFor severity is a pure function of the conflict type
func SeverityFor(t domain.ConflictType) domain.Severity {
	switch t {
	case domain.ConflictDoubleBooking:
		return domain.SeverityHigh
	case domain.ConflictOverlapping:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}

// SuggestedResolution текст подсказки для администратора
func SuggestedResolution(t domain.ConflictType) string {
	switch t {
	case domain.ConflictDoubleBooking:
		return ResolutionDoubleBooking
	case domain.ConflictOverlapping:
		return ResolutionOverlapping
	default:
		return ResolutionManual
	}
}
