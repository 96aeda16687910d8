package scan_conflicts

import (
	"context"
	"time"

	"github.com/m04kA/arena-booking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListActive(ctx context.Context) ([]*domain.Booking, error)
}

// ConflictRepository интерфейс репозитория конфликтов
type ConflictRepository interface {
	SaveDetected(ctx context.Context, conflicts []domain.Conflict) (int, error)
	ResolveStale(ctx context.Context, detectedIDs []string, at time.Time) (int, error)
}

// Classifier поиск конфликтов среди активных броней
type Classifier interface {
	FindConflicts(bookings []*domain.Booking, detectedAt time.Time) []domain.Conflict
}

// Metrics счётчик найденных конфликтов
type Metrics interface {
	ConflictsDetected(conflictType string, n int)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
