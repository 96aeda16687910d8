package resolve_conflict

import (
	"context"
	"time"

	"github.com/m04kA/arena-booking/internal/domain"
	"github.com/m04kA/arena-booking/pkg/types"
)

// ConflictRepository интерфейс репозитория конфликтов
type ConflictRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Conflict, error)
	MarkResolved(ctx context.Context, id string, status domain.ConflictStatus, note string, at time.Time) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Move(ctx context.Context, id int64, date time.Time, startTime types.TimeString) error
}

// SlotCatalog каталог слотов дня
type SlotCatalog interface {
	ListSlots(date time.Time) []types.TimeString
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
