package conflicts

import (
	"context"

	"github.com/m04kA/arena-booking/internal/domain"
)

// ConflictRepository интерфейс репозитория конфликтов
type ConflictRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Conflict, error)
	List(ctx context.Context, status *domain.ConflictStatus) ([]*domain.Conflict, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
