package record_activity

import (
	"context"

	"github.com/m04kA/arena-booking/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateProgress(ctx context.Context, u *domain.User) error
}

// LeaderboardCache кэш рейтинга
type LeaderboardCache interface {
	Upsert(ctx context.Context, users ...*domain.User) error
}

// Metrics счётчик начисленных очков
type Metrics interface {
	PointsGranted(source string, points int)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
