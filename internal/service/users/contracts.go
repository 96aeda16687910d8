package users

import (
	"context"

	"github.com/m04kA/arena-booking/internal/domain"
	"github.com/m04kA/arena-booking/internal/infra/cache/leaderboard"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.User, error)
	ListAll(ctx context.Context) ([]*domain.User, error)
	List(ctx context.Context, filter domain.CustomerFilter) ([]*domain.User, error)
	Stats(ctx context.Context) (*domain.CustomerStats, error)
	Count(ctx context.Context) (int, error)
	UpdateContact(ctx context.Context, u *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

// LeaderboardCache кэш рейтинга
type LeaderboardCache interface {
	Upsert(ctx context.Context, users ...*domain.User) error
	Rebuild(ctx context.Context, users ...*domain.User) error
	Remove(ctx context.Context, ids ...int64) error
	Size(ctx context.Context, category domain.LeaderboardCategory) (int64, error)
	Top(ctx context.Context, category domain.LeaderboardCategory, limit int) ([]leaderboard.Scored, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
