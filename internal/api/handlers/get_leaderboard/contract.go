package get_leaderboard

import (
	"context"

	"github.com/m04kA/arena-booking/internal/service/users/models"
)

type UserService interface {
	Leaderboard(ctx context.Context, req *models.LeaderboardRequest) (*models.LeaderboardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
