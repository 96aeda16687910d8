package get_conflict

import (
	"context"

	"github.com/m04kA/arena-booking/internal/service/conflicts/models"
)

type ConflictService interface {
	GetByID(ctx context.Context, id string) (*models.ConflictResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
