package record_activity

import (
	"context"

	recordActivity "github.com/m04kA/arena-booking/internal/usecase/record_activity"
)

type RecordActivityUseCase interface {
	Execute(ctx context.Context, req *recordActivity.Request) (*recordActivity.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
