package scan_conflicts

import (
	"context"

	scanConflicts "github.com/m04kA/arena-booking/internal/usecase/scan_conflicts"
)

type ScanConflictsUseCase interface {
	Execute(ctx context.Context) (*scanConflicts.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
