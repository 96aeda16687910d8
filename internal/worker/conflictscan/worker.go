// Package conflictscan periodically runs the conflict scan in the background.
package conflictscan

import (
	"context"
	"time"

	scanConflicts "github.com/m04kA/arena-booking/internal/usecase/scan_conflicts"
)

// Scanner use case сканирования конфликтов
type Scanner interface {
	Execute(ctx context.Context) (*scanConflicts.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Worker запускает сканирование с фиксированным интервалом
type Worker struct {
	scanner  Scanner
	interval time.Duration
	logger   Logger
}

// New создает воркер. interval <= 0 отключает периодическое сканирование
func New(scanner Scanner, interval time.Duration, logger Logger) *Worker {
	return &Worker{
		scanner:  scanner,
		interval: interval,
		logger:   logger,
	}
}

// Run выполняет первое сканирование сразу, затем по тикеру до отмены ctx
func (w *Worker) Run(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Info("ConflictScanWorker: disabled")
		return
	}

	w.logger.Info("ConflictScanWorker: started, interval=%s", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.scan(ctx)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("ConflictScanWorker: stopped")
			return
		case <-ticker.C:
			w.scan(ctx)
		}
	}
}

func (w *Worker) scan(ctx context.Context) {
	resp, err := w.scanner.Execute(ctx)
	if err != nil {
		// следующая попытка на следующем тике
		w.logger.Error("ConflictScanWorker: scan failed: %v", err)
		return
	}
	if resp.New > 0 || resp.AutoResolved > 0 {
		w.logger.Info("ConflictScanWorker: %d new, %d auto-resolved", resp.New, resp.AutoResolved)
	}
}
