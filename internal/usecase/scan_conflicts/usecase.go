package scan_conflicts

import (
	"context"
	"fmt"

	"github.com/m04kA/arena-booking/internal/domain"
)

// UseCase use case сканирования конфликтов бронирований
type UseCase struct {
	bookingRepo  BookingRepository
	conflictRepo ConflictRepository
	classifier   Classifier
	metrics      Metrics
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	conflictRepo ConflictRepository,
	classifier Classifier,
	metrics Metrics,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		conflictRepo: conflictRepo,
		classifier:   classifier,
		metrics:      metrics,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute находит конфликты среди активных броней, сохраняет новые
// и закрывает pending-конфликты, которые больше не обнаруживаются
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()

	// 1. Активные бронирования
	bookings, err := uc.bookingRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("ScanConflicts: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 2. Классификация
	found := uc.classifier.FindConflicts(bookings, now)

	ids := make([]string, 0, len(found))
	byType := make(map[domain.ConflictType]int)
	grouped := make(map[domain.ConflictType][]domain.Conflict)
	for _, c := range found {
		ids = append(ids, c.ID)
		byType[c.Type]++
		grouped[c.Type] = append(grouped[c.Type], c)
	}

	// 3. Сохранение результата
	// Сохраняем по типам, чтобы считать новые конфликты каждого типа
	resp := &Response{Conflicts: found, ByType: byType}
	newByType := make(map[domain.ConflictType]int, len(grouped))
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		saved := 0
		for _, t := range domain.ConflictTypes() {
			if len(grouped[t]) == 0 {
				continue
			}
			n, err := uc.conflictRepo.SaveDetected(txCtx, grouped[t])
			if err != nil {
				return fmt.Errorf("failed to save conflicts: %w", err)
			}
			newByType[t] = n
			saved += n
		}
		resolved, err := uc.conflictRepo.ResolveStale(txCtx, ids, now)
		if err != nil {
			return fmt.Errorf("failed to resolve stale conflicts: %w", err)
		}
		resp.New = saved
		resp.AutoResolved = resolved
		return nil
	})
	if err != nil {
		uc.logger.Error("ScanConflicts: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	for t, n := range newByType {
		if n > 0 {
			uc.metrics.ConflictsDetected(string(t), n)
		}
	}

	uc.logger.Info("ScanConflicts: %d bookings, %d conflicts (%d new, %d auto-resolved)",
		len(bookings), len(found), resp.New, resp.AutoResolved)

	return resp, nil
}
