package record_activity

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/arena-booking/internal/domain"
	"github.com/m04kA/arena-booking/internal/gamification"
	userRepo "github.com/m04kA/arena-booking/internal/infra/storage/user"
)

// UseCase use case начисления очков за активность клиента
type UseCase struct {
	userRepo  UserRepository
	cache     LeaderboardCache
	metrics   Metrics
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case. cache может быть nil
func NewUseCase(
	userRepo UserRepository,
	cache LeaderboardCache,
	metrics Metrics,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		userRepo:  userRepo,
		cache:     cache,
		metrics:   metrics,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute начисляет очки, пересчитывает уровень и разблокирует достижения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RecordActivity: user_id=%d, activity=%s", req.UserID, req.Activity)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RecordActivity: validation failed: %v", err)
		return nil, err
	}

	var (
		updated *domain.User
		resp    *Response
	)

	// 2. Начисление под блокировкой строки пользователя
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		u, err := uc.userRepo.GetByID(txCtx, req.UserID)
		if err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
		}

		outcome, err := gamification.RecordActivity(u, gamification.Activity(req.Activity))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnknownActivity, err)
		}

		if err := uc.userRepo.UpdateProgress(txCtx, outcome.User); err != nil {
			return fmt.Errorf("%w: failed to update user: %v", ErrInternal, err)
		}

		updated = outcome.User
		resp = &Response{
			UserID:       u.ID,
			Activity:     req.Activity,
			Points:       outcome.Points,
			RewardPoints: outcome.RewardPoints,
			TotalPoints:  outcome.User.Points,
			Level:        outcome.User.Level,
			LevelUp:      outcome.User.Level > u.Level,
			Unlocked:     outcome.Unlocked,
		}
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrUnknownActivity):
			uc.logger.Warn("RecordActivity: %v", err)
			return nil, err
		case errors.Is(err, ErrInternal):
			uc.logger.Error("RecordActivity: %v", err)
			return nil, err
		default:
			uc.logger.Error("RecordActivity: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	// 3. Рейтинг и метрики после фиксации
	uc.metrics.PointsGranted(req.Activity, resp.Points+resp.RewardPoints)
	if uc.cache != nil {
		if err := uc.cache.Upsert(ctx, updated); err != nil {
			uc.logger.Warn("RecordActivity: failed to update leaderboard: %v", err)
		}
	}

	uc.logger.Info("RecordActivity: user_id=%d +%d points (level %d), unlocked %v",
		resp.UserID, resp.Points+resp.RewardPoints, resp.Level, resp.Unlocked)

	return resp, nil
}
