package confirm_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/arena-booking/internal/domain"
	"github.com/m04kA/arena-booking/internal/gamification"
	bookingRepo "github.com/m04kA/arena-booking/internal/infra/storage/booking"
	userRepo "github.com/m04kA/arena-booking/internal/infra/storage/user"
)

const pointsSource = "booking"

// UseCase use case подтверждения оплаты бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	userRepo     UserRepository
	cache        LeaderboardCache
	metrics      Metrics
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. cache может быть nil
func NewUseCase(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	cache LeaderboardCache,
	metrics Metrics,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		userRepo:     userRepo,
		cache:        cache,
		metrics:      metrics,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute переводит бронь в confirmed и начисляет клиенту очки, траты и бейджи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmBooking: booking_id=%d", req.BookingID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfirmBooking: validation failed: %v", err)
		return nil, err
	}

	var (
		booking *domain.Booking
		reward  *Reward
		user    *domain.User
	)

	// 2. Смена статуса и начисление в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Бронирование с блокировкой
		b, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Проверка перехода статуса
		if !b.CanBeConfirmed() {
			return fmt.Errorf("%w: status is %s", ErrInvalidTransition, b.Status)
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, b.ID, domain.StatusConfirmed); err != nil {
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}
		b.Status = domain.StatusConfirmed
		b.UpdatedAt = uc.timeProvider.Now()
		booking = b

		// 2.3. Бронь без клиента программы лояльности
		if b.UserID == nil {
			return nil
		}

		u, err := uc.userRepo.GetByID(txCtx, *b.UserID)
		if err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				// клиент удалён, бронь всё равно подтверждаем
				uc.logger.Warn("ConfirmBooking: user id=%d not found, skipping reward", *b.UserID)
				return nil
			}
			return fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
		}

		// 2.4. Начисление
		outcome := gamification.RecordBooking(u, b.Price, b.Time)
		outcome.User.MarkVisit(b.Date)
		if err := uc.userRepo.UpdateProgress(txCtx, outcome.User); err != nil {
			return fmt.Errorf("%w: failed to update user: %v", ErrInternal, err)
		}

		user = outcome.User
		reward = &Reward{
			UserID:       u.ID,
			Points:       outcome.Points,
			RewardPoints: outcome.RewardPoints,
			TotalPoints:  outcome.User.Points,
			Level:        outcome.User.Level,
			Unlocked:     outcome.Unlocked,
		}
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound), errors.Is(err, ErrInvalidTransition):
			uc.logger.Warn("ConfirmBooking: %v", err)
			return nil, err
		case errors.Is(err, ErrInternal):
			uc.logger.Error("ConfirmBooking: %v", err)
			return nil, err
		default:
			uc.logger.Error("ConfirmBooking: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	// 3. Рейтинг и метрики после фиксации
	if reward != nil {
		uc.metrics.PointsGranted(pointsSource, reward.Points+reward.RewardPoints)
		if uc.cache != nil {
			if err := uc.cache.Upsert(ctx, user); err != nil {
				uc.logger.Warn("ConfirmBooking: failed to update leaderboard: %v", err)
			}
		}
		uc.logger.Info("ConfirmBooking: user id=%d got %d points, unlocked %v",
			reward.UserID, reward.Points+reward.RewardPoints, reward.Unlocked)
	}

	uc.logger.Info("ConfirmBooking: booking id=%d confirmed", booking.ID)

	return &Response{Booking: booking, Reward: reward}, nil
}
