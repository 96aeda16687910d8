package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/arena-booking/internal/domain"
	bookingRepo "github.com/m04kA/arena-booking/internal/infra/storage/booking"
	userRepo "github.com/m04kA/arena-booking/internal/infra/storage/user"
	"github.com/m04kA/arena-booking/internal/validator"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	userRepo     UserRepository
	validator    *validator.Validator
	feed         FeedPublisher
	metrics      Metrics
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. feed может быть nil
func NewUseCase(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	v *validator.Validator,
	feed FeedPublisher,
	metrics Metrics,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		userRepo:     userRepo,
		validator:    v,
		feed:         feed,
		metrics:      metrics,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Чтение брони на дату, проверка и вставка выполняются в одной сериализуемой транзакции;
// уникальный индекс на слот ловит гонку, которую проверка не увидела
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: name=%q, date=%s, time=%s", req.Name, req.Date, req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var result *domain.Booking

	// 3. Проверка и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Клиент программы лояльности должен существовать
		if req.UserID != nil {
			if _, err := uc.userRepo.GetByID(txCtx, *req.UserID); err != nil {
				if errors.Is(err, userRepo.ErrUserNotFound) {
					return ErrUserNotFound
				}
				return fmt.Errorf("%w: failed to get user: %w", ErrSubmissionFailed, err)
			}
		}

		// 3.2. Бронирования на дату с блокировкой (FOR UPDATE)
		var existing []*domain.Booking
		if date, ok := parseDate(req.Date, uc.validator.Location()); ok {
			bookings, err := uc.bookingRepo.ListByDate(txCtx, date)
			if err != nil {
				return fmt.Errorf("%w: failed to get bookings: %w", ErrSubmissionFailed, err)
			}
			existing = bookings
		}

		// 3.3. Проверка всех правил
		candidate, err := uc.validator.Validate(toValidatorRequest(req), existing, now)
		if err != nil {
			return err
		}
		candidate.UserID = req.UserID

		// 3.4. Вставка
		created, err := uc.bookingRepo.Create(txCtx, candidate)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
				return ErrSlotAlreadyBooked
			}
			return fmt.Errorf("%w: failed to create booking: %w", ErrSubmissionFailed, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, uc.handleError(err)
	}

	uc.metrics.BookingCreated()
	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 4. Публикация во внешнюю ленту не влияет на результат
	if uc.feed != nil {
		_ = uc.feed.PublishWithGracefulDegradation(ctx, result)
	}

	return toResponse(result), nil
}

func (uc *UseCase) handleError(err error) error {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		for _, code := range verrs.Codes() {
			uc.metrics.BookingRejected(string(code))
		}
		uc.logger.Warn("CreateBooking: rejected: %v", verrs)
		return verrs
	case errors.Is(err, ErrSlotAlreadyBooked):
		uc.metrics.BookingRejected(string(validator.CodeSlotAlreadyBooked))
		uc.logger.Warn("CreateBooking: slot was taken concurrently")
		return err
	case errors.Is(err, ErrUserNotFound):
		uc.logger.Warn("CreateBooking: user not found")
		return err
	case errors.Is(err, ErrSubmissionFailed):
		uc.logger.Error("CreateBooking: %v", err)
		return err
	default:
		// ошибки начала/фиксации транзакции
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:           b.ID,
		UserID:       b.UserID,
		CustomerName: b.CustomerName,
		Date:         b.Date,
		Time:         b.Time,
		Phone:        b.Phone,
		Status:       string(b.Status),
		Price:        b.Price,
		Venue:        b.Venue,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}
