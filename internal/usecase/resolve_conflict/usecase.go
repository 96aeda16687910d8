package resolve_conflict

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/arena-booking/internal/availability"
	"github.com/m04kA/arena-booking/internal/domain"
	bookingRepo "github.com/m04kA/arena-booking/internal/infra/storage/booking"
	conflictRepo "github.com/m04kA/arena-booking/internal/infra/storage/conflict"
	"github.com/m04kA/arena-booking/pkg/types"
)

// SearchDays сколько дней, начиная с даты брони, просматривается в поиске свободного слота
const SearchDays = 14

// UseCase use case разрешения конфликта администратором
type UseCase struct {
	conflictRepo ConflictRepository
	bookingRepo  BookingRepository
	catalog      SlotCatalog
	location     *time.Location
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	conflictRepo ConflictRepository,
	bookingRepo BookingRepository,
	catalog SlotCatalog,
	location *time.Location,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		conflictRepo: conflictRepo,
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		location:     location,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute применяет к конфликту действие move, cancel или ignore
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ResolveConflict: id=%s, action=%s, side=%s", req.ConflictID, req.Action, req.Side)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ResolveConflict: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	resp := &Response{ConflictID: req.ConflictID}

	// 2. Действие и закрытие конфликта в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Конфликт с блокировкой
		c, err := uc.conflictRepo.GetByID(txCtx, req.ConflictID)
		if err != nil {
			if errors.Is(err, conflictRepo.ErrConflictNotFound) {
				return ErrConflictNotFound
			}
			return fmt.Errorf("%w: failed to get conflict: %v", ErrInternal, err)
		}
		if c.Status != domain.ConflictPending {
			return fmt.Errorf("%w: status is %s", ErrAlreadyResolved, c.Status)
		}

		// 2.2. Действие
		status := domain.ConflictResolved
		var note string
		switch req.Action {
		case domain.ResolveIgnore:
			status = domain.ConflictIgnored
			note = "ignored"
		case domain.ResolveCancel:
			b, err := uc.cancel(txCtx, bookingOn(c, req.Side))
			if err != nil {
				return err
			}
			resp.Booking = b
			note = fmt.Sprintf("booking #%d cancelled", b.ID)
		case domain.ResolveMove:
			b, err := uc.move(txCtx, req, bookingOn(c, req.Side), now)
			if err != nil {
				return err
			}
			resp.Booking = b
			note = fmt.Sprintf("booking #%d moved to %s %s", b.ID, b.Date.Format(domain.DateFormat), b.Time)
		}
		if req.Note != "" {
			note += ": " + req.Note
		}

		// 2.3. Закрытие конфликта
		if err := uc.conflictRepo.MarkResolved(txCtx, c.ID, status, note, now); err != nil {
			return fmt.Errorf("%w: failed to mark conflict: %v", ErrInternal, err)
		}

		resp.Status = status
		resp.Note = note
		return nil
	})

	if err != nil {
		return nil, uc.handleError(err)
	}

	uc.logger.Info("ResolveConflict: id=%s %s (%s)", resp.ConflictID, resp.Status, resp.Note)

	return resp, nil
}

// cancel отменяет бронирование; уже отменённое не трогает
func (uc *UseCase) cancel(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, err := uc.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !b.CanBeCancelled() {
		return b, nil
	}

	if err := uc.bookingRepo.UpdateStatus(ctx, b.ID, domain.StatusCancelled); err != nil {
		return nil, fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
	}
	b.Status = domain.StatusCancelled
	return b, nil
}

// move переносит бронирование на указанный слот или на ближайший свободный
func (uc *UseCase) move(ctx context.Context, req *Request, bookingID int64, now time.Time) (*domain.Booking, error) {
	b, err := uc.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !b.IsActive() {
		return nil, fmt.Errorf("%w: booking #%d is cancelled", ErrInvalidTarget, b.ID)
	}

	date := b.Date
	if req.TargetDate != "" {
		date, err = domain.ParseDate(req.TargetDate, uc.location)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTarget, err)
		}
	}

	var slot types.TimeString
	if req.TargetTime != "" {
		date, slot, err = uc.checkTarget(ctx, b, date, types.TimeString(req.TargetTime), now)
	} else {
		date, slot, err = uc.findFreeSlot(ctx, b, date, now)
	}
	if err != nil {
		return nil, err
	}

	if err := uc.bookingRepo.Move(ctx, b.ID, date, slot); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
			return nil, ErrTargetSlotTaken
		}
		return nil, fmt.Errorf("%w: failed to move booking: %v", ErrInternal, err)
	}

	b.Date = date
	b.Time = slot
	return b, nil
}

// checkTarget проверяет явно указанный слот
func (uc *UseCase) checkTarget(ctx context.Context, b *domain.Booking, date time.Time, slot types.TimeString, now time.Time) (time.Time, types.TimeString, error) {
	if sameDay(date, b.Date) && slot == b.Time {
		return time.Time{}, "", fmt.Errorf("%w: booking is already at %s", ErrInvalidTarget, slot)
	}

	start, err := slot.On(date, uc.location)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: %v", ErrInvalidTarget, err)
	}
	if start.Before(now) {
		return time.Time{}, "", fmt.Errorf("%w: %s %s is in the past", ErrInvalidTarget, date.Format(domain.DateFormat), slot)
	}

	idx, err := uc.indexFor(ctx, date, b)
	if err != nil {
		return time.Time{}, "", err
	}
	if !idx.IsAvailable(date, slot) {
		return time.Time{}, "", ErrTargetSlotTaken
	}

	return date, slot, nil
}

// findFreeSlot ищет первый свободный слот каталога после текущего слота брони:
// сначала в тот же день, затем в следующие дни окна поиска
func (uc *UseCase) findFreeSlot(ctx context.Context, b *domain.Booking, from time.Time, now time.Time) (time.Time, types.TimeString, error) {
	for day := 0; day < SearchDays; day++ {
		date := from.AddDate(0, 0, day)

		idx, err := uc.indexFor(ctx, date, b)
		if err != nil {
			return time.Time{}, "", err
		}

		for _, slot := range uc.catalog.ListSlots(date) {
			if sameDay(date, b.Date) && !slot.IsAfter(b.Time) {
				continue
			}
			start, err := slot.On(date, uc.location)
			if err != nil || start.Before(now) {
				continue
			}
			if idx.IsAvailable(date, slot) {
				return date, slot, nil
			}
		}
	}

	return time.Time{}, "", fmt.Errorf("%w: within %d days", ErrNoFreeSlot, SearchDays)
}

// indexFor индекс занятости даты без самого переносимого бронирования
func (uc *UseCase) indexFor(ctx context.Context, date time.Time, moving *domain.Booking) (*availability.Index, error) {
	bookings, err := uc.bookingRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	idx := availability.Build(bookings)
	for _, other := range bookings {
		if other.ID == moving.ID {
			idx.Remove(other)
		}
	}
	return idx, nil
}

func (uc *UseCase) getBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: #%d", ErrBookingNotFound, id)
		}
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	return b, nil
}

func sameDay(a, b time.Time) bool {
	return a.Format(domain.DateFormat) == b.Format(domain.DateFormat)
}

func (uc *UseCase) handleError(err error) error {
	switch {
	case errors.Is(err, ErrConflictNotFound),
		errors.Is(err, ErrAlreadyResolved),
		errors.Is(err, ErrBookingNotFound),
		errors.Is(err, ErrInvalidTarget),
		errors.Is(err, ErrTargetSlotTaken),
		errors.Is(err, ErrNoFreeSlot):
		uc.logger.Warn("ResolveConflict: %v", err)
		return err
	case errors.Is(err, ErrInternal):
		uc.logger.Error("ResolveConflict: %v", err)
		return err
	default:
		uc.logger.Error("ResolveConflict: transaction failed: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
