package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/arena-booking/internal/availability"
	"github.com/m04kA/arena-booking/internal/domain"
)

// UseCase use case для получения слотов дня с признаком доступности
type UseCase struct {
	bookingRepo  BookingRepository
	catalog      SlotCatalog
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalog SlotCatalog,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает все слоты каталога на дату и сводку по дню
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Активные бронирования на дату
	bookings, err := uc.bookingRepo.ListByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 3. Индекс занятости и сводка
	idx := availability.Build(bookings)
	summary := idx.DaySummary(uc.catalog, req.Date)

	slots := make([]Slot, 0, summary.Total)
	for _, s := range idx.Slots(uc.catalog, req.Date) {
		slots = append(slots, Slot{
			Time:      s.Time,
			Available: s.Available,
			Bookable:  s.Available && !hasStarted(req.Date, s.Time, now),
		})
	}

	uc.logger.Info("GetAvailableSlots: date=%s, %d/%d slots available",
		req.Date.Format(domain.DateFormat), summary.Available, summary.Total)

	return &Response{
		Date:      req.Date,
		Slots:     slots,
		Total:     summary.Total,
		Available: summary.Available,
		Percent:   summary.Percentage,
	}, nil
}
