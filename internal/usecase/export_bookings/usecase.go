package export_bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/arena-booking/internal/domain"
)

// UseCase use case выгрузки бронирований в CSV или PDF
type UseCase struct {
	bookingRepo  BookingRepository
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, location *time.Location, logger Logger) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выбирает бронирования по периоду и статусу и формирует файл
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ExportBookings: format=%s, range=%s, status=%s", req.Format, req.Range, req.Status)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ExportBookings: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now().In(uc.location)

	// 2. Выборка
	bookings, err := uc.bookingRepo.List(ctx, buildFilter(req, now))
	if err != nil {
		uc.logger.Error("ExportBookings: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	summary := summarize(bookings)

	// 3. Формирование файла
	resp := &Response{Summary: summary}
	day := now.Format(domain.DateFormat)
	switch req.Format {
	case FormatPDF:
		resp.Content, err = writePDF(bookings, summary, now)
		resp.ContentType = "application/pdf"
		resp.Filename = fmt.Sprintf("bookings_report_%s.pdf", day)
	default:
		resp.Content, err = writeCSV(bookings)
		resp.ContentType = "text/csv; charset=utf-8"
		resp.Filename = fmt.Sprintf("bookings_export_%s.csv", day)
	}
	if err != nil {
		uc.logger.Error("ExportBookings: failed to render %s: %v", req.Format, err)
		return nil, fmt.Errorf("%w: failed to render %s: %v", ErrInternal, req.Format, err)
	}

	uc.logger.Info("ExportBookings: exported %d bookings as %s", summary.Total, req.Format)

	return resp, nil
}

// summarize считает количество по статусам и выручку без отменённых
func summarize(bookings []*domain.Booking) Summary {
	s := Summary{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case domain.StatusConfirmed:
			s.Confirmed++
		case domain.StatusPending:
			s.Pending++
		case domain.StatusCancelled:
			s.Cancelled++
		}
		if b.IsActive() {
			s.Revenue += b.Price
		}
	}
	return s
}
