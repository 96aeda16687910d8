package export_bookings

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/arena-booking/internal/domain"
	"github.com/m04kA/arena-booking/pkg/ptr"
)

// validateRequest нормализует и валидирует входные данные запроса
func validateRequest(req *Request) error {
	req.Format = Format(strings.ToLower(strings.TrimSpace(string(req.Format))))
	switch req.Format {
	case "":
		req.Format = FormatCSV
	case FormatCSV, FormatPDF:
	default:
		return fmt.Errorf("%w: unsupported format %q", ErrInvalidInput, req.Format)
	}

	req.Range = Range(strings.ToLower(strings.TrimSpace(string(req.Range))))
	switch req.Range {
	case "":
		req.Range = RangeAll
	case RangeAll, RangeToday, RangeWeek, RangeMonth, RangeYear:
	default:
		return fmt.Errorf("%w: unsupported range %q", ErrInvalidInput, req.Range)
	}

	req.Status = strings.ToLower(strings.TrimSpace(req.Status))
	if req.Status == "" {
		req.Status = StatusAll
	}
	if req.Status != StatusAll && !domain.BookingStatus(req.Status).IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	return nil
}

// buildFilter фильтр выборки: today - ровно текущая дата,
// week/month/year - даты не раньше now минус период, без верхней границы
func buildFilter(req *Request, now time.Time) domain.BookingsFilter {
	filter := domain.BookingsFilter{IncludeInactive: true}

	today := domain.DateOnly(now)
	switch req.Range {
	case RangeToday:
		filter.StartDate = ptr.Ptr(today)
		filter.EndDate = ptr.Ptr(today)
	case RangeWeek:
		filter.StartDate = ptr.Ptr(today.AddDate(0, 0, -7))
	case RangeMonth:
		filter.StartDate = ptr.Ptr(today.AddDate(0, -1, 0))
	case RangeYear:
		filter.StartDate = ptr.Ptr(today.AddDate(-1, 0, 0))
	}

	if req.Status != StatusAll {
		filter.Status = ptr.Ptr(domain.BookingStatus(req.Status))
	}

	return filter
}
