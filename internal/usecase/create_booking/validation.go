package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/arena-booking/internal/domain"
	"github.com/m04kA/arena-booking/internal/validator"
)

// validateRequest проверяет то, что не относится к правилам бронирования
func validateRequest(req *Request) error {
	if req.UserID != nil && *req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	return nil
}

// toValidatorRequest переводит запрос в формат валидатора
func toValidatorRequest(req *Request) validator.Request {
	return validator.Request{
		Name:  req.Name,
		Date:  req.Date,
		Time:  req.Time,
		Phone: req.Phone,
	}
}

// parseDate разбирает дату запроса; ok=false, если дата пустая или некорректная.
// Некорректную дату валидатор вернёт как DateRequired
func parseDate(raw string, loc *time.Location) (time.Time, bool) {
	date, err := domain.ParseDate(strings.TrimSpace(raw), loc)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}
