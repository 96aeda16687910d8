package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/arena-booking/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}

// hasStarted проверяет, что слот на дату уже начался к моменту now
func hasStarted(date time.Time, slot types.TimeString, now time.Time) bool {
	start, err := slot.On(date, date.Location())
	if err != nil {
		return true
	}
	return start.Before(now)
}
