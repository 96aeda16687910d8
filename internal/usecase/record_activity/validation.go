package record_activity

import (
	"fmt"
	"strings"

	"github.com/m04kA/arena-booking/internal/gamification"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user_id must be positive", ErrInvalidInput)
	}

	req.Activity = strings.ToLower(strings.TrimSpace(req.Activity))
	if _, ok := gamification.PointsFor(gamification.Activity(req.Activity)); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownActivity, req.Activity)
	}

	return nil
}
