package resolve_conflict

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/arena-booking/internal/domain"
	"github.com/m04kA/arena-booking/pkg/types"
)

// validateRequest валидирует входные данные запроса и проставляет значения по умолчанию
func validateRequest(req *Request) error {
	if _, err := uuid.Parse(req.ConflictID); err != nil {
		return ErrConflictNotFound
	}

	if !req.Action.IsValid() {
		return fmt.Errorf("%w: unknown action %q", ErrInvalidInput, req.Action)
	}

	req.Side = Side(strings.ToLower(strings.TrimSpace(string(req.Side))))
	switch req.Side {
	case "":
		req.Side = SideB
	case SideA, SideB:
	default:
		return fmt.Errorf("%w: side must be a or b", ErrInvalidInput)
	}

	if req.Action != domain.ResolveMove && (req.TargetDate != "" || req.TargetTime != "") {
		return fmt.Errorf("%w: target is only allowed for move", ErrInvalidInput)
	}

	if req.TargetTime != "" {
		t, err := types.NewTimeStringFromString(req.TargetTime)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTarget, err)
		}
		req.TargetTime = t.String()
	}

	return nil
}

// bookingOn id бронирования выбранной стороны
func bookingOn(c *domain.Conflict, side Side) int64 {
	if side == SideA {
		return c.BookingA.ID
	}
	return c.BookingB.ID
}
