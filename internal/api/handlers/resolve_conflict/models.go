package resolve_conflict

import (
	"github.com/m04kA/arena-booking/internal/domain"
	"github.com/m04kA/arena-booking/internal/service/bookings/models"
	resolveConflict "github.com/m04kA/arena-booking/internal/usecase/resolve_conflict"
)

// ResolveConflictRequest HTTP request model
type ResolveConflictRequest struct {
	Action     string `json:"action"`               // move, cancel, ignore
	Side       string `json:"side,omitempty"`       // a или b
	TargetDate string `json:"targetDate,omitempty"` // "2025-10-15"
	TargetTime string `json:"targetTime,omitempty"` // "19:00"
	Note       string `json:"note,omitempty"`
}

// ResolveConflictResponse HTTP response model
type ResolveConflictResponse struct {
	ConflictID string                  `json:"conflictId"`
	Status     string                  `json:"status"`
	Note       string                  `json:"note"`
	Booking    *models.BookingResponse `json:"booking,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ResolveConflictRequest) ToUseCaseRequest(conflictID string) *resolveConflict.Request {
	return &resolveConflict.Request{
		ConflictID: conflictID,
		Action:     domain.ResolutionAction(r.Action),
		Side:       resolveConflict.Side(r.Side),
		TargetDate: r.TargetDate,
		TargetTime: r.TargetTime,
		Note:       r.Note,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *resolveConflict.Response) *ResolveConflictResponse {
	return &ResolveConflictResponse{
		ConflictID: resp.ConflictID,
		Status:     string(resp.Status),
		Note:       resp.Note,
		Booking:    models.FromDomainBooking(resp.Booking),
	}
}
