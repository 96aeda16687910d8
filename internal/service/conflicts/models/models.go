package models

import (
	"time"

	"github.com/m04kA/arena-booking/internal/domain"
)

// BookingRefResponse бронирование-участник конфликта
type BookingRefResponse struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customerName"`
	Time         string `json:"time"`
	Venue        string `json:"venue"`
}

// ConflictResponse ответ с данными конфликта
type ConflictResponse struct {
	ID                  string             `json:"id"`
	Type                string             `json:"type"`
	BookingA            BookingRefResponse `json:"bookingA"`
	BookingB            BookingRefResponse `json:"bookingB"`
	Date                string             `json:"date"`
	Severity            string             `json:"severity"`
	SuggestedResolution string             `json:"suggestedResolution"`
	Status              string             `json:"status"`
	DetectedAt          time.Time          `json:"detectedAt"`
	ResolvedAt          *time.Time         `json:"resolvedAt,omitempty"`
	ResolutionNote      *string            `json:"resolutionNote,omitempty"`
}

// ConflictListResponse ответ со списком конфликтов
type ConflictListResponse struct {
	Conflicts []ConflictResponse `json:"conflicts"`
}

// FromDomainConflict конвертирует domain модель в DTO
func FromDomainConflict(c *domain.Conflict) *ConflictResponse {
	if c == nil {
		return nil
	}

	return &ConflictResponse{
		ID:                  c.ID,
		Type:                string(c.Type),
		BookingA:            fromRef(c.BookingA),
		BookingB:            fromRef(c.BookingB),
		Date:                c.Date.Format(domain.DateFormat),
		Severity:            string(c.Severity),
		SuggestedResolution: c.SuggestedResolution,
		Status:              string(c.Status),
		DetectedAt:          c.DetectedAt,
		ResolvedAt:          c.ResolvedAt,
		ResolutionNote:      c.ResolutionNote,
	}
}

// FromDomainConflictList конвертирует список конфликтов в DTO
func FromDomainConflictList(conflicts []*domain.Conflict) *ConflictListResponse {
	resp := &ConflictListResponse{Conflicts: make([]ConflictResponse, 0, len(conflicts))}
	for _, c := range conflicts {
		resp.Conflicts = append(resp.Conflicts, *FromDomainConflict(c))
	}
	return resp
}

func fromRef(r domain.BookingRef) BookingRefResponse {
	return BookingRefResponse{
		ID:           r.ID,
		CustomerName: r.CustomerName,
		Time:         r.Time.String(),
		Venue:        r.Venue,
	}
}
