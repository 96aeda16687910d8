package get_available_slots

import (
	"github.com/m04kA/arena-booking/internal/domain"
	getAvailableSlots "github.com/m04kA/arena-booking/internal/usecase/get_available_slots"
)

// SlotResponse слот каталога
type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Bookable  bool   `json:"bookable"`
}

// SummaryResponse сводка по дню
type SummaryResponse struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Percent   int `json:"percent"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date    string          `json:"date"`
	Slots   []SlotResponse  `json:"slots"`
	Summary SummaryResponse `json:"summary"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Time:      s.Time.String(),
			Available: s.Available,
			Bookable:  s.Bookable,
		})
	}

	return &AvailableSlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
		Summary: SummaryResponse{
			Total:     resp.Total,
			Available: resp.Available,
			Percent:   resp.Percent,
		},
	}
}
