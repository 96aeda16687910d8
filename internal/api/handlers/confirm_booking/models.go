package confirm_booking

import (
	"github.com/m04kA/arena-booking/internal/service/bookings/models"
	confirmBooking "github.com/m04kA/arena-booking/internal/usecase/confirm_booking"
)

// RewardResponse начисление клиенту
type RewardResponse struct {
	UserID       int64    `json:"userId"`
	Points       int      `json:"points"`
	RewardPoints int      `json:"rewardPoints"`
	TotalPoints  int      `json:"totalPoints"`
	Level        int      `json:"level"`
	Unlocked     []string `json:"unlocked"`
}

// ConfirmBookingResponse HTTP response model
type ConfirmBookingResponse struct {
	Booking *models.BookingResponse `json:"booking"`
	Reward  *RewardResponse         `json:"reward,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmBooking.Response) *ConfirmBookingResponse {
	out := &ConfirmBookingResponse{Booking: models.FromDomainBooking(resp.Booking)}
	if resp.Reward != nil {
		unlocked := resp.Reward.Unlocked
		if unlocked == nil {
			unlocked = []string{}
		}
		out.Reward = &RewardResponse{
			UserID:       resp.Reward.UserID,
			Points:       resp.Reward.Points,
			RewardPoints: resp.Reward.RewardPoints,
			TotalPoints:  resp.Reward.TotalPoints,
			Level:        resp.Reward.Level,
			Unlocked:     unlocked,
		}
	}
	return out
}
