package confirm_booking

import "github.com/m04kA/arena-booking/internal/domain"

// Request модель запроса на подтверждение оплаты
type Request struct {
	BookingID int64
}

// Response подтверждённое бронирование и начисление клиенту
type Response struct {
	Booking *domain.Booking
	Reward  *Reward // nil, если бронь без клиента
}

// Reward начисление клиенту за подтверждённую бронь
type Reward struct {
	UserID       int64
	Points       int
	RewardPoints int
	TotalPoints  int
	Level        int
	Unlocked     []string
}
