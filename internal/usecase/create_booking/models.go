package create_booking

import (
	"time"

	"github.com/m04kA/arena-booking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID *int64 // клиент программы лояльности (опционально)
	Name   string
	Date   string // YYYY-MM-DD
	Time   string // HH:MM
	Phone  string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64
	UserID       *int64
	CustomerName string
	Date         time.Time
	Time         types.TimeString
	Phone        string
	Status       string
	Price        float64
	Venue        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
