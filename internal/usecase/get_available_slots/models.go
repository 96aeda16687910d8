package get_available_slots

import (
	"time"

	"github.com/m04kA/arena-booking/pkg/types"
)

// Request модель запроса на получение слотов
type Request struct {
	Date time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со слотами дня
type Response struct {
	Date      time.Time
	Slots     []Slot
	Total     int
	Available int
	Percent   int // доля свободных слотов
}

// Slot модель слота каталога
type Slot struct {
	Time      types.TimeString
	Available bool // слот не занят активной бронью
	Bookable  bool // свободен и ещё не начался
}
