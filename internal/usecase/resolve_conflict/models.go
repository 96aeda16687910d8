package resolve_conflict

import "github.com/m04kA/arena-booking/internal/domain"

// Side сторона конфликта, к которой применяется действие
type Side string

const (
	SideA Side = "a"
	SideB Side = "b"
)

// Request модель запроса на разрешение конфликта
type Request struct {
	ConflictID string
	Action     domain.ResolutionAction
	Side       Side   // по умолчанию b (более поздняя по id бронь)
	TargetDate string // YYYY-MM-DD, для move; по умолчанию дата конфликта
	TargetTime string // HH:MM, для move; пусто - ближайший свободный слот
	Note       string
}

// Response модель ответа
type Response struct {
	ConflictID string
	Status     domain.ConflictStatus
	Note       string
	Booking    *domain.Booking // изменённое бронирование, nil для ignore
}
