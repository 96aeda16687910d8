package create_booking

import (
	"time"

	"github.com/m04kA/arena-booking/internal/domain"
	createBooking "github.com/m04kA/arena-booking/internal/usecase/create_booking"
	"github.com/m04kA/arena-booking/internal/validator"
)

// CreateBookingRequest HTTP request model.
// Дата и время передаются строками: разбор и проверку делает валидатор
type CreateBookingRequest struct {
	Name  string `json:"name"`
	Date  string `json:"date"` // "2025-10-15"
	Time  string `json:"time"` // "18:00"
	Phone string `json:"phone"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	UserID       *int64  `json:"userId,omitempty"`
	CustomerName string  `json:"customerName"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	Phone        string  `json:"phone"`
	Status       string  `json:"status"`
	Price        float64 `json:"price"`
	Venue        string  `json:"venue"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// FieldError одна ошибка валидации
type FieldError struct {
	Code    string `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationFailedResponse тело ответа 422
type ValidationFailedResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID *int64) *createBooking.Request {
	return &createBooking.Request{
		UserID: userID,
		Name:   r.Name,
		Date:   r.Date,
		Time:   r.Time,
		Phone:  r.Phone,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		UserID:       resp.UserID,
		CustomerName: resp.CustomerName,
		Date:         resp.Date.Format(domain.DateFormat),
		Time:         resp.Time.String(),
		Phone:        resp.Phone,
		Status:       resp.Status,
		Price:        resp.Price,
		Venue:        resp.Venue,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}

// FromValidationErrors собирает тело 422 со всеми ошибками
func FromValidationErrors(errs validator.ValidationErrors) *ValidationFailedResponse {
	out := make([]FieldError, 0, len(errs))
	for _, e := range errs {
		out = append(out, FieldError{
			Code:    string(e.Code),
			Field:   e.Field,
			Message: e.Message,
		})
	}
	return &ValidationFailedResponse{
		Code:    "ValidationFailed",
		Message: msgValidationFailed,
		Errors:  out,
	}
}
