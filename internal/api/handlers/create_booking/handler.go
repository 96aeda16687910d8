package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/arena-booking/internal/api/handlers"
	"github.com/m04kA/arena-booking/internal/api/middleware"
	createBooking "github.com/m04kA/arena-booking/internal/usecase/create_booking"
	"github.com/m04kA/arena-booking/internal/validator"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "запрос на бронирование не прошёл проверку"
	msgSlotAlreadyBooked  = "выбранный слот уже забронирован"
	msgUserNotFound       = "пользователь не найден"
	msgSubmissionFailed   = "не удалось сохранить бронирование, попробуйте позже"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(middleware.UserIDPtr(r.Context())))
	if err != nil {
		var verrs validator.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			h.logger.Warn("POST /bookings - Validation failed: %v", verrs)
			handlers.RespondJSON(w, http.StatusUnprocessableEntity, FromValidationErrors(verrs))

		case errors.Is(err, createBooking.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /bookings - Slot already booked: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondConflict(w, string(validator.CodeSlotAlreadyBooked), msgSlotAlreadyBooked)

		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found")
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createBooking.ErrSubmissionFailed):
			h.logger.Error("POST /bookings - Submission failed: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, "SubmissionFailed", msgSubmissionFailed)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
