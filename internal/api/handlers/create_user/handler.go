package create_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/arena-booking/internal/api/handlers"
	"github.com/m04kA/arena-booking/internal/service/users"
	"github.com/m04kA/arena-booking/internal/service/users/models"
	"github.com/m04kA/arena-booking/internal/validator"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidContact     = "некорректное имя или телефон"
	msgUserExists         = "пользователь с таким телефоном уже зарегистрирован"
)

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

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.service.Create(r.Context(), &req)
	if err != nil {
		var verrs validator.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			h.logger.Warn("POST /users - Validation failed: %v", verrs)
			handlers.RespondJSON(w, http.StatusUnprocessableEntity, fromValidationErrors(verrs))

		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("POST /users - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidContact)

		case errors.Is(err, users.ErrUserAlreadyExists):
			h.logger.Warn("POST /users - User already exists")
			handlers.RespondConflict(w, "UserAlreadyExists", msgUserExists)

		default:
			h.logger.Error("POST /users - Failed to create user: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users - User created: user_id=%d", user.ID)
	handlers.RespondJSON(w, http.StatusCreated, user)
}

func fromValidationErrors(errs validator.ValidationErrors) *ValidationFailedResponse {
	out := make([]FieldError, 0, len(errs))
	for _, e := range errs {
		out = append(out, FieldError{Code: string(e.Code), Field: e.Field, Message: e.Message})
	}
	return &ValidationFailedResponse{Code: "ValidationFailed", Message: msgInvalidContact, Errors: out}
}
