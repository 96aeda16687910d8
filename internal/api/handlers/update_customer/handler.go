package update_customer

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/arena-booking/internal/api/handlers"
	"github.com/m04kA/arena-booking/internal/service/users"
	"github.com/m04kA/arena-booking/internal/service/users/models"
)

const (
	msgInvalidUserID      = "некорректный ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректное имя, телефон или статус"
	msgNotFound           = "пользователь не найден"
	msgUserExists         = "пользователь с таким телефоном уже зарегистрирован"
)

type Handler struct {
	service CustomerService
	logger  Logger
}

func NewHandler(service CustomerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/customers/{userId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/customers/{userId} - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	var req models.UpdateCustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/customers/{userId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.service.UpdateCustomer(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/customers/{userId} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, users.ErrUserNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, users.ErrUserAlreadyExists):
			h.logger.Warn("PATCH /admin/customers/{userId} - Phone taken: user_id=%d", userID)
			handlers.RespondConflict(w, "UserAlreadyExists", msgUserExists)

		default:
			h.logger.Error("PATCH /admin/customers/{userId} - Failed to update: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/customers/{userId} - Customer updated: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, user)
}
