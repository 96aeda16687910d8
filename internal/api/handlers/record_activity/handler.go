package record_activity

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/arena-booking/internal/api/handlers"
	"github.com/m04kA/arena-booking/internal/api/middleware"
	recordActivity "github.com/m04kA/arena-booking/internal/usecase/record_activity"
)

const (
	msgInvalidUserID      = "некорректный ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgForbidden          = "можно начислять очки только себе"
	msgNotFound           = "пользователь не найден"
	msgUnknownActivity    = "неизвестный тип активности"
)

type Handler struct {
	useCase RecordActivityUseCase
	logger  Logger
}

func NewHandler(useCase RecordActivityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/users/{userId}/activities
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /users/{userId}/activities - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	// X-User-ID должен совпадать с пользователем из пути
	if callerID, _ := middleware.UserIDFromContext(r.Context()); callerID != userID {
		h.logger.Warn("POST /users/{userId}/activities - Caller %d tried to record for %d", callerID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var req RecordActivityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users/{userId}/activities - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &recordActivity.Request{
		UserID:   userID,
		Activity: req.Activity,
	})
	if err != nil {
		switch {
		case errors.Is(err, recordActivity.ErrUserNotFound):
			h.logger.Warn("POST /users/{userId}/activities - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, recordActivity.ErrUnknownActivity), errors.Is(err, recordActivity.ErrInvalidInput):
			h.logger.Warn("POST /users/{userId}/activities - Invalid activity %q: %v", req.Activity, err)
			handlers.RespondBadRequest(w, msgUnknownActivity)

		default:
			h.logger.Error("POST /users/{userId}/activities - Failed to record activity: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users/{userId}/activities - user_id=%d, activity=%s, points=%d",
		userID, result.Activity, result.Points+result.RewardPoints)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
