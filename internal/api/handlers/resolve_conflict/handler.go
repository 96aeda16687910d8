package resolve_conflict

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/arena-booking/internal/api/handlers"
	resolveConflict "github.com/m04kA/arena-booking/internal/usecase/resolve_conflict"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректное действие или сторона конфликта"
	msgConflictNotFound   = "конфликт не найден"
	msgAlreadyResolved    = "конфликт уже разрешён"
	msgBookingNotFound    = "бронирование конфликта не найдено"
	msgInvalidTarget      = "некорректный целевой слот"
	msgTargetSlotTaken    = "целевой слот занят"
	msgNoFreeSlot         = "нет свободного слота для переноса"
)

type Handler struct {
	useCase ResolveConflictUseCase
	logger  Logger
}

func NewHandler(useCase ResolveConflictUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/conflicts/{conflictId}/resolve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	conflictID := mux.Vars(r)["conflictId"]

	var req ResolveConflictRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/conflicts/{id}/resolve - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(conflictID))
	if err != nil {
		switch {
		case errors.Is(err, resolveConflict.ErrInvalidInput):
			h.logger.Warn("POST /admin/conflicts/{id}/resolve - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, resolveConflict.ErrConflictNotFound):
			h.logger.Warn("POST /admin/conflicts/{id}/resolve - Conflict not found: id=%s", conflictID)
			handlers.RespondNotFound(w, msgConflictNotFound)

		case errors.Is(err, resolveConflict.ErrBookingNotFound):
			h.logger.Warn("POST /admin/conflicts/{id}/resolve - Booking not found: id=%s", conflictID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, resolveConflict.ErrAlreadyResolved):
			h.logger.Warn("POST /admin/conflicts/{id}/resolve - Already resolved: id=%s", conflictID)
			handlers.RespondConflict(w, "AlreadyResolved", msgAlreadyResolved)

		case errors.Is(err, resolveConflict.ErrInvalidTarget):
			h.logger.Warn("POST /admin/conflicts/{id}/resolve - Invalid target: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTarget)

		case errors.Is(err, resolveConflict.ErrTargetSlotTaken):
			h.logger.Warn("POST /admin/conflicts/{id}/resolve - Target slot taken: id=%s", conflictID)
			handlers.RespondConflict(w, "SlotAlreadyBooked", msgTargetSlotTaken)

		case errors.Is(err, resolveConflict.ErrNoFreeSlot):
			h.logger.Warn("POST /admin/conflicts/{id}/resolve - No free slot: id=%s", conflictID)
			handlers.RespondConflict(w, "NoFreeSlot", msgNoFreeSlot)

		default:
			h.logger.Error("POST /admin/conflicts/{id}/resolve - Failed to resolve: id=%s, error=%v", conflictID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/conflicts/{id}/resolve - Conflict %s: id=%s", result.Status, conflictID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
