package get_conflict

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/arena-booking/internal/api/handlers"
	"github.com/m04kA/arena-booking/internal/service/conflicts"
)

const msgNotFound = "конфликт не найден"

type Handler struct {
	service ConflictService
	logger  Logger
}

func NewHandler(service ConflictService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/conflicts/{conflictId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	conflictID := mux.Vars(r)["conflictId"]

	result, err := h.service.GetByID(r.Context(), conflictID)
	if err != nil {
		if errors.Is(err, conflicts.ErrConflictNotFound) {
			h.logger.Warn("GET /admin/conflicts/{id} - Conflict not found: id=%s", conflictID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /admin/conflicts/{id} - Failed to get conflict: id=%s, error=%v", conflictID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
