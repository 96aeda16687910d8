package list_conflicts

import (
	"errors"
	"net/http"

	"github.com/m04kA/arena-booking/internal/api/handlers"
	"github.com/m04kA/arena-booking/internal/service/conflicts"
)

const msgInvalidStatus = "некорректный статус конфликта"

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

// Handle GET /api/v1/admin/conflicts?status=pending|resolved|ignored
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var status *string
	if s := r.URL.Query().Get("status"); s != "" {
		status = &s
	}

	result, err := h.service.List(r.Context(), status)
	if err != nil {
		if errors.Is(err, conflicts.ErrInvalidInput) {
			h.logger.Warn("GET /admin/conflicts - Invalid status: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /admin/conflicts - Failed to list conflicts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/conflicts - Conflicts retrieved: count=%d", len(result.Conflicts))
	handlers.RespondJSON(w, http.StatusOK, result)
}
