package scan_conflicts

import (
	"net/http"

	"github.com/m04kA/arena-booking/internal/api/handlers"
)

type Handler struct {
	useCase ScanConflictsUseCase
	logger  Logger
}

func NewHandler(useCase ScanConflictsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/conflicts/scan
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("POST /admin/conflicts/scan - Scan failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/conflicts/scan - found=%d, new=%d, auto_resolved=%d",
		len(result.Conflicts), result.New, result.AutoResolved)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
