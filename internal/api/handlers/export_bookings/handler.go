package export_bookings

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/m04kA/arena-booking/internal/api/handlers"
	exportBookings "github.com/m04kA/arena-booking/internal/usecase/export_bookings"
)

const msgInvalidParams = "некорректные параметры выгрузки"

type Handler struct {
	useCase ExportBookingsUseCase
	logger  Logger
}

func NewHandler(useCase ExportBookingsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/export?format=csv|pdf&range=all|today|week|month|year&status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &exportBookings.Request{
		Format: exportBookings.Format(query.Get("format")),
		Range:  exportBookings.Range(query.Get("range")),
		Status: query.Get("status"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, exportBookings.ErrInvalidInput) {
			h.logger.Warn("GET /admin/export - Invalid params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		h.logger.Error("GET /admin/export - Export failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Content)))
	w.Header().Set("X-Export-Total", strconv.Itoa(result.Summary.Total))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Content); err != nil {
		h.logger.Error("GET /admin/export - Failed to write file: %v", err)
		return
	}

	h.logger.Info("GET /admin/export - Exported %s: bookings=%d", result.Filename, result.Summary.Total)
}
