package list_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/arena-booking/internal/api/handlers"
	"github.com/m04kA/arena-booking/internal/domain"
	"github.com/m04kA/arena-booking/internal/service/bookings"
	"github.com/m04kA/arena-booking/internal/service/bookings/models"
)

const (
	msgInvalidFrom   = "некорректный параметр from, ожидается YYYY-MM-DD"
	msgInvalidTo     = "некорректный параметр to, ожидается YYYY-MM-DD"
	msgInvalidUserID = "некорректный параметр userId"
	msgInvalidFilter = "некорректный фильтр"
)

type Handler struct {
	service  BookingService
	location *time.Location
	logger   Logger
}

func NewHandler(service BookingService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/admin/bookings
// Query params: from, to (YYYY-MM-DD), status, userId, includeInactive - все опциональны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListBookingsRequest{
		IncludeInactive: query.Get("includeInactive") == "true",
	}

	if from := query.Get("from"); from != "" {
		date, err := domain.ParseDate(from, h.location)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid from: %q", from)
			handlers.RespondBadRequest(w, msgInvalidFrom)
			return
		}
		req.StartDate = &date
	}

	if to := query.Get("to"); to != "" {
		date, err := domain.ParseDate(to, h.location)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid to: %q", to)
			handlers.RespondBadRequest(w, msgInvalidTo)
			return
		}
		req.EndDate = &date
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if raw := query.Get("userId"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid userId: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidUserID)
			return
		}
		req.UserID = &userID
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/bookings - Bookings retrieved successfully: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
