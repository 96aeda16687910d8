package get_leaderboard

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/arena-booking/internal/api/handlers"
	"github.com/m04kA/arena-booking/internal/service/users"
	"github.com/m04kA/arena-booking/internal/service/users/models"
)

const (
	msgInvalidLimit    = "некорректный параметр limit"
	msgInvalidCategory = "некорректная категория рейтинга"
)

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

// Handle GET /api/v1/leaderboard?category=points|visits|spending&limit=10
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.LeaderboardRequest{Category: r.URL.Query().Get("category")}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /leaderboard - Invalid limit: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		req.Limit = limit
	}

	result, err := h.service.Leaderboard(r.Context(), req)
	if err != nil {
		if errors.Is(err, users.ErrInvalidInput) {
			h.logger.Warn("GET /leaderboard - Invalid category: %q", req.Category)
			handlers.RespondBadRequest(w, msgInvalidCategory)
			return
		}
		h.logger.Error("GET /leaderboard - Failed to build leaderboard: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
