package list_customers

import (
	"errors"
	"net/http"

	"github.com/m04kA/arena-booking/internal/api/handlers"
	"github.com/m04kA/arena-booking/internal/service/users"
	"github.com/m04kA/arena-booking/internal/service/users/models"
)

const msgInvalidFilter = "некорректный статус или сортировка"

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

// Handle GET /api/v1/admin/customers?search=&status=&sort=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListCustomersRequest{
		Search: query.Get("search"),
		Status: query.Get("status"),
		SortBy: query.Get("sort"),
	}

	resp, err := h.service.ListCustomers(r.Context(), req)
	if err != nil {
		if errors.Is(err, users.ErrInvalidInput) {
			h.logger.Warn("GET /admin/customers - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /admin/customers - Failed to list customers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/customers - Found %d customers", len(resp.Customers))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
