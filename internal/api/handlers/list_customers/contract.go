package list_customers

import (
	"context"

	"github.com/m04kA/arena-booking/internal/service/users/models"
)

type CustomerService interface {
	ListCustomers(ctx context.Context, req *models.ListCustomersRequest) (*models.CustomerListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
