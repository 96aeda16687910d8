package update_customer

import (
	"context"

	"github.com/m04kA/arena-booking/internal/service/users/models"
)

type CustomerService interface {
	UpdateCustomer(ctx context.Context, id int64, req *models.UpdateCustomerRequest) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
