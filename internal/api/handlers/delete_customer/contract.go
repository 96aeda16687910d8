package delete_customer

import "context"

type CustomerService interface {
	DeleteCustomer(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
