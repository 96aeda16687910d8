package get_booking_qr

import (
	"context"

	getBookingQR "github.com/m04kA/arena-booking/internal/usecase/get_booking_qr"
)

type GetBookingQRUseCase interface {
	Execute(ctx context.Context, req *getBookingQR.Request) (*getBookingQR.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
