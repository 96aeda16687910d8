package bookingfeed

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingfeed client: internal error")

	// ErrInvalidResponse возвращается при неуспешном ответе ленты
	ErrInvalidResponse = errors.New("bookingfeed client: invalid response")

	// ErrServiceDegraded возвращается, когда публикация не удалась и была пропущена
	ErrServiceDegraded = errors.New("bookingfeed unavailable: graceful degradation applied")
)
