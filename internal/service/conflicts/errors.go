package conflicts

import "errors"

var (
	// ErrConflictNotFound возвращается, когда конфликт не найден
	ErrConflictNotFound = errors.New("conflict not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
