package record_activity

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("record_activity: user not found")

	// ErrUnknownActivity возвращается для неизвестного типа активности
	ErrUnknownActivity = errors.New("record_activity: unknown activity")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("record_activity: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("record_activity: internal error")
)
