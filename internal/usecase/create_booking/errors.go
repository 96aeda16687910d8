package create_booking

import "errors"

var (
	// ErrSlotAlreadyBooked возвращается, когда слот заняли между проверкой и записью
	ErrSlotAlreadyBooked = errors.New("create_booking: slot already booked")

	// ErrUserNotFound возвращается, когда указанный клиент не найден
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrSubmissionFailed возвращается, когда бронирование не удалось сохранить
	ErrSubmissionFailed = errors.New("create_booking: submission failed")
)
