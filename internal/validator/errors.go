package validator

import "strings"

// Code код ошибки валидации
type Code string

const (
	CodeNameTooShort       Code = "NameTooShort"
	CodeDateRequired       Code = "DateRequired"
	CodeDateInPast         Code = "DateInPast"
	CodeTimeRequired       Code = "TimeRequired"
	CodePhoneRequired      Code = "PhoneRequired"
	CodePhoneFormatInvalid Code = "PhoneFormatInvalid"
	CodeSlotAlreadyBooked  Code = "SlotAlreadyBooked"
)

// ValidationError одна проблема запроса
type ValidationError struct {
	Code    Code
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors все проблемы запроса, в порядке проверки полей
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, v := range e {
		parts = append(parts, string(v.Code))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Has проверяет наличие ошибки с кодом code
func (e ValidationErrors) Has(code Code) bool {
	for _, v := range e {
		if v.Code == code {
			return true
		}
	}
	return false
}

// Codes коды ошибок по порядку
func (e ValidationErrors) Codes() []Code {
	codes := make([]Code, 0, len(e))
	for _, v := range e {
		codes = append(codes, v.Code)
	}
	return codes
}

// SlotTaken ошибка для случая, когда слот заняли между проверкой и записью
func SlotTaken() ValidationErrors {
	return ValidationErrors{slotAlreadyBooked()}
}

func slotAlreadyBooked() ValidationError {
	return ValidationError{
		Code:    CodeSlotAlreadyBooked,
		Field:   "time",
		Message: "this slot is already booked",
	}
}
