// Package validator checks booking requests before they are persisted.
package validator

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/arena-booking/internal/availability"
	"github.com/m04kA/arena-booking/internal/domain"
	"github.com/m04kA/arena-booking/pkg/types"
)

var phonePattern = regexp.MustCompile(`^\d{11}$`)

// Request сырой запрос на бронирование
type Request struct {
	Name  string
	Date  string // YYYY-MM-DD
	Time  string // HH:MM
	Phone string
}

// Options значения, которые валидатор проставляет кандидату
type Options struct {
	Location *time.Location // пояс, в котором дата+время сравниваются с now
	Price    float64
	Venue    string
}

// Validator проверяет запросы на бронирование
type Validator struct {
	loc   *time.Location
	price float64
	venue string
}

// New создает валидатор. Пустые опции заменяются значениями по умолчанию
func New(opts Options) *Validator {
	v := &Validator{loc: opts.Location, price: opts.Price, venue: opts.Venue}
	if v.loc == nil {
		v.loc = time.UTC
	}
	if v.price <= 0 {
		v.price = domain.DefaultPrice
	}
	if v.venue == "" {
		v.venue = domain.DefaultVenue
	}
	return v
}

// Location пояс, в котором разбираются даты
func (v *Validator) Location() *time.Location {
	return v.loc
}

// Validate проверяет запрос против существующих бронирований.
// Возвращает кандидата со статусом pending либо ValidationErrors со всеми ошибками
func (v *Validator) Validate(req Request, existing []*domain.Booking, now time.Time) (*domain.Booking, error) {
	return v.ValidateWithIndex(req, availability.Build(existing), now)
}

// ValidateWithIndex то же, что Validate, но с готовым индексом занятости
func (v *Validator) ValidateWithIndex(req Request, idx *availability.Index, now time.Time) (*domain.Booking, error) {
	var errs ValidationErrors

	name, nameErr := checkName(req.Name)
	if nameErr != nil {
		errs = append(errs, *nameErr)
	}

	slotTime, timeErr := types.NewTimeStringFromString(req.Time)
	timeOK := timeErr == nil

	date, dateErr := domain.ParseDate(strings.TrimSpace(req.Date), v.loc)
	dateOK := dateErr == nil
	if !dateOK {
		errs = append(errs, ValidationError{
			Code:    CodeDateRequired,
			Field:   "date",
			Message: "date is required",
		})
	} else {
		// без корректного времени сравниваем начало дня
		at := types.TimeString("00:00")
		if timeOK {
			at = slotTime
		}
		instant, err := at.On(date, v.loc)
		if err == nil && instant.Before(now) {
			errs = append(errs, ValidationError{
				Code:    CodeDateInPast,
				Field:   "date",
				Message: "booking time is in the past",
			})
		}
	}

	if !timeOK {
		errs = append(errs, ValidationError{
			Code:    CodeTimeRequired,
			Field:   "time",
			Message: "time is required",
		})
	}

	phone, phoneErr := checkPhone(req.Phone)
	if phoneErr != nil {
		errs = append(errs, *phoneErr)
	}

	if dateOK && timeOK && idx != nil && !idx.IsAvailable(date, slotTime) {
		errs = append(errs, slotAlreadyBooked())
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &domain.Booking{
		CustomerName: name,
		Date:         date,
		Time:         slotTime,
		Phone:        phone,
		Status:       domain.StatusPending,
		Price:        v.price,
		Venue:        v.venue,
	}, nil
}

// ValidateContact проверяет имя и телефон клиента по тем же правилам, что и бронирование
func ValidateContact(name, phone string) error {
	var errs ValidationErrors
	if _, err := checkName(name); err != nil {
		errs = append(errs, *err)
	}
	if _, err := checkPhone(phone); err != nil {
		errs = append(errs, *err)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func checkName(raw string) (string, *ValidationError) {
	name := strings.TrimSpace(raw)
	if utf8.RuneCountInString(name) < domain.MinCustomerNameLength {
		return name, &ValidationError{
			Code:    CodeNameTooShort,
			Field:   "name",
			Message: "name must be at least 3 characters",
		}
	}
	return name, nil
}

func checkPhone(raw string) (string, *ValidationError) {
	phone := strings.TrimSpace(raw)
	switch {
	case phone == "":
		return phone, &ValidationError{
			Code:    CodePhoneRequired,
			Field:   "phone",
			Message: "phone is required",
		}
	case !phonePattern.MatchString(phone):
		return phone, &ValidationError{
			Code:    CodePhoneFormatInvalid,
			Field:   "phone",
			Message: "phone must contain exactly 11 digits",
		}
	}
	return phone, nil
}
