package validator

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/arena-booking/internal/domain"
)

var now = time.Date(2025, 5, 10, 14, 30, 0, 0, time.UTC)

func validRequest() Request {
	return Request{
		Name:  "Ahmed Ali",
		Date:  "2025-05-11",
		Time:  "18:00",
		Phone: "01234567890",
	}
}

func codesOf(t *testing.T, err error) []Code {
	t.Helper()
	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs), "expected ValidationErrors, got %v", err)
	return verrs.Codes()
}

func TestValidate_Success(t *testing.T) {
	v := New(Options{Location: time.UTC})

	got, err := v.Validate(validRequest(), nil, now)
	require.NoError(t, err)

	want := &domain.Booking{
		CustomerName: "Ahmed Ali",
		Date:         time.Date(2025, 5, 11, 0, 0, 0, 0, time.UTC),
		Time:         "18:00",
		Phone:        "01234567890",
		Status:       domain.StatusPending,
		Price:        domain.DefaultPrice,
		Venue:        domain.DefaultVenue,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	v := New(Options{Location: time.UTC})

	_, err := v.Validate(Request{Name: "Al", Phone: "12345"}, nil, now)

	assert.Equal(t, []Code{
		CodeNameTooShort,
		CodeDateRequired,
		CodeTimeRequired,
		CodePhoneFormatInvalid,
	}, codesOf(t, err))
}

func TestValidate_Rules(t *testing.T) {
	v := New(Options{Location: time.UTC})

	tests := []struct {
		name   string
		mutate func(r *Request)
		want   []Code
	}{
		{"short name", func(r *Request) { r.Name = "Al" }, []Code{CodeNameTooShort}},
		{"name padded with spaces", func(r *Request) { r.Name = "  Al  " }, []Code{CodeNameTooShort}},
		{"three unicode letters", func(r *Request) { r.Name = "علي" }, nil},
		{"missing date", func(r *Request) { r.Date = "" }, []Code{CodeDateRequired}},
		{"unparseable date", func(r *Request) { r.Date = "11/05/2025" }, []Code{CodeDateRequired}},
		{"yesterday", func(r *Request) { r.Date = "2025-05-09" }, []Code{CodeDateInPast}},
		{"earlier today", func(r *Request) { r.Date = "2025-05-10"; r.Time = "14:00" }, []Code{CodeDateInPast}},
		{"later today", func(r *Request) { r.Date = "2025-05-10"; r.Time = "15:00" }, nil},
		{"missing time", func(r *Request) { r.Time = "" }, []Code{CodeTimeRequired}},
		{"missing time today uses midnight", func(r *Request) { r.Date = "2025-05-10"; r.Time = "" }, []Code{CodeDateInPast, CodeTimeRequired}},
		{"malformed time", func(r *Request) { r.Time = "6pm" }, []Code{CodeTimeRequired}},
		{"missing phone", func(r *Request) { r.Phone = "" }, []Code{CodePhoneRequired}},
		{"five digit phone", func(r *Request) { r.Phone = "12345" }, []Code{CodePhoneFormatInvalid}},
		{"twelve digit phone", func(r *Request) { r.Phone = "012345678901" }, []Code{CodePhoneFormatInvalid}},
		{"phone with plus", func(r *Request) { r.Phone = "+0123456789" }, []Code{CodePhoneFormatInvalid}},
		{"tomorrow", func(r *Request) { r.Date = "2025-05-11" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			_, err := v.Validate(req, nil, now)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, codesOf(t, err))
		})
	}
}

func TestValidate_SlotAlreadyBooked(t *testing.T) {
	v := New(Options{Location: time.UTC})
	existing := []*domain.Booking{{
		ID:     1,
		Date:   time.Date(2025, 5, 11, 0, 0, 0, 0, time.UTC),
		Time:   "18:00",
		Status: domain.StatusPending,
	}}

	_, err := v.Validate(validRequest(), existing, now)
	assert.Equal(t, []Code{CodeSlotAlreadyBooked}, codesOf(t, err))

	existing[0].Status = domain.StatusCancelled
	_, err = v.Validate(validRequest(), existing, now)
	assert.NoError(t, err, "cancelled booking frees the slot")
}

func TestValidate_Location(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	v := New(Options{Location: loc, Price: 150, Venue: "Court 2"})

	// 14:30 UTC = 17:30 UTC+3, слот 17:00 уже прошёл
	req := validRequest()
	req.Date = "2025-05-10"
	req.Time = "17:00"
	_, err := v.Validate(req, nil, now)
	assert.Equal(t, []Code{CodeDateInPast}, codesOf(t, err))

	req.Time = "18:00"
	got, err := v.Validate(req, nil, now)
	require.NoError(t, err)
	assert.Equal(t, 150.0, got.Price)
	assert.Equal(t, "Court 2", got.Venue)
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Code: CodeNameTooShort, Field: "name"},
		{Code: CodePhoneRequired, Field: "phone"},
	}
	assert.Equal(t, "validation failed: NameTooShort, PhoneRequired", errs.Error())
	assert.True(t, errs.Has(CodePhoneRequired))
	assert.False(t, errs.Has(CodeDateInPast))
	assert.True(t, SlotTaken().Has(CodeSlotAlreadyBooked))
}

func TestValidateContact(t *testing.T) {
	assert.NoError(t, ValidateContact(" Alice ", "05123456789"))

	err := ValidateContact("Al", "0512")
	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, []Code{CodeNameTooShort, CodePhoneFormatInvalid}, errs.Codes())
}
