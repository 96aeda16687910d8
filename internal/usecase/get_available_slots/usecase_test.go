package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/arena-booking/internal/catalog"
	"github.com/m04kA/arena-booking/internal/domain"
)

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) ListByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	args := m.Called(ctx, date)
	bookings, _ := args.Get(0).([]*domain.Booking)
	return bookings, args.Error(1)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCase(repo BookingRepository, now time.Time) *UseCase {
	cat, _ := catalog.New("10:00", "13:00", 60)
	uc := NewUseCase(repo, cat, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func TestExecute(t *testing.T) {
	date := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	repo := &mockBookingRepo{}
	repo.On("ListByDate", mock.Anything, date).Return([]*domain.Booking{
		{ID: 1, Date: date, Time: "12:00", Status: domain.StatusConfirmed},
	}, nil)

	// 10:30 - слот 10:00 уже начался
	uc := newUseCase(repo, time.Date(2025, 5, 10, 10, 30, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)

	assert.Equal(t, []Slot{
		{Time: "10:00", Available: true, Bookable: false},
		{Time: "11:00", Available: true, Bookable: true},
		{Time: "12:00", Available: false, Bookable: false},
		{Time: "13:00", Available: true, Bookable: true},
	}, resp.Slots)
	assert.Equal(t, 4, resp.Total)
	assert.Equal(t, 3, resp.Available)
	assert.Equal(t, 75, resp.Percent)
}

func TestExecute_MissingDate(t *testing.T) {
	uc := newUseCase(&mockBookingRepo{}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryError(t *testing.T) {
	date := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	repo := &mockBookingRepo{}
	repo.On("ListByDate", mock.Anything, date).Return(nil, errors.New("db down"))

	uc := newUseCase(repo, time.Now())

	_, err := uc.Execute(context.Background(), &Request{Date: date})
	assert.ErrorIs(t, err, ErrInternal)
}
