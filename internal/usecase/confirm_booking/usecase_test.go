package confirm_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/arena-booking/internal/domain"
	bookingRepo "github.com/m04kA/arena-booking/internal/infra/storage/booking"
	userRepo "github.com/m04kA/arena-booking/internal/infra/storage/user"
	"github.com/m04kA/arena-booking/pkg/ptr"
)

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*domain.Booking)
	return b, args.Error(1)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) UpdateProgress(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) Upsert(ctx context.Context, users ...*domain.User) error {
	return m.Called(ctx, users).Error(0)
}

type mockMetrics struct{ mock.Mock }

func (m *mockMetrics) PointsGranted(source string, points int) { m.Called(source, points) }

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	bookings *mockBookingRepo
	users    *mockUserRepo
	cache    *mockCache
	metrics  *mockMetrics
	uc       *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		bookings: &mockBookingRepo{},
		users:    &mockUserRepo{},
		cache:    &mockCache{},
		metrics:  &mockMetrics{},
	}
	f.uc = NewUseCase(f.bookings, f.users, f.cache, f.metrics, fakeTxManager{}, nopLogger{})
	f.uc.timeProvider = fixedTime{now: time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)}
	return f
}

func pendingBooking(userID *int64) *domain.Booking {
	return &domain.Booking{
		ID:           7,
		UserID:       userID,
		CustomerName: "Alice",
		Date:         time.Date(2025, 5, 11, 0, 0, 0, 0, time.UTC),
		Time:         "19:00",
		Status:       domain.StatusPending,
		Price:        100,
	}
}

func TestExecute_AwardsUser(t *testing.T) {
	f := newFixture()
	f.bookings.On("GetByID", mock.Anything, int64(7)).Return(pendingBooking(ptr.Ptr[int64](3)), nil)
	f.bookings.On("UpdateStatus", mock.Anything, int64(7), domain.StatusConfirmed).Return(nil)
	f.users.On("GetByID", mock.Anything, int64(3)).Return(&domain.User{ID: 3, Name: "Alice", Level: 1}, nil)
	f.users.On("UpdateProgress", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.ID == 3 && u.Points == 150 && u.TotalVisits == 1 && u.TotalSpent == 100 &&
			u.LastVisitAt != nil && u.LastVisitAt.Equal(time.Date(2025, 5, 11, 0, 0, 0, 0, time.UTC))
	})).Return(nil)
	f.cache.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	f.metrics.On("PointsGranted", pointsSource, 150).Return()

	resp, err := f.uc.Execute(context.Background(), &Request{BookingID: 7})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, resp.Booking.Status)
	require.NotNil(t, resp.Reward)
	assert.Equal(t, 100, resp.Reward.Points)
	assert.Equal(t, 50, resp.Reward.RewardPoints)
	assert.Equal(t, 150, resp.Reward.TotalPoints)
	assert.Equal(t, []string{"first_visit"}, resp.Reward.Unlocked)

	f.users.AssertExpectations(t)
	f.cache.AssertExpectations(t)
	f.metrics.AssertExpectations(t)
}

func TestExecute_WithoutUser(t *testing.T) {
	f := newFixture()
	f.bookings.On("GetByID", mock.Anything, int64(7)).Return(pendingBooking(nil), nil)
	f.bookings.On("UpdateStatus", mock.Anything, int64(7), domain.StatusConfirmed).Return(nil)

	resp, err := f.uc.Execute(context.Background(), &Request{BookingID: 7})
	require.NoError(t, err)

	assert.Nil(t, resp.Reward)
	f.users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	f.metrics.AssertNotCalled(t, "PointsGranted", mock.Anything, mock.Anything)
}

func TestExecute_CacheFailureIgnored(t *testing.T) {
	f := newFixture()
	f.bookings.On("GetByID", mock.Anything, int64(7)).Return(pendingBooking(ptr.Ptr[int64](3)), nil)
	f.bookings.On("UpdateStatus", mock.Anything, int64(7), domain.StatusConfirmed).Return(nil)
	f.users.On("GetByID", mock.Anything, int64(3)).Return(&domain.User{ID: 3}, nil)
	f.users.On("UpdateProgress", mock.Anything, mock.Anything).Return(nil)
	f.cache.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("redis down"))
	f.metrics.On("PointsGranted", mock.Anything, mock.Anything).Return()

	_, err := f.uc.Execute(context.Background(), &Request{BookingID: 7})
	assert.NoError(t, err)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		booking *domain.Booking
		repoErr error
		wantErr error
	}{
		{
			name:    "not found",
			repoErr: bookingRepo.ErrBookingNotFound,
			wantErr: ErrBookingNotFound,
		},
		{
			name:    "already confirmed",
			booking: &domain.Booking{ID: 7, Status: domain.StatusConfirmed},
			wantErr: ErrInvalidTransition,
		},
		{
			name:    "cancelled",
			booking: &domain.Booking{ID: 7, Status: domain.StatusCancelled},
			wantErr: ErrInvalidTransition,
		},
		{
			name:    "storage failure",
			repoErr: errors.New("db down"),
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.bookings.On("GetByID", mock.Anything, int64(7)).Return(tt.booking, tt.repoErr)

			_, err := f.uc.Execute(context.Background(), &Request{BookingID: 7})
			assert.ErrorIs(t, err, tt.wantErr)
			f.bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestExecute_DeletedUserStillConfirms(t *testing.T) {
	f := newFixture()
	f.bookings.On("GetByID", mock.Anything, int64(7)).Return(pendingBooking(ptr.Ptr[int64](3)), nil)
	f.bookings.On("UpdateStatus", mock.Anything, int64(7), domain.StatusConfirmed).Return(nil)
	f.users.On("GetByID", mock.Anything, int64(3)).Return(nil, userRepo.ErrUserNotFound)

	resp, err := f.uc.Execute(context.Background(), &Request{BookingID: 7})
	require.NoError(t, err)
	assert.Nil(t, resp.Reward)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
