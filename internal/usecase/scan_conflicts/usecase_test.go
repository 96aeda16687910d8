package scan_conflicts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/arena-booking/internal/conflicts"
	"github.com/m04kA/arena-booking/internal/domain"
	"github.com/m04kA/arena-booking/pkg/types"
)

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) ListActive(ctx context.Context) ([]*domain.Booking, error) {
	args := m.Called(ctx)
	b, _ := args.Get(0).([]*domain.Booking)
	return b, args.Error(1)
}

type mockConflictRepo struct{ mock.Mock }

func (m *mockConflictRepo) SaveDetected(ctx context.Context, c []domain.Conflict) (int, error) {
	args := m.Called(ctx, c)
	return args.Int(0), args.Error(1)
}

func (m *mockConflictRepo) ResolveStale(ctx context.Context, ids []string, at time.Time) (int, error) {
	args := m.Called(ctx, ids, at)
	return args.Int(0), args.Error(1)
}

type mockMetrics struct{ mock.Mock }

func (m *mockMetrics) ConflictsDetected(t string, n int) { m.Called(t, n) }

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

var now = time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

func booking(id int64, tm types.TimeString) *domain.Booking {
	return &domain.Booking{
		ID:     id,
		Date:   time.Date(2025, 5, 11, 0, 0, 0, 0, time.UTC),
		Time:   tm,
		Status: domain.StatusPending,
	}
}

func newUseCase(bookings *mockBookingRepo, repo *mockConflictRepo, metrics *mockMetrics) *UseCase {
	uc := NewUseCase(bookings, repo, conflicts.NewClassifier(60), metrics, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func TestExecute(t *testing.T) {
	bookings := &mockBookingRepo{}
	bookings.On("ListActive", mock.Anything).Return([]*domain.Booking{
		booking(1, "10:00"),
		booking(2, "10:00"),
		booking(3, "12:30"),
		booking(4, "13:00"),
	}, nil)

	repo := &mockConflictRepo{}
	// double_booking новый, overlapping уже известен
	repo.On("SaveDetected", mock.Anything, mock.MatchedBy(func(c []domain.Conflict) bool {
		return len(c) == 1 && c[0].Type == domain.ConflictDoubleBooking
	})).Return(1, nil)
	repo.On("SaveDetected", mock.Anything, mock.MatchedBy(func(c []domain.Conflict) bool {
		return len(c) == 1 && c[0].Type == domain.ConflictOverlapping
	})).Return(0, nil)
	repo.On("ResolveStale", mock.Anything, mock.MatchedBy(func(ids []string) bool {
		return len(ids) == 2
	}), now).Return(3, nil)

	metrics := &mockMetrics{}
	metrics.On("ConflictsDetected", "double_booking", 1).Return()

	resp, err := newUseCase(bookings, repo, metrics).Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Conflicts, 2)
	assert.Equal(t, domain.ConflictDoubleBooking, resp.Conflicts[0].Type)
	assert.Equal(t, int64(1), resp.Conflicts[0].BookingA.ID)
	assert.Equal(t, int64(2), resp.Conflicts[0].BookingB.ID)
	assert.Equal(t, domain.ConflictOverlapping, resp.Conflicts[1].Type)
	assert.Equal(t, 1, resp.New)
	assert.Equal(t, 3, resp.AutoResolved)
	assert.Equal(t, map[domain.ConflictType]int{
		domain.ConflictDoubleBooking: 1,
		domain.ConflictOverlapping:   1,
	}, resp.ByType)

	metrics.AssertExpectations(t)
	metrics.AssertNotCalled(t, "ConflictsDetected", "overlapping", mock.Anything)
}

func TestExecute_RescanDoesNotRecountKnownConflicts(t *testing.T) {
	bookings := &mockBookingRepo{}
	bookings.On("ListActive", mock.Anything).Return([]*domain.Booking{
		booking(1, "10:00"),
		booking(2, "10:00"),
	}, nil)

	repo := &mockConflictRepo{}
	repo.On("SaveDetected", mock.Anything, mock.Anything).Return(0, nil)
	repo.On("ResolveStale", mock.Anything, mock.Anything, now).Return(0, nil)

	metrics := &mockMetrics{}
	uc := newUseCase(bookings, repo, metrics)

	for i := 0; i < 3; i++ {
		resp, err := uc.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, resp.New)
		assert.Len(t, resp.Conflicts, 1)
	}

	metrics.AssertNotCalled(t, "ConflictsDetected", mock.Anything, mock.Anything)
}

func TestExecute_NoBookings(t *testing.T) {
	bookings := &mockBookingRepo{}
	bookings.On("ListActive", mock.Anything).Return([]*domain.Booking{}, nil)

	repo := &mockConflictRepo{}
	repo.On("ResolveStale", mock.Anything, []string{}, now).Return(2, nil)

	resp, err := newUseCase(bookings, repo, &mockMetrics{}).Execute(context.Background())
	require.NoError(t, err)

	assert.Empty(t, resp.Conflicts)
	assert.Equal(t, 2, resp.AutoResolved)
}

func TestExecute_Errors(t *testing.T) {
	t.Run("bookings", func(t *testing.T) {
		bookings := &mockBookingRepo{}
		bookings.On("ListActive", mock.Anything).Return(nil, errors.New("db down"))

		_, err := newUseCase(bookings, &mockConflictRepo{}, &mockMetrics{}).Execute(context.Background())
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("save", func(t *testing.T) {
		bookings := &mockBookingRepo{}
		bookings.On("ListActive", mock.Anything).Return([]*domain.Booking{
			booking(1, "10:00"),
			booking(2, "10:00"),
		}, nil)
		repo := &mockConflictRepo{}
		repo.On("SaveDetected", mock.Anything, mock.Anything).Return(0, errors.New("db down"))

		_, err := newUseCase(bookings, repo, &mockMetrics{}).Execute(context.Background())
		assert.ErrorIs(t, err, ErrInternal)
		repo.AssertNotCalled(t, "ResolveStale", mock.Anything, mock.Anything, mock.Anything)
	})
}
