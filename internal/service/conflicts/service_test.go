package conflicts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/arena-booking/internal/domain"
	conflictRepo "github.com/m04kA/arena-booking/internal/infra/storage/conflict"
	"github.com/m04kA/arena-booking/internal/service/conflicts/models"
)

type mockConflictRepo struct{ mock.Mock }

func (m *mockConflictRepo) GetByID(ctx context.Context, id string) (*domain.Conflict, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*domain.Conflict)
	return c, args.Error(1)
}

func (m *mockConflictRepo) List(ctx context.Context, status *domain.ConflictStatus) ([]*domain.Conflict, error) {
	args := m.Called(ctx, status)
	c, _ := args.Get(0).([]*domain.Conflict)
	return c, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sampleConflict(id string) *domain.Conflict {
	return &domain.Conflict{
		ID:                  id,
		Type:                domain.ConflictDoubleBooking,
		BookingA:            domain.BookingRef{ID: 1, CustomerName: "Alice", Time: "18:00", Venue: "Main Field"},
		BookingB:            domain.BookingRef{ID: 2, CustomerName: "Bob", Time: "18:00", Venue: "Main Field"},
		Date:                time.Date(2025, 5, 11, 0, 0, 0, 0, time.UTC),
		Severity:            domain.SeverityHigh,
		SuggestedResolution: "move one booking",
		Status:              domain.ConflictPending,
		DetectedAt:          time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()
	id := uuid.NewString()

	t.Run("without filter", func(t *testing.T) {
		repo := new(mockConflictRepo)
		repo.On("List", ctx, (*domain.ConflictStatus)(nil)).Return([]*domain.Conflict{sampleConflict(id)}, nil)

		got, err := NewService(repo, nopLogger{}).List(ctx, nil)
		require.NoError(t, err)

		want := &models.ConflictListResponse{Conflicts: []models.ConflictResponse{{
			ID:                  id,
			Type:                "double_booking",
			BookingA:            models.BookingRefResponse{ID: 1, CustomerName: "Alice", Time: "18:00", Venue: "Main Field"},
			BookingB:            models.BookingRefResponse{ID: 2, CustomerName: "Bob", Time: "18:00", Venue: "Main Field"},
			Date:                "2025-05-11",
			Severity:            string(domain.SeverityHigh),
			SuggestedResolution: "move one booking",
			Status:              "pending",
			DetectedAt:          time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC),
		}}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("List() mismatch (-want +got):\n%s", diff)
		}
		repo.AssertExpectations(t)
	})

	t.Run("status filter", func(t *testing.T) {
		repo := new(mockConflictRepo)
		repo.On("List", ctx, mock.MatchedBy(func(s *domain.ConflictStatus) bool {
			return s != nil && *s == domain.ConflictResolved
		})).Return([]*domain.Conflict{}, nil)

		status := "resolved"
		got, err := NewService(repo, nopLogger{}).List(ctx, &status)
		require.NoError(t, err)
		assert.Empty(t, got.Conflicts)
	})

	t.Run("invalid status", func(t *testing.T) {
		repo := new(mockConflictRepo)
		status := "open"

		_, err := NewService(repo, nopLogger{}).List(ctx, &status)
		assert.ErrorIs(t, err, ErrInvalidInput)
		repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := new(mockConflictRepo)
		repo.On("List", ctx, mock.Anything).Return(nil, errors.New("db down"))

		_, err := NewService(repo, nopLogger{}).List(ctx, nil)
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.NewString()

	tests := []struct {
		name    string
		id      string
		setup   func(*mockConflictRepo)
		wantErr error
	}{
		{
			name: "found",
			id:   id,
			setup: func(r *mockConflictRepo) {
				r.On("GetByID", ctx, id).Return(sampleConflict(id), nil)
			},
		},
		{
			name:    "malformed id",
			id:      "not-a-uuid",
			setup:   func(*mockConflictRepo) {},
			wantErr: ErrConflictNotFound,
		},
		{
			name: "not found",
			id:   id,
			setup: func(r *mockConflictRepo) {
				r.On("GetByID", ctx, id).Return(nil, conflictRepo.ErrConflictNotFound)
			},
			wantErr: ErrConflictNotFound,
		},
		{
			name: "repository error",
			id:   id,
			setup: func(r *mockConflictRepo) {
				r.On("GetByID", ctx, id).Return(nil, errors.New("timeout"))
			},
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockConflictRepo)
			tt.setup(repo)

			got, err := NewService(repo, nopLogger{}).GetByID(ctx, tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, got.ID)
			assert.Equal(t, "pending", got.Status)
		})
	}
}
