package export_bookings

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/arena-booking/internal/domain"
)

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	b, _ := args.Get(0).([]*domain.Booking)
	return b, args.Error(1)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var now = time.Date(2025, 5, 10, 15, 0, 0, 0, time.UTC)

func sample() []*domain.Booking {
	created := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	day := time.Date(2025, 5, 11, 0, 0, 0, 0, time.UTC)
	return []*domain.Booking{
		{ID: 1, CustomerName: "Alice", Phone: "05123456789", Date: day, Time: "10:00", Price: 100, Status: domain.StatusConfirmed, Venue: "Main Field", CreatedAt: created},
		{ID: 2, CustomerName: "Bob, Jr.", Phone: "05123456780", Date: day, Time: "11:00", Price: 120, Status: domain.StatusPending, Venue: "Main Field", CreatedAt: created},
		{ID: 3, CustomerName: "Carol", Phone: "05123456781", Date: day, Time: "12:00", Price: 100, Status: domain.StatusCancelled, Venue: "Main Field", CreatedAt: created},
	}
}

func newUseCase(repo BookingRepository) *UseCase {
	uc := NewUseCase(repo, time.UTC, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func TestExecute_CSV(t *testing.T) {
	repo := &mockBookingRepo{}
	repo.On("List", mock.Anything, domain.BookingsFilter{IncludeInactive: true}).Return(sample(), nil)

	resp, err := newUseCase(repo).Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, "bookings_export_2025-05-10.csv", resp.Filename)
	assert.Equal(t, Summary{Total: 3, Confirmed: 1, Pending: 1, Cancelled: 1, Revenue: 220}, resp.Summary)

	records, err := csv.NewReader(bytes.NewReader(resp.Content)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, []string{
		"2", "Bob, Jr.", "05123456780", "2025-05-11", "11:00", "120.00", "pending", "Main Field", "2025-05-01T09:00:00Z",
	}, records[2])
}

func TestExecute_CSVNeutralizesFormulas(t *testing.T) {
	day := time.Date(2025, 5, 11, 0, 0, 0, 0, time.UTC)
	repo := &mockBookingRepo{}
	repo.On("List", mock.Anything, mock.Anything).Return([]*domain.Booking{
		{ID: 1, CustomerName: `=HYPERLINK("http://evil","x")`, Phone: "05123456789", Date: day, Time: "10:00", Venue: "@Main"},
		{ID: 2, CustomerName: "+Ann", Phone: "05123456780", Date: day, Time: "11:00", Venue: "Main Field"},
		{ID: 3, CustomerName: "-Bob", Phone: "05123456781", Date: day, Time: "12:00", Venue: "Main Field"},
	}, nil)

	resp, err := newUseCase(repo).Execute(context.Background(), &Request{})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(resp.Content)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, `'=HYPERLINK("http://evil","x")`, records[1][1])
	assert.Equal(t, "'@Main", records[1][7])
	assert.Equal(t, "'+Ann", records[2][1])
	assert.Equal(t, "'-Bob", records[3][1])
	assert.Equal(t, "05123456789", records[1][2])
}

func TestSafeCell(t *testing.T) {
	tests := map[string]string{
		"":         "",
		"Alice":    "Alice",
		"=1+2":     "'=1+2",
		"\tcmd":    "'\tcmd",
		"Bob=Carl": "Bob=Carl",
	}
	for in, want := range tests {
		assert.Equal(t, want, safeCell(in), "input %q", in)
	}
}

func TestExecute_PDF(t *testing.T) {
	repo := &mockBookingRepo{}
	repo.On("List", mock.Anything, mock.Anything).Return(sample(), nil)

	resp, err := newUseCase(repo).Execute(context.Background(), &Request{Format: "PDF"})
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", resp.ContentType)
	assert.Equal(t, "bookings_report_2025-05-10.pdf", resp.Filename)
	assert.True(t, bytes.HasPrefix(resp.Content, []byte("%PDF-")))
}

func TestBuildFilter(t *testing.T) {
	day := func(y int, m time.Month, d int) *time.Time {
		v := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &v
	}
	confirmed := domain.StatusConfirmed

	tests := []struct {
		name string
		req  Request
		want domain.BookingsFilter
	}{
		{
			name: "all",
			req:  Request{Range: RangeAll, Status: StatusAll},
			want: domain.BookingsFilter{IncludeInactive: true},
		},
		{
			name: "today",
			req:  Request{Range: RangeToday, Status: StatusAll},
			want: domain.BookingsFilter{StartDate: day(2025, 5, 10), EndDate: day(2025, 5, 10), IncludeInactive: true},
		},
		{
			name: "week confirmed",
			req:  Request{Range: RangeWeek, Status: "confirmed"},
			want: domain.BookingsFilter{StartDate: day(2025, 5, 3), Status: &confirmed, IncludeInactive: true},
		},
		{
			name: "month",
			req:  Request{Range: RangeMonth, Status: StatusAll},
			want: domain.BookingsFilter{StartDate: day(2025, 4, 10), IncludeInactive: true},
		},
		{
			name: "year",
			req:  Request{Range: RangeYear, Status: StatusAll},
			want: domain.BookingsFilter{StartDate: day(2024, 5, 10), IncludeInactive: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildFilter(&tt.req, now)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("filter mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExecute_InvalidInput(t *testing.T) {
	tests := []Request{
		{Format: "xlsx"},
		{Range: "decade"},
		{Status: "archived"},
	}
	for _, req := range tests {
		req := req
		_, err := newUseCase(&mockBookingRepo{}).Execute(context.Background(), &req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &mockBookingRepo{}
	repo.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, err := newUseCase(repo).Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInternal)
}
