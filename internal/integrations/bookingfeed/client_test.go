package bookingfeed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/arena-booking/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:           42,
		CustomerName: "Ahmed Ali",
		Date:         time.Date(2025, 5, 11, 0, 0, 0, 0, time.UTC),
		Time:         "18:00",
		Phone:        "01234567890",
		Status:       domain.StatusPending,
		Price:        100,
		Venue:        "Main Field",
		CreatedAt:    time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestPublish_SendsEvent(t *testing.T) {
	var got BookingEvent
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nopLogger{})
	require.NoError(t, c.Publish(context.Background(), testBooking()))

	assert.Equal(t, BookingEvent{
		ID:        42,
		Name:      "Ahmed Ali",
		Date:      "2025-05-11",
		Time:      "18:00",
		Phone:     "01234567890",
		Status:    "pending",
		Price:     100,
		Venue:     "Main Field",
		Timestamp: "2025-05-10T09:00:00Z",
	}, got)
}

func TestPublish_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nopLogger{})

	err := c.Publish(context.Background(), testBooking())
	assert.ErrorIs(t, err, ErrInvalidResponse)

	err = c.PublishWithGracefulDegradation(context.Background(), testBooking())
	assert.True(t, IsDegraded(err))
}

func TestPublish_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, 200*time.Millisecond, nopLogger{})
	assert.ErrorIs(t, c.Publish(context.Background(), testBooking()), ErrInternal)
}
