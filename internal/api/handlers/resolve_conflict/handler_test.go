package resolve_conflict

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/arena-booking/internal/api/handlers"
	"github.com/m04kA/arena-booking/internal/domain"
	resolveConflict "github.com/m04kA/arena-booking/internal/usecase/resolve_conflict"
)

const conflictID = "6f1c9a2e-0d5b-5c43-9a1e-3f2b7c8d9e10"

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *resolveConflict.Request) (*resolveConflict.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resolveConflict.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/admin/conflicts/{conflictId}/resolve", h.Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/admin/conflicts/"+conflictID+"/resolve", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Moved(t *testing.T) {
	uc := new(mockUseCase)
	moved := &domain.Booking{
		ID:           12,
		CustomerName: "Bob",
		Date:         time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC),
		Time:         "19:00",
		Status:       domain.StatusPending,
	}
	uc.On("Execute", mock.Anything, &resolveConflict.Request{
		ConflictID: conflictID,
		Action:     domain.ResolveMove,
		Side:       resolveConflict.SideB,
		TargetTime: "19:00",
	}).Return(&resolveConflict.Response{
		ConflictID: conflictID,
		Status:     domain.ConflictResolved,
		Note:       "moved to 2030-06-01 19:00",
		Booking:    moved,
	}, nil)

	rec := serve(NewHandler(uc, nopLogger{}), `{"action":"move","side":"b","targetTime":"19:00"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ResolveConflictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, conflictID, resp.ConflictID)
	assert.Equal(t, "resolved", resp.Status)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, int64(12), resp.Booking.ID)
	uc.AssertExpectations(t)
}

func TestHandle_IgnoredHasNoBooking(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.Anything).Return(&resolveConflict.Response{
		ConflictID: conflictID,
		Status:     domain.ConflictIgnored,
	}, nil)

	rec := serve(NewHandler(uc, nopLogger{}), `{"action":"ignore"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"booking"`)
}

func TestHandle_MalformedBody(t *testing.T) {
	uc := new(mockUseCase)

	rec := serve(NewHandler(uc, nopLogger{}), `{"action":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid input", resolveConflict.ErrInvalidInput, http.StatusBadRequest, "BadRequest"},
		{"conflict not found", resolveConflict.ErrConflictNotFound, http.StatusNotFound, "NotFound"},
		{"booking not found", resolveConflict.ErrBookingNotFound, http.StatusNotFound, "NotFound"},
		{"already resolved", resolveConflict.ErrAlreadyResolved, http.StatusConflict, "AlreadyResolved"},
		{"invalid target", resolveConflict.ErrInvalidTarget, http.StatusBadRequest, "BadRequest"},
		{"target slot taken", resolveConflict.ErrTargetSlotTaken, http.StatusConflict, "SlotAlreadyBooked"},
		{"no free slot", resolveConflict.ErrNoFreeSlot, http.StatusConflict, "NoFreeSlot"},
		{"internal", fmt.Errorf("boom"), http.StatusInternalServerError, "InternalError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockUseCase)
			uc.On("Execute", mock.Anything, mock.Anything).
				Return(nil, fmt.Errorf("%w: details", tt.err))

			rec := serve(NewHandler(uc, nopLogger{}), `{"action":"move"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}
