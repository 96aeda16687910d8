package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/arena-booking/pkg/metrics"
)

func echoIdentity() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserIDFromContext(r.Context()); ok {
			w.Header().Set("X-Seen-User", "yes")
		}
		if IsAdmin(r.Context()) {
			w.Header().Set("X-Seen-Admin", "yes")
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestIdentify(t *testing.T) {
	h := Identify("secret")(echoIdentity())

	tests := []struct {
		name       string
		headers    map[string]string
		wantStatus int
		wantUser   bool
		wantAdmin  bool
	}{
		{name: "anonymous", wantStatus: http.StatusNoContent},
		{name: "user", headers: map[string]string{HeaderUserID: "42"}, wantStatus: http.StatusNoContent, wantUser: true},
		{name: "malformed user", headers: map[string]string{HeaderUserID: "abc"}, wantStatus: http.StatusBadRequest},
		{name: "admin", headers: map[string]string{HeaderAdminToken: "secret"}, wantStatus: http.StatusNoContent, wantAdmin: true},
		{name: "wrong token", headers: map[string]string{HeaderAdminToken: "guess"}, wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantUser, rec.Header().Get("X-Seen-User") == "yes")
			assert.Equal(t, tt.wantAdmin, rec.Header().Get("X-Seen-Admin") == "yes")
		})
	}
}

func TestIdentify_EmptyTokenDisablesAdmin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderAdminToken, "")
	rec := httptest.NewRecorder()

	Identify("")(AdminOnly(echoIdentity())).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthAndAdminOnly(t *testing.T) {
	h := Identify("secret")(Auth(AdminOnly(echoIdentity())))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req.Header.Set(HeaderUserID, "1")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req.Header.Set(HeaderAdminToken, "secret")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	current := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return current }

	h := Identify("")(rl.Limit(echoIdentity()))
	call := func(addr, user string) int {
		req := httptest.NewRequest(http.MethodPost, "/bookings", nil)
		req.RemoteAddr = addr
		if user != "" {
			req.Header.Set(HeaderUserID, user)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, call("10.0.0.1:5000", ""))
	assert.Equal(t, http.StatusNoContent, call("10.0.0.1:5001", "7"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:5002", ""))

	// смена X-User-ID не даёт новый лимит
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:5000", "8"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:5000", "9"))

	// другой адрес со своим лимитом
	assert.Equal(t, http.StatusNoContent, call("10.0.0.2:5000", ""))

	current = current.Add(time.Second)
	assert.Equal(t, http.StatusNoContent, call("10.0.0.1:5000", ""))
}

func TestRateLimiter_Sweep(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	current := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return current }

	rl.allow("ip:10.0.0.1")
	current = current.Add(idleTTL + time.Second)
	rl.allow("ip:10.0.0.2")

	rl.mu.Lock()
	assert.Len(t, rl.visitors, 2, "allow does not evict")
	rl.mu.Unlock()

	rl.sweep()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.Len(t, rl.visitors, 1)
	assert.Contains(t, rl.visitors, "ip:10.0.0.2")
}

func TestRateLimiter_CleanupStopsWithContext(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		rl.Cleanup(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Cleanup did not stop after cancel")
	}
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.New("arena_test")

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/bookings/{bookingId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings/17", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	count := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/bookings/{bookingId}", "404"))
	assert.Equal(t, float64(1), count)
}
