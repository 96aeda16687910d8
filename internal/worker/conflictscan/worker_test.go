package conflictscan

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	scanConflicts "github.com/m04kA/arena-booking/internal/usecase/scan_conflicts"
)

type countingScanner struct {
	calls atomic.Int32
	err   error
}

func (s *countingScanner) Execute(context.Context) (*scanConflicts.Response, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return &scanConflicts.Response{New: 1}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestRun_ScansUntilCancelled(t *testing.T) {
	scanner := &countingScanner{}
	w := New(scanner, 10*time.Millisecond, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return scanner.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}

func TestRun_KeepsGoingAfterErrors(t *testing.T) {
	scanner := &countingScanner{err: errors.New("db down")}
	w := New(scanner, 10*time.Millisecond, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	assert.Eventually(t, func() bool { return scanner.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
}

func TestRun_Disabled(t *testing.T) {
	scanner := &countingScanner{}
	New(scanner, 0, nopLogger{}).Run(context.Background())
	assert.Equal(t, int32(0), scanner.calls.Load())
}
