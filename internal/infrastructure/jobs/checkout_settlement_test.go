package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type settlerStub struct {
	mu    sync.Mutex
	calls int
	n     int
	err   error
	last  time.Time
}

func (s *settlerStub) SettleDue(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.last = now
	return s.n, s.err
}

func (s *settlerStub) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestSettleDue_PassesClock(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	stub := &settlerStub{n: 2}
	job := NewCheckoutSettlementJob(stub, time.Millisecond)
	job.now = func() time.Time { return fixed }

	require.Equal(t, 2, job.settleDue(context.Background()))
	require.Equal(t, fixed, stub.last)
}

func TestSettleDue_ErrorReportsZero(t *testing.T) {
	stub := &settlerStub{n: 3, err: errors.New("db down")}
	job := NewCheckoutSettlementJob(stub, time.Millisecond)

	require.Equal(t, 0, job.settleDue(context.Background()))
	require.Equal(t, 1, stub.callCount())
}

func TestNewCheckoutSettlementJob_DefaultInterval(t *testing.T) {
	job := NewCheckoutSettlementJob(&settlerStub{}, 0)
	require.Equal(t, time.Second, job.interval)
}

func TestStart_StopsOnStop(t *testing.T) {
	stub := &settlerStub{}
	job := NewCheckoutSettlementJob(stub, time.Millisecond)

	done := make(chan struct{})
	go func() {
		job.Start(context.Background())
		close(done)
	}()

	require.Eventually(t, func() bool { return stub.callCount() > 0 }, time.Second, time.Millisecond)
	job.Stop()
	job.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not stop")
	}
}

func TestStart_StopsOnContextCancel(t *testing.T) {
	job := NewCheckoutSettlementJob(&settlerStub{}, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		job.Start(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not stop after cancel")
	}
}
