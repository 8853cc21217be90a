package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/reclaim/internal/logger"
)

// spyChecker counts expiry checks.
type spyChecker struct {
	calls   atomic.Int64
	expired int
}

func (s *spyChecker) CheckInvitationExpiry(context.Context) int {
	s.calls.Add(1)
	return s.expired
}

func TestExpiryJob_ChecksOnStart(t *testing.T) {
	spy := &spyChecker{expired: 1}
	job := NewExpiryJob(spy, time.Hour, logger.Nop())

	job.Run(context.Background())
	defer job.Stop()

	assert.Eventually(t, func() bool { return spy.calls.Load() == 1 }, time.Second, time.Millisecond)
}

func TestExpiryJob_ChecksOnEveryTick(t *testing.T) {
	spy := &spyChecker{}
	job := NewExpiryJob(spy, 10*time.Millisecond, logger.Nop())

	job.Run(context.Background())
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
}

func TestExpiryJob_StopHaltsChecks(t *testing.T) {
	spy := &spyChecker{}
	job := NewExpiryJob(spy, 10*time.Millisecond, logger.Nop())

	job.Run(context.Background())
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	afterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, afterStop, spy.calls.Load())
}

func TestExpiryJob_ContextCancelStopsLoop(t *testing.T) {
	spy := &spyChecker{}
	job := NewExpiryJob(spy, 10*time.Millisecond, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Run(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after context cancellation")
	}
}

func TestExpiryJob_StopBeforeRun(t *testing.T) {
	job := NewExpiryJob(&spyChecker{}, 0, logger.Nop())
	assert.NotPanics(t, job.Stop)
}

func TestExpiryJob_DefaultInterval(t *testing.T) {
	job, ok := NewExpiryJob(&spyChecker{}, 0, logger.Nop()).(*expiryJob)
	require.True(t, ok)
	assert.Equal(t, DefaultExpiryInterval, job.interval)
}
