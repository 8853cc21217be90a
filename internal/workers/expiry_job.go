// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/reclaim/internal/logger"
)

// DefaultExpiryInterval is used when no positive interval is configured.
const DefaultExpiryInterval = time.Hour

type expiryJob struct {
	checker  ExpiryChecker
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewExpiryJob returns a worker that checks invitation expiry once on Run and
// then every interval. The job is idle until Run is called.
func NewExpiryJob(checker ExpiryChecker, interval time.Duration, log *logger.Logger) Worker {
	if interval <= 0 {
		interval = DefaultExpiryInterval
	}
	return &expiryJob{checker: checker, interval: interval, logger: log}
}

// Run implements Worker. A previously running loop is stopped first.
func (j *expiryJob) Run(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		j.check(jobCtx)

		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.check(jobCtx)
			}
		}
	}()
}

func (j *expiryJob) check(ctx context.Context) {
	if n := j.checker.CheckInvitationExpiry(ctx); n > 0 {
		j.logger.Info().Int("expired", n).Msg("expiry check logged expired invitations")
	}
}

// Stop implements Worker. It cancels the loop and blocks until it exits.
// Stop is a no-op when the job is not running.
func (j *expiryJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
