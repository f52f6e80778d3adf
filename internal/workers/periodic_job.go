// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-chat-assistant/internal/logger"
)

// PeriodicJob calls a function on a ticker. It is idle until Run is called.
type PeriodicJob struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context)
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPeriodicJob returns a job that calls fn every interval. A zero or
// negative interval disables the job: Run does nothing.
func NewPeriodicJob(name string, interval time.Duration, fn func(ctx context.Context), log *logger.Logger) *PeriodicJob {
	return &PeriodicJob{
		name:     name,
		interval: interval,
		fn:       fn,
		logger:   log,
	}
}

// Enabled reports whether Run starts a ticker.
func (j *PeriodicJob) Enabled() bool {
	return j.interval > 0 && j.fn != nil
}

// Run stops any previously running ticker, then launches a goroutine that
// calls fn every interval. The goroutine exits when ctx is cancelled or Stop
// is called.
func (j *PeriodicJob) Run(ctx context.Context) {
	if !j.Enabled() {
		j.logger.Debug().Str("job", j.name).Msg("periodic job disabled")
		return
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Info().Str("job", j.name).Dur("interval", j.interval).Msg("periodic job started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.fn(jobCtx)
			}
		}
	}()
}

// Stop cancels the goroutine and waits for it to exit. Safe to call when
// the job is not running.
func (j *PeriodicJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
