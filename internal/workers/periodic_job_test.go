// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-chat-assistant/internal/logger"
	"github.com/stretchr/testify/assert"
)

func countingJob(interval time.Duration) (*PeriodicJob, *atomic.Int64) {
	calls := &atomic.Int64{}
	job := NewPeriodicJob("test", interval, func(context.Context) { calls.Add(1) }, logger.Nop())
	return job, calls
}

func TestPeriodicJob_RunCallsFn(t *testing.T) {
	job, calls := countingJob(10 * time.Millisecond)

	job.Run(context.Background())
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, calls.Load(), int64(3), "fn called %d times", calls.Load())
}

func TestPeriodicJob_StopStopsGoroutine(t *testing.T) {
	job, calls := countingJob(10 * time.Millisecond)

	job.Run(context.Background())
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	afterStop := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, afterStop, calls.Load(), "no calls after Stop")
}

func TestPeriodicJob_ContextCancelStops(t *testing.T) {
	job, calls := countingJob(10 * time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	job.Run(ctx)
	time.Sleep(25 * time.Millisecond)
	cancel()
	job.Stop()

	afterCancel := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, afterCancel, calls.Load())
}

func TestPeriodicJob_DisabledByNonPositiveInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		job, calls := countingJob(interval)
		assert.False(t, job.Enabled())

		job.Run(context.Background())
		time.Sleep(20 * time.Millisecond)
		job.Stop()

		assert.Zero(t, calls.Load())
	}
}

func TestPeriodicJob_StopBeforeRunNoPanic(t *testing.T) {
	job, _ := countingJob(time.Second)
	assert.NotPanics(t, job.Stop)
	assert.NotPanics(t, job.Stop)
}

func TestPeriodicJob_RunTwiceRestarts(t *testing.T) {
	job, calls := countingJob(10 * time.Millisecond)

	job.Run(context.Background())
	job.Run(context.Background())
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	assert.Positive(t, calls.Load())
}

func TestPeriodicJob_ImplementsWorker(t *testing.T) {
	var _ Worker = NewPeriodicJob("x", 0, nil, logger.Nop())
}
