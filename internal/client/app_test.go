// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-chat-assistant/internal/config"
	"github.com/MKhiriev/go-chat-assistant/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUI blocks in Run for runFor and counts refresh requests.
type fakeUI struct {
	runFor    time.Duration
	err       error
	refreshes atomic.Int64
}

func (f *fakeUI) Run(ctx context.Context) error {
	select {
	case <-time.After(f.runFor):
	case <-ctx.Done():
	}
	return f.err
}

func (f *fakeUI) Refresh(context.Context) {
	f.refreshes.Add(1)
}

func TestNewApp_NilUI(t *testing.T) {
	_, err := NewApp(nil, config.ClientWorkers{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNilUI)
}

func TestApp_RefreshJobRunsWhileUIRuns(t *testing.T) {
	ui := &fakeUI{runFor: 60 * time.Millisecond}
	app, err := NewApp(ui, config.ClientWorkers{RefreshInterval: 10 * time.Millisecond}, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))

	after := ui.refreshes.Load()
	assert.GreaterOrEqual(t, after, int64(2))

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, ui.refreshes.Load(), "job stopped with the UI")
}

func TestApp_RefreshDisabled(t *testing.T) {
	ui := &fakeUI{runFor: 30 * time.Millisecond}
	app, err := NewApp(ui, config.ClientWorkers{}, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.Zero(t, ui.refreshes.Load())
}

func TestApp_ClosersRunAndErrorsJoin(t *testing.T) {
	closeErr := errors.New("close failed")
	var closed []string

	ui := &fakeUI{err: errors.New("terminal gone")}
	app, err := NewApp(ui, config.ClientWorkers{}, logger.Nop(),
		func() error { closed = append(closed, "db"); return closeErr },
		nil,
		func() error { closed = append(closed, "other"); return nil },
	)
	require.NoError(t, err)

	err = app.Run(context.Background())
	assert.ErrorIs(t, err, ui.err)
	assert.ErrorIs(t, err, closeErr)
	assert.Equal(t, []string{"db", "other"}, closed)
}
