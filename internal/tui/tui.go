// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the chat client. It renders the
// synchronizer state with Bubble Tea and turns key presses into
// synchronizer operations; the effects those operations return run as
// tea.Cmd values and come back as messages.
package tui

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-chat-assistant/internal/logger"
	"github.com/MKhiriev/go-chat-assistant/internal/service"
	"github.com/MKhiriev/go-chat-assistant/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI owns the Bubble Tea program.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	mu      sync.Mutex
	program *tea.Program
}

// New returns a TUI over services.
func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil || services.Synchronizer == nil {
		return nil, ErrNilServices
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: log}, nil
}

// Run shows the UI and blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := NewModel(ctx, t.services.Synchronizer, t.buildInfo)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.mu.Lock()
	t.program = program
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.program = nil
		t.mu.Unlock()
	}()

	t.logger.Info().Msg("ui started")
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Refresh asks a running UI to re-fetch the session list. It does nothing
// when the UI is not running.
func (t *TUI) Refresh(context.Context) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(RefreshRequested{})
	}
}
