// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the session view synchronizer: the component
// that keeps the authentication flag, the session list and the selected
// session's messages consistent with the chat backend.
//
// Operations never block on the network. Each one applies its immediate
// state change through the [state.Store] and returns [Effect] values that
// perform the backend calls. The caller runs an effect wherever it likes
// (the TUI runs them as tea.Cmd, tests run them inline) and feeds the
// resulting action back through [Synchronizer.Apply], which may return
// further effects. [Drain] does this loop synchronously.
package service

import (
	"context"

	"github.com/MKhiriev/go-chat-assistant/internal/state"
	"github.com/MKhiriev/go-chat-assistant/models"
)

// Effect performs one backend call and reports its outcome as an action.
type Effect func() state.Action

// Synchronizer reconciles the client state with the backend.
type Synchronizer interface {
	// State returns the current snapshot.
	State() state.State

	// Apply reduces an action produced by an effect and returns the
	// follow-up effects it triggers: a session list refresh after every
	// transition into the authenticated state and after every successful
	// send that opened a new session.
	Apply(ctx context.Context, action state.Action) []Effect

	// CheckAuthentication restores persisted cookies and checks the
	// backend. Until its effect resolves the auth state stays unknown.
	CheckAuthentication(ctx context.Context) []Effect

	// Login submits credentials. Blank credentials are rejected locally.
	// Failure raises a blocking alert and leaves every other field as is.
	Login(ctx context.Context, username, password string) []Effect

	// Logout ends the backend session. The local state is cleared only if
	// the call succeeds.
	Logout(ctx context.Context) []Effect

	// RefreshSessions re-fetches the session list. Results issued before an
	// auth transition are dropped.
	RefreshSessions(ctx context.Context) []Effect

	// SelectSession switches to id and fetches its history, which replaces
	// the message list wholesale when it arrives, unless the selection has
	// moved on by then.
	SelectSession(ctx context.Context, id models.SessionID) []Effect

	// NewChat clears the selection; the next message opens a new session.
	NewChat() []Effect

	// SendMessage appends text optimistically and posts it. Blank text is a
	// no-op.
	SendMessage(ctx context.Context, text string) []Effect

	// RequestDelete asks the user to confirm deleting id.
	RequestDelete(id models.SessionID) []Effect

	// ConfirmDelete answers the pending confirmation. Declining issues no
	// network call.
	ConfirmDelete(ctx context.Context, confirmed bool) []Effect

	// DeleteSession is RequestDelete followed by ConfirmDelete.
	DeleteSession(ctx context.Context, id models.SessionID, confirmed bool) []Effect

	DismissAlert() []Effect
	SetInput(text string) []Effect
}
