// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package state holds the client's view of the chat backend and the only
// code allowed to change it.
//
// [State] is an immutable value. Every change goes through [Reduce], a pure
// function from the current state and an [Action] to the next state, and
// [Store] serialises those reductions so there is exactly one writer.
// Network work happens elsewhere; its outcome comes back as an Action.
//
// Responses that may arrive late carry the counters they were issued under:
// session lists carry the auth [State.Epoch], histories and chat replies
// carry the [State.SelectionGen]. Reduce drops them when the counter has
// moved on, so a slow response can never overwrite a newer view.
package state

import (
	"github.com/MKhiriev/go-chat-assistant/models"
)

// AuthStatus is the authentication state machine:
// Unknown -> {Unauthenticated, Authenticated}, Authenticated -> Unauthenticated
// via logout and Unauthenticated -> Authenticated via login.
type AuthStatus int

const (
	// AuthUnknown holds until the initial auth check resolves.
	AuthUnknown AuthStatus = iota
	AuthUnauthenticated
	AuthAuthenticated
)

func (a AuthStatus) String() string {
	switch a {
	case AuthUnauthenticated:
		return "unauthenticated"
	case AuthAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// State is a snapshot of everything the client displays.
type State struct {
	Auth     AuthStatus
	Username string

	// Sessions is kept in backend order.
	Sessions []models.Session
	// Selected is zero while composing a new, unsaved conversation.
	Selected models.SessionID
	// Messages belong to Selected, or to the unsaved conversation.
	Messages []models.Message
	Input    string

	// Epoch changes on every auth transition.
	Epoch uint64
	// SelectionGen changes whenever the displayed thread is swapped out.
	SelectionGen uint64

	// PendingDelete is the session awaiting the user's confirmation.
	PendingDelete models.SessionID
	// Alert is a blocking notice the user has to dismiss.
	Alert string
	// Status is a non-blocking one-line notice.
	Status string

	LoginPending   bool
	LoadingHistory bool
	// Sending counts chat requests still in flight.
	Sending int
}

// Initial returns the state the client starts in.
func Initial() State {
	return State{
		Auth:     AuthUnknown,
		Sessions: []models.Session{},
		Messages: []models.Message{},
	}
}

// SelectedSession returns the selected session if it is in the list.
func (s State) SelectedSession() (models.Session, bool) {
	if s.Selected.IsZero() {
		return models.Session{}, false
	}
	for _, sess := range s.Sessions {
		if sess.ID == s.Selected {
			return sess, true
		}
	}
	return models.Session{}, false
}

// LastAnswer returns the text of the latest non-error assistant message.
func (s State) LastAnswer() (string, bool) {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		m := s.Messages[i]
		if m.Sender == models.SenderAssistant && !m.IsError {
			return m.Text, true
		}
	}
	return "", false
}
