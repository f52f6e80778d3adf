// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"slices"

	"github.com/MKhiriev/go-chat-assistant/models"
)

// Reduce returns the state that follows s after a. It never mutates s or
// the slices it shares; unknown actions return s unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case AuthChecked:
		if s.Auth != AuthUnknown {
			return s
		}
		if a.Err != nil || !a.Status.IsAuthenticated {
			return authenticate(s, AuthUnauthenticated, "")
		}
		return authenticate(s, AuthAuthenticated, a.Status.Username)

	case LoginRequested:
		s.LoginPending = true
		s.Alert = ""
		return s

	case LoginSucceeded:
		if s.Auth == AuthAuthenticated {
			s.LoginPending = false
			return s
		}
		return authenticate(s, AuthAuthenticated, a.Username)

	case LoginFailed:
		s.LoginPending = false
		s.Alert = a.Reason
		return s

	case LogoutSucceeded:
		if s.Auth != AuthAuthenticated {
			return s
		}
		return authenticate(s, AuthUnauthenticated, "")

	case LogoutFailed:
		s.Status = a.Reason
		return s

	case SessionsLoaded:
		if a.Epoch != s.Epoch || s.Auth != AuthAuthenticated {
			return s
		}
		if a.Err != nil {
			s.Status = a.Reason
			return s
		}
		s.Sessions = cloneOrEmpty(a.Sessions)
		return s

	case SessionSelected:
		if a.ID.IsZero() {
			return clearThread(s)
		}
		s.Selected = a.ID
		s.Messages = []models.Message{}
		s.SelectionGen++
		s.LoadingHistory = true
		s.Status = ""
		return s

	case HistoryLoaded:
		if a.ID != s.Selected || a.Gen != s.SelectionGen {
			return s
		}
		s.LoadingHistory = false
		if a.Err != nil {
			s.Status = a.Reason
			return s
		}
		s.Messages = mergeHistory(a.Messages, s.Messages)
		return s

	case NewChatStarted:
		return clearThread(s)

	case MessageSent:
		s.Input = ""
		s.Messages = appendMessage(s.Messages, a.Message)
		s.Sending++
		return s

	case ReplyReceived:
		s.Sending = max(s.Sending-1, 0)
		if a.Gen != s.SelectionGen {
			return s
		}
		if a.NewSession && s.Selected.IsZero() {
			s.Selected = a.Response.SessionID
		}
		s.Messages = appendMessage(s.Messages, a.Response.Reply())
		return s

	case SendFailed:
		s.Sending = max(s.Sending-1, 0)
		if a.Gen != s.SelectionGen {
			return s
		}
		s.Messages = appendMessage(s.Messages, a.Notice)
		return s

	case DeleteRequested:
		if a.ID.IsZero() {
			return s
		}
		s.PendingDelete = a.ID
		return s

	case DeleteResolved:
		s.PendingDelete = models.SessionID{}
		return s

	case SessionDeleted:
		if a.Err != nil {
			return s
		}
		s.Sessions = slices.DeleteFunc(slices.Clone(s.Sessions), func(sess models.Session) bool {
			return sess.ID == a.ID
		})
		if s.Selected == a.ID {
			return clearThread(s)
		}
		return s

	case AlertDismissed:
		s.Alert = ""
		return s

	case InputChanged:
		s.Input = a.Text
		return s
	}

	return s
}

// authenticate moves to auth and drops everything tied to the previous
// identity.
func authenticate(s State, auth AuthStatus, username string) State {
	return State{
		Auth:         auth,
		Username:     username,
		Sessions:     []models.Session{},
		Messages:     []models.Message{},
		Epoch:        s.Epoch + 1,
		SelectionGen: s.SelectionGen + 1,
	}
}

// mergeHistory puts the loaded history first and keeps what was added to
// the thread while it loaded, minus server messages the history already has.
func mergeHistory(history, added []models.Message) []models.Message {
	out := cloneOrEmpty(history)
	if len(added) == 0 {
		return out
	}

	loaded := make(map[int64]struct{}, len(history))
	for _, m := range history {
		if !m.ID.IsLocal() {
			loaded[m.ID.Server] = struct{}{}
		}
	}
	for _, m := range added {
		if _, dup := loaded[m.ID.Server]; dup && !m.ID.IsLocal() {
			continue
		}
		out = append(out, m)
	}
	return out
}

func clearThread(s State) State {
	s.Selected = models.SessionID{}
	s.Messages = []models.Message{}
	s.SelectionGen++
	s.LoadingHistory = false
	return s
}

func appendMessage(msgs []models.Message, m models.Message) []models.Message {
	out := make([]models.Message, 0, len(msgs)+1)
	out = append(out, msgs...)
	return append(out, m)
}

func cloneOrEmpty[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return slices.Clone(in)
}
