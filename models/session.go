// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// SessionID is the opaque, server-assigned identifier of a chat session.
//
// The backend may encode it as a JSON string (UUID) or as a JSON number. The
// id remembers which one it arrived as and is sent back the same way. The zero
// value means "no session", i.e. a new conversation that has not been saved on
// the server yet.
type SessionID struct {
	value   string
	numeric bool
}

// NewSessionID returns the id v, sent to the backend as a JSON string.
func NewSessionID(v string) SessionID {
	return SessionID{value: v}
}

// IsZero reports whether id refers to no session.
func (id SessionID) IsZero() bool {
	return id.value == ""
}

// String implements [fmt.Stringer].
func (id SessionID) String() string {
	return id.value
}

// UnmarshalJSON accepts a JSON string, a JSON number or null.
func (id *SessionID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = SessionID{}
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decode session id: %w", err)
		}
		*id = SessionID{value: s}
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("decode session id: %w", err)
	}
	*id = SessionID{value: n.String(), numeric: true}
	return nil
}

// MarshalJSON encodes the zero id as null and any other id in the JSON type
// it was decoded from.
func (id SessionID) MarshalJSON() ([]byte, error) {
	if id.IsZero() {
		return []byte("null"), nil
	}
	if id.numeric {
		return []byte(id.value), nil
	}
	return json.Marshal(id.value)
}

// Session is the client's read-only cached copy of a persisted conversation.
type Session struct {
	ID        SessionID `json:"id"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

// Title returns the human-readable label of the session. Sessions without a
// summary get a placeholder derived from the identifier.
func (s Session) Title() string {
	if s.Summary != "" {
		return s.Summary
	}
	return "Chat " + s.ID.String()
}
