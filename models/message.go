// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"

	"github.com/google/uuid"
)

// Sender tags the author of a message.
type Sender string

const (
	// SenderUser marks messages typed by the user.
	SenderUser Sender = "user"
	// SenderAssistant marks replies produced by the backend and local
	// failure indicators shown in the assistant's place.
	SenderAssistant Sender = "assistant"
)

// SenderFromIsUser maps the backend's is_user flag to a [Sender].
func SenderFromIsUser(isUser bool) Sender {
	if isUser {
		return SenderUser
	}
	return SenderAssistant
}

const localIDPrefix = "local-"

// MessageID identifies a message in the thread.
//
// Persisted messages carry the server-assigned numeric id in Server.
// Optimistic and error entries created by the client carry a Local id instead;
// the two live in separate fields so a local id can never be mistaken for a
// server one.
type MessageID struct {
	Server int64
	Local  string
}

// ServerMessageID wraps a server-assigned identifier.
func ServerMessageID(id int64) MessageID {
	return MessageID{Server: id}
}

// NewLocalMessageID returns a fresh time-ordered client-side identifier.
func NewLocalMessageID() MessageID {
	v7, err := uuid.NewV7()
	if err != nil {
		return MessageID{Local: localIDPrefix + uuid.NewString()}
	}
	return MessageID{Local: localIDPrefix + v7.String()}
}

// IsLocal reports whether the id was generated on the client.
func (id MessageID) IsLocal() bool {
	return id.Local != ""
}

// Key returns a string usable as a rendering key.
func (id MessageID) Key() string {
	if id.IsLocal() {
		return id.Local
	}
	return "srv-" + strconv.FormatInt(id.Server, 10)
}

// Message is one turn of a conversation as displayed by the client.
type Message struct {
	ID      MessageID
	Text    string
	Sender  Sender
	IsError bool
}
