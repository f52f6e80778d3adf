// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"github.com/MKhiriev/go-chat-assistant/models"
)

// Action describes one thing that happened: a user intent or the outcome of
// a backend call.
type Action interface {
	isAction()
}

// AuthChecked is the outcome of the initial authentication check.
type AuthChecked struct {
	Status models.AuthStatus
	Err    error
}

// LoginRequested marks a login form submission in flight.
type LoginRequested struct{}

type LoginSucceeded struct {
	Username string
}

// LoginFailed carries the alert text shown to the user.
type LoginFailed struct {
	Err    error
	Reason string
}

type LogoutSucceeded struct{}

type LogoutFailed struct {
	Err    error
	Reason string
}

// SessionsLoaded is the outcome of a session list fetch issued under Epoch.
type SessionsLoaded struct {
	Epoch    uint64
	Sessions []models.Session
	Err      error
	Reason   string
}

// SessionSelected switches the thread to ID.
type SessionSelected struct {
	ID models.SessionID
}

// HistoryLoaded is the outcome of a session detail fetch issued for ID
// under selection generation Gen.
type HistoryLoaded struct {
	ID       models.SessionID
	Gen      uint64
	Messages []models.Message
	Err      error
	Reason   string
}

// NewChatStarted clears the selection so the next message opens a session.
type NewChatStarted struct{}

// MessageSent appends the optimistic user message and clears the input.
type MessageSent struct {
	Message models.Message
}

// ReplyReceived is a successful chat response. NewSession is set when the
// message was sent without a selected session.
type ReplyReceived struct {
	Gen        uint64
	NewSession bool
	Response   models.ChatResponse
}

// SendFailed carries the local error message shown in place of a reply.
type SendFailed struct {
	Gen    uint64
	Err    error
	Notice models.Message
}

// DeleteRequested opens the confirmation prompt for ID.
type DeleteRequested struct {
	ID models.SessionID
}

// DeleteResolved closes the confirmation prompt, whatever the answer.
type DeleteResolved struct{}

// SessionDeleted is the outcome of a delete call.
type SessionDeleted struct {
	ID  models.SessionID
	Err error
}

type AlertDismissed struct{}

type InputChanged struct {
	Text string
}

func (AuthChecked) isAction()     {}
func (LoginRequested) isAction()  {}
func (LoginSucceeded) isAction()  {}
func (LoginFailed) isAction()     {}
func (LogoutSucceeded) isAction() {}
func (LogoutFailed) isAction()    {}
func (SessionsLoaded) isAction()  {}
func (SessionSelected) isAction() {}
func (HistoryLoaded) isAction()   {}
func (NewChatStarted) isAction()  {}
func (MessageSent) isAction()     {}
func (ReplyReceived) isAction()   {}
func (SendFailed) isAction()      {}
func (DeleteRequested) isAction() {}
func (DeleteResolved) isAction()  {}
func (SessionDeleted) isAction()  {}
func (AlertDismissed) isAction()  {}
func (InputChanged) isAction()    {}
