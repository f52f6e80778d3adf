// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the body of POST /login/.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthStatus is the response of GET /check-auth/.
type AuthStatus struct {
	IsAuthenticated bool   `json:"is_authenticated"`
	Username        string `json:"username,omitempty"`
}

// Interaction is one persisted turn as returned inside a session detail.
type Interaction struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
	IsUser  bool   `json:"is_user"`
}

// ToMessage converts the wire representation into a thread [Message].
func (i Interaction) ToMessage() Message {
	return Message{
		ID:     ServerMessageID(i.ID),
		Text:   i.Message,
		Sender: SenderFromIsUser(i.IsUser),
	}
}

// SessionDetail is the response of GET /sessions/{id}/.
type SessionDetail struct {
	Session
	Interactions []Interaction `json:"interactions"`
}

// Messages returns the interactions in server order as thread messages.
// An empty history yields an empty, non-nil slice.
func (d SessionDetail) Messages() []Message {
	out := make([]Message, 0, len(d.Interactions))
	for _, ia := range d.Interactions {
		out = append(out, ia.ToMessage())
	}
	return out
}

// ChatRequest is the body of POST / (chat root). A zero SessionID is sent as
// null and asks the backend to open a new session.
type ChatRequest struct {
	Message   string    `json:"message"`
	SessionID SessionID `json:"session_id"`
}

// ChatResponse is the reply of POST /.
type ChatResponse struct {
	SessionID  SessionID `json:"session_id"`
	Summary    string    `json:"summary,omitempty"`
	QuestionID int64     `json:"question_id,omitempty"`
	AnswerID   int64     `json:"answer_id"`
	Answer     string    `json:"answer"`
}

// Reply converts the response into the assistant's thread [Message].
func (r ChatResponse) Reply() Message {
	return Message{
		ID:     ServerMessageID(r.AnswerID),
		Text:   r.Answer,
		Sender: SenderAssistant,
	}
}
