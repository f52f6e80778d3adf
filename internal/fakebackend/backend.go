// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fakebackend is an in-memory implementation of the chat backend's
// REST contract. It authenticates with a session cookie, checks a CSRF
// cookie/header pair on every POST the way Django does, and answers chat
// messages with a canned reply. It backs the end-to-end tests and the
// fakebackend command for running the client locally.
package fakebackend

import (
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-chat-assistant/internal/logger"
	"github.com/MKhiriev/go-chat-assistant/models"
	"github.com/google/uuid"
)

const (
	// SessionCookie carries the authenticated session key.
	SessionCookie = "sessionid"
	// CSRFCookie carries the anti-forgery token.
	CSRFCookie = "csrftoken"
	// CSRFHeader must echo CSRFCookie on every POST.
	CSRFHeader = "X-CSRFToken"
)

// AnswerFunc produces the assistant's reply and the new session summary.
type AnswerFunc func(sessionID models.SessionID, message, summary string) (answer, newSummary string)

// MockAnswer replies the way the backend does in mock mode.
func MockAnswer(sessionID models.SessionID, message, _ string) (string, string) {
	return fmt.Sprintf("This is a mocked response to: '%s'. The backend is running in mock mode.", message),
		fmt.Sprintf("Summary updated for session %s (Mock)", sessionID)
}

type chat struct {
	id           models.SessionID
	owner        string
	seq          int64
	createdAt    time.Time
	summary      string
	deleted      bool
	interactions []models.Interaction
}

// Backend holds users, auth sessions and chats.
type Backend struct {
	mu sync.Mutex

	users    map[string]string
	sessions map[string]string
	chats    map[models.SessionID]*chat

	seq           int64
	interactionID int64
	answer        AnswerFunc
	now           func() time.Time

	failures map[string]int
	calls    map[string]int

	logger *logger.Logger
}

// Option configures a Backend.
type Option func(*Backend)

// WithUser registers a user.
func WithUser(username, password string) Option {
	return func(b *Backend) { b.users[username] = password }
}

// WithAnswer replaces [MockAnswer].
func WithAnswer(fn AnswerFunc) Option {
	return func(b *Backend) { b.answer = fn }
}

// WithClock replaces time.Now for created_at stamps.
func WithClock(now func() time.Time) Option {
	return func(b *Backend) { b.now = now }
}

// New returns an empty backend.
func New(log *logger.Logger, opts ...Option) *Backend {
	b := &Backend{
		users:    make(map[string]string),
		sessions: make(map[string]string),
		chats:    make(map[models.SessionID]*chat),
		answer:   MockAnswer,
		now:      time.Now,
		failures: make(map[string]int),
		calls:    make(map[string]int),
		logger:   log,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// FailNext makes the next call of route answer with status. route is one
// of the Route constants.
func (b *Backend) FailNext(route string, status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[route] = status
}

// Calls returns how many requests reached route.
func (b *Backend) Calls(route string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[route]
}

// SeedSession creates a chat owned by username with the given turns,
// alternating user and assistant starting with the user.
func (b *Backend) SeedSession(username, summary string, turns ...string) models.SessionID {
	b.mu.Lock()
	defer b.mu.Unlock()

	c := b.newChatLocked(username)
	c.summary = summary
	for i, text := range turns {
		b.appendLocked(c, text, i%2 == 0)
	}
	return c.id
}

func (b *Backend) newChatLocked(owner string) *chat {
	b.seq++
	c := &chat{
		id:        models.NewSessionID(uuid.NewString()),
		owner:     owner,
		seq:       b.seq,
		createdAt: b.now().UTC(),
	}
	b.chats[c.id] = c
	return c
}

func (b *Backend) appendLocked(c *chat, text string, isUser bool) models.Interaction {
	b.interactionID++
	ia := models.Interaction{ID: b.interactionID, Message: text, IsUser: isUser}
	c.interactions = append(c.interactions, ia)
	return ia
}

// listLocked returns the live chats of owner, newest first.
func (b *Backend) listLocked(owner string) []models.Session {
	live := make([]*chat, 0)
	for _, c := range b.chats {
		if c.owner == owner && !c.deleted {
			live = append(live, c)
		}
	}
	sort.Slice(live, func(i, j int) bool { return live[i].seq > live[j].seq })

	out := make([]models.Session, 0, len(live))
	for _, c := range live {
		out = append(out, models.Session{ID: c.id, Summary: c.summary, CreatedAt: c.createdAt})
	}
	return out
}

func (b *Backend) ownedLocked(owner string, id models.SessionID, includeDeleted bool) (*chat, bool) {
	c, ok := b.chats[id]
	if !ok || c.owner != owner || (c.deleted && !includeDeleted) {
		return nil, false
	}
	return c, true
}

// takeFailure records a call of route and returns the injected status, if
// any.
func (b *Backend) takeFailure(route string) (int, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.calls[route]++
	status, ok := b.failures[route]
	if ok {
		delete(b.failures, route)
	}
	return status, ok
}

func (b *Backend) userFor(r *http.Request) (string, bool) {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return "", false
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	user, ok := b.sessions[c.Value]
	return user, ok
}
