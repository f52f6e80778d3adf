// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakebackend

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-chat-assistant/internal/logger"
	"github.com/MKhiriev/go-chat-assistant/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const summaryPrefixRunes = 30

func newToken() string {
	return uuid.NewString()
}

func setCSRFCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{Name: CSRFCookie, Value: token, Path: "/", SameSite: http.SameSiteLaxMode})
}

func (b *Backend) checkAuth(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(CSRFCookie); err != nil || c.Value == "" {
		setCSRFCookie(w, newToken())
	}

	user, ok := b.userFor(r)
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"is_authenticated": false, "username": nil})
		return
	}
	writeJSON(w, http.StatusOK, models.AuthStatus{IsAuthenticated: true, Username: user})
}

func (b *Backend) login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Credentials")
		return
	}

	b.mu.Lock()
	password, ok := b.users[creds.Username]
	if !ok || password != creds.Password {
		b.mu.Unlock()
		writeError(w, http.StatusBadRequest, "Invalid Credentials")
		return
	}
	key := newToken()
	b.sessions[key] = creds.Username
	b.mu.Unlock()

	http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: key, Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode})
	// the token rotates on login
	setCSRFCookie(w, newToken())

	logger.FromRequest(r).Info().Str("username", creds.Username).Msg("user logged in")
	writeJSON(w, http.StatusOK, map[string]string{"username": creds.Username})
}

func (b *Backend) logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(SessionCookie); err == nil {
		b.mu.Lock()
		delete(b.sessions, c.Value)
		b.mu.Unlock()
	}

	http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: "", Path: "/", MaxAge: -1})
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func (b *Backend) listSessions(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	b.mu.Lock()
	sessions := b.listLocked(user)
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, sessions)
}

func (b *Backend) sessionDetail(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	id := models.NewSessionID(chi.URLParam(r, "id"))

	b.mu.Lock()
	c, ok := b.ownedLocked(user, id, false)
	var detail models.SessionDetail
	if ok {
		detail = models.SessionDetail{
			Session:      models.Session{ID: c.id, Summary: c.summary, CreatedAt: c.createdAt},
			Interactions: append([]models.Interaction{}, c.interactions...),
		}
	}
	b.mu.Unlock()

	if !ok {
		writeDetail(w, http.StatusNotFound, "No AIChatSession matches the given query.")
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (b *Backend) deleteSession(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	id := models.NewSessionID(chi.URLParam(r, "id"))

	b.mu.Lock()
	c, ok := b.ownedLocked(user, id, true)
	if ok {
		c.deleted = true
	}
	b.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Session deleted"})
}

func (b *Backend) chat(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		writeError(w, http.StatusBadRequest, "Message is required")
		return
	}

	b.mu.Lock()
	var c *chat
	if !req.SessionID.IsZero() {
		var ok bool
		if c, ok = b.ownedLocked(user, req.SessionID, false); !ok {
			b.mu.Unlock()
			writeError(w, http.StatusNotFound, "Session not found")
			return
		}
	} else {
		c = b.newChatLocked(user)
		c.summary = "New conversation started: " + prefix(req.Message, summaryPrefixRunes) + "..."
	}

	question := b.appendLocked(c, req.Message, true)
	answerText, summary := b.answer(c.id, req.Message, c.summary)
	if summary != "" {
		c.summary = summary
	}
	answer := b.appendLocked(c, answerText, false)

	resp := models.ChatResponse{
		SessionID:  c.id,
		Summary:    c.summary,
		QuestionID: question.ID,
		AnswerID:   answer.ID,
		Answer:     answer.Message,
	}
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, resp)
}

func prefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
