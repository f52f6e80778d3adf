// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the chat client and
// the chat backend.
//
// The primary abstraction is [ChatAdapter], which decouples the service layer
// from the REST protocol. The package ships a resty implementation
// ([NewHTTPChatAdapter]) that keeps the backend's session cookie in a cookie
// jar and copies the CSRF token cookie into a request header on every
// mutating call.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling.
package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-chat-assistant/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/chat_adapter_mock.go -package=mock

// ChatAdapter defines the request/response calls the client makes to the
// chat backend. Every method is a single round trip; none retries.
type ChatAdapter interface {
	// CheckAuth calls GET /check-auth/. The call also makes the backend
	// issue the CSRF cookie.
	CheckAuth(ctx context.Context) (models.AuthStatus, error)

	// Login posts credentials to POST /login/. On success the backend sets
	// the session cookie, which the adapter keeps for later calls.
	Login(ctx context.Context, creds models.Credentials) error

	// Logout posts to POST /logout/.
	Logout(ctx context.Context) error

	// ListSessions fetches GET /sessions/ in server order.
	ListSessions(ctx context.Context) ([]models.Session, error)

	// GetSession fetches GET /sessions/{id}/ including its interactions.
	GetSession(ctx context.Context, id models.SessionID) (models.SessionDetail, error)

	// DeleteSession posts to POST /sessions/{id}/delete/.
	DeleteSession(ctx context.Context, id models.SessionID) error

	// SendMessage posts a chat message to POST / and returns the reply.
	SendMessage(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error)

	// Cookies returns the cookies the jar holds for the backend.
	Cookies() []*http.Cookie

	// SetCookies seeds the jar with cookies restored from local storage.
	SetCookies(cookies []*http.Cookie)
}
