// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrEmptyCredentials     = errors.New("username and password are required")
	ErrAuthenticationFailed = errors.New("invalid username or password")
	ErrNotAuthorized        = errors.New("not authorized")
	ErrSessionNotFound      = errors.New("session not found")
	ErrRejected             = errors.New("request rejected")
	ErrServerUnavailable    = errors.New("server error")
	ErrUnexpectedResponse   = errors.New("unexpected response")
	ErrConnection           = errors.New("connection error")
)

// Texts shown to the user.
const (
	textAuthError       = "authentication error"
	textConnectionError = "connection error"
	textSessionsFailed  = "could not load sessions"
	textHistoryFailed   = "could not load session"
	textLogoutFailed    = "logout failed"
)

// describe returns the user-facing text of a mapped service error.
func describe(err error) string {
	for _, known := range []error{
		ErrEmptyCredentials,
		ErrAuthenticationFailed,
		ErrNotAuthorized,
		ErrSessionNotFound,
		ErrRejected,
		ErrServerUnavailable,
		ErrUnexpectedResponse,
		ErrConnection,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return textConnectionError
}
