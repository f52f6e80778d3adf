// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists client-side state in a local SQLite database.
//
// The chat client keeps no conversation data locally; the backend is the
// sole authority over sessions and messages. What the client does keep is
// the backend's cookies, so that a restart resumes the authenticated
// session the way a browser would.
package store

import (
	"context"
	"net/http"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CookieRepository stores the cookie set of one backend origin.
type CookieRepository interface {
	// Save replaces the stored cookies of origin with cookies.
	Save(ctx context.Context, origin string, cookies []*http.Cookie) error
	// Load returns the stored cookies of origin, or an empty slice.
	Load(ctx context.Context, origin string) ([]*http.Cookie, error)
	// Clear removes every stored cookie of origin.
	Clear(ctx context.Context, origin string) error
}
