// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakebackend

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// BasePath is where the chat API is mounted.
const BasePath = "/api/chat"

// Route names accepted by [Backend.FailNext] and [Backend.Calls].
const (
	RouteCheckAuth     = "check-auth"
	RouteLogin         = "login"
	RouteLogout        = "logout"
	RouteSessions      = "sessions"
	RouteSessionDetail = "session-detail"
	RouteSessionDelete = "session-delete"
	RouteChat          = "chat"
)

// Handler returns the backend's router.
func (b *Backend) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(b.withRequestID, b.withLogging)

	router.Route(BasePath, func(r chi.Router) {
		r.Get("/check-auth/", b.route(RouteCheckAuth, b.checkAuth))

		// anonymous, but CSRF-protected
		r.Group(func(r chi.Router) {
			r.Use(b.withCSRF)
			r.Post("/login/", b.route(RouteLogin, b.login))
			r.Post("/logout/", b.route(RouteLogout, b.logout))
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(b.withAuth)
			r.Get("/sessions/", b.route(RouteSessions, b.listSessions))
			r.Get("/sessions/{id}/", b.route(RouteSessionDetail, b.sessionDetail))

			r.With(b.withCSRF).Post("/sessions/{id}/delete/", b.route(RouteSessionDelete, b.deleteSession))
			r.With(b.withCSRF).Post("/", b.route(RouteChat, b.chat))
		})
	})

	return router
}

// route counts calls and applies an injected failure before delegating.
func (b *Backend) route(name string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if status, ok := b.takeFailure(name); ok {
			writeError(w, status, "injected failure")
			return
		}
		next(w, r)
	}
}
