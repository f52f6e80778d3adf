// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-chat-assistant/internal/config"
	"github.com/MKhiriev/go-chat-assistant/internal/logger"
	"github.com/MKhiriev/go-chat-assistant/internal/utils"
	"github.com/MKhiriev/go-chat-assistant/models"
	"github.com/go-resty/resty/v2"
)

const requestIDHeader = "X-Request-ID"

type httpChatAdapter struct {
	client *utils.HTTPClient

	baseURL    *url.URL
	csrfCookie string
	csrfHeader string

	logger *logger.Logger
}

// NewHTTPChatAdapter constructs the resty implementation of [ChatAdapter].
// The base URL is normalised, the client gets its own cookie jar, and a
// request hook adds the request id and, for mutating methods, the CSRF
// header and Referer the backend expects.
//
// Returns an error if cfg.BaseURL is empty or is not an absolute http(s) URL.
func NewHTTPChatAdapter(cfg config.ClientAdapter, log *logger.Logger) (ChatAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client, err := utils.NewHTTPClient()
	if err != nil {
		return nil, err
	}

	client.SetBaseURL(baseURL.String())
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	a := &httpChatAdapter{
		client:     client,
		baseURL:    baseURL,
		csrfCookie: cfg.CSRFCookie,
		csrfHeader: cfg.CSRFHeader,
		logger:     log,
	}
	client.OnBeforeRequest(a.beforeRequest)
	client.OnAfterResponse(a.afterResponse)

	return a, nil
}

func normalizeBaseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty address")
	}

	u, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("address must include http(s) scheme and host")
	}

	return u, nil
}

func (h *httpChatAdapter) beforeRequest(_ *resty.Client, r *resty.Request) error {
	r.SetHeader(requestIDHeader, utils.NewRequestID())

	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return nil
	}

	if token := h.cookieValue(h.csrfCookie); token != "" {
		r.SetHeader(h.csrfHeader, token)
	}
	r.SetHeader("Referer", h.baseURL.String()+"/")

	return nil
}

func (h *httpChatAdapter) afterResponse(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Str("request_id", resp.Request.Header.Get(requestIDHeader)).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("backend call")
	return nil
}

func (h *httpChatAdapter) cookieValue(name string) string {
	for _, c := range h.client.Jar.Cookies(h.baseURL) {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// CheckAuth implements [ChatAdapter]. It GETs /check-auth/ and decodes the
// authentication flag and username.
func (h *httpChatAdapter) CheckAuth(ctx context.Context) (models.AuthStatus, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/check-auth/")
	if err != nil {
		return models.AuthStatus{}, fmt.Errorf("check auth request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthStatus{}, err
	}

	var status models.AuthStatus
	if err = decode(resp, &status); err != nil {
		return models.AuthStatus{}, err
	}
	return status, nil
}

// Login implements [ChatAdapter]. Invalid credentials surface as
// [ErrBadRequest] or [ErrUnauthorized] depending on the backend.
func (h *httpChatAdapter) Login(ctx context.Context, creds models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/login/")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}

	return mapHTTPError(resp)
}

// Logout implements [ChatAdapter].
func (h *httpChatAdapter) Logout(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Post("/logout/")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListSessions implements [ChatAdapter]. The backend order (newest first) is
// preserved.
func (h *httpChatAdapter) ListSessions(ctx context.Context) ([]models.Session, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/sessions/")
	if err != nil {
		return nil, fmt.Errorf("list sessions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	sessions := make([]models.Session, 0)
	if err = decode(resp, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// GetSession implements [ChatAdapter].
func (h *httpChatAdapter) GetSession(ctx context.Context, id models.SessionID) (models.SessionDetail, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id.String()).
		Get("/sessions/{id}/")
	if err != nil {
		return models.SessionDetail{}, fmt.Errorf("get session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionDetail{}, err
	}

	var detail models.SessionDetail
	if err = decode(resp, &detail); err != nil {
		return models.SessionDetail{}, err
	}
	return detail, nil
}

// DeleteSession implements [ChatAdapter].
func (h *httpChatAdapter) DeleteSession(ctx context.Context, id models.SessionID) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id.String()).
		Post("/sessions/{id}/delete/")
	if err != nil {
		return fmt.Errorf("delete session request: %w", err)
	}

	return mapHTTPError(resp)
}

// SendMessage implements [ChatAdapter]. A zero req.SessionID is sent as JSON
// null, which asks the backend to open a new session.
func (h *httpChatAdapter) SendMessage(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/")
	if err != nil {
		return models.ChatResponse{}, fmt.Errorf("chat request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChatResponse{}, err
	}

	var chat models.ChatResponse
	if err = decode(resp, &chat); err != nil {
		return models.ChatResponse{}, err
	}
	return chat, nil
}

// Cookies implements [ChatAdapter].
func (h *httpChatAdapter) Cookies() []*http.Cookie {
	return h.client.Jar.Cookies(h.baseURL)
}

// SetCookies implements [ChatAdapter]. Cookies without a path are scoped to
// the whole host, the way the backend issues them.
func (h *httpChatAdapter) SetCookies(cookies []*http.Cookie) {
	scoped := make([]*http.Cookie, 0, len(cookies))
	for _, c := range cookies {
		if c == nil {
			continue
		}
		cp := *c
		if cp.Path == "" {
			cp.Path = "/"
		}
		scoped = append(scoped, &cp)
	}
	h.client.Jar.SetCookies(h.baseURL, scoped)
}

func decode(resp *resty.Response, v any) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}
	return nil
}
