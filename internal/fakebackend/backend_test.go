// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakebackend

import (
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/MKhiriev/go-chat-assistant/internal/logger"
	"github.com/MKhiriev/go-chat-assistant/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClient struct {
	t    *testing.T
	base string
	http *http.Client
}

func newTestServer(t *testing.T, opts ...Option) (*Backend, *testClient) {
	t.Helper()
	b := New(logger.Nop(), append([]Option{WithUser("alice", "secret")}, opts...)...)
	srv := httptest.NewServer(b.Handler())
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return b, &testClient{t: t, base: srv.URL + BasePath, http: &http.Client{Jar: jar}}
}

func (c *testClient) csrf() string {
	u, _ := url.Parse(c.base)
	for _, ck := range c.http.Jar.Cookies(u) {
		if ck.Name == CSRFCookie {
			return ck.Value
		}
	}
	return ""
}

func (c *testClient) do(method, path, body string, withCSRF bool) (*http.Response, map[string]any) {
	c.t.Helper()
	req, err := http.NewRequest(method, c.base+path, strings.NewReader(body))
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")
	if withCSRF {
		req.Header.Set(CSRFHeader, c.csrf())
	}

	resp, err := c.http.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

func (c *testClient) login() {
	c.t.Helper()
	c.do(http.MethodGet, "/check-auth/", "", false)
	resp, _ := c.do(http.MethodPost, "/login/", `{"username":"alice","password":"secret"}`, true)
	require.Equal(c.t, http.StatusOK, resp.StatusCode)
}

func TestCheckAuth_IssuesCSRFCookie(t *testing.T) {
	_, c := newTestServer(t)

	resp, body := c.do(http.MethodGet, "/check-auth/", "", false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["is_authenticated"])
	assert.NotEmpty(t, c.csrf())
	assert.NotEmpty(t, resp.Header.Get(requestIDHeader))
}

func TestLogin_RequiresCSRF(t *testing.T) {
	_, c := newTestServer(t)
	c.do(http.MethodGet, "/check-auth/", "", false)

	resp, body := c.do(http.MethodPost, "/login/", `{"username":"alice","password":"secret"}`, false)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Contains(t, body["detail"], "CSRF")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	_, c := newTestServer(t)
	c.do(http.MethodGet, "/check-auth/", "", false)

	resp, body := c.do(http.MethodPost, "/login/", `{"username":"alice","password":"nope"}`, true)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid Credentials", body["error"])
}

func TestLogin_RotatesCSRFAndAuthenticates(t *testing.T) {
	_, c := newTestServer(t)
	c.do(http.MethodGet, "/check-auth/", "", false)
	before := c.csrf()

	c.login()
	assert.NotEqual(t, before, c.csrf())

	_, body := c.do(http.MethodGet, "/check-auth/", "", false)
	assert.Equal(t, true, body["is_authenticated"])
	assert.Equal(t, "alice", body["username"])
}

func TestSessions_RequireAuth(t *testing.T) {
	_, c := newTestServer(t)

	resp, _ := c.do(http.MethodGet, "/sessions/", "", false)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestChat_NewSessionThenContinue(t *testing.T) {
	b, c := newTestServer(t)
	c.login()

	resp, body := c.do(http.MethodPost, "/", `{"message":"price of forklift X","session_id":null}`, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	id, _ := body["session_id"].(string)
	require.NotEmpty(t, id)
	assert.Contains(t, body["answer"], "price of forklift X")
	assert.Contains(t, body["summary"], "(Mock)")

	resp, _ = c.do(http.MethodPost, "/", `{"message":"and Y?","session_id":"`+id+`"}`, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = c.do(http.MethodGet, "/sessions/"+id+"/", "", false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	interactions, _ := body["interactions"].([]any)
	assert.Len(t, interactions, 4)

	assert.Equal(t, 2, b.Calls(RouteChat))
}

func TestChat_EmptyMessage(t *testing.T) {
	_, c := newTestServer(t)
	c.login()

	resp, body := c.do(http.MethodPost, "/", `{"message":"","session_id":null}`, true)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Message is required", body["error"])
}

func TestChat_UnknownSession(t *testing.T) {
	_, c := newTestServer(t)
	c.login()

	resp, _ := c.do(http.MethodPost, "/", `{"message":"hi","session_id":"missing"}`, true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSessions_NewestFirstAndDelete(t *testing.T) {
	b, c := newTestServer(t)
	first := b.SeedSession("alice", "first", "q", "a")
	second := b.SeedSession("alice", "second")
	b.SeedSession("bob", "not yours")
	c.login()

	req, _ := http.NewRequest(http.MethodGet, c.base+"/sessions/", nil)
	resp, err := c.http.Do(req)
	require.NoError(t, err)
	var sessions []models.Session
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sessions))
	resp.Body.Close()

	require.Len(t, sessions, 2)
	assert.Equal(t, second, sessions[0].ID)
	assert.Equal(t, first, sessions[1].ID)

	resp2, _ := c.do(http.MethodPost, "/sessions/"+first.String()+"/delete/", "", true)
	assert.Equal(t, http.StatusOK, resp2.StatusCode)

	resp3, _ := c.do(http.MethodGet, "/sessions/"+first.String()+"/", "", false)
	assert.Equal(t, http.StatusNotFound, resp3.StatusCode)
}

func TestLogout_EndsSession(t *testing.T) {
	_, c := newTestServer(t)
	c.login()

	resp, _ := c.do(http.MethodPost, "/logout/", "", true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	_, body := c.do(http.MethodGet, "/check-auth/", "", false)
	assert.Equal(t, false, body["is_authenticated"])
}

func TestFailNext_AppliesOnce(t *testing.T) {
	b, c := newTestServer(t)
	b.FailNext(RouteCheckAuth, http.StatusBadGateway)

	resp, _ := c.do(http.MethodGet, "/check-auth/", "", false)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	resp, _ = c.do(http.MethodGet, "/check-auth/", "", false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, b.Calls(RouteCheckAuth))
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, "abc", prefix("abc", 30))
	assert.Equal(t, "пр", prefix("привет", 2))
}
