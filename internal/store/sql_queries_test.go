// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDeleteCookiesQuery(t *testing.T) {
	query, args, err := buildDeleteCookiesQuery("http://localhost:8000")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM cookies WHERE origin = ?", query)
	assert.Equal(t, []any{"http://localhost:8000"}, args)
}

func TestBuildSelectCookiesQuery(t *testing.T) {
	query, args, err := buildSelectCookiesQuery("o")
	require.NoError(t, err)
	assert.Equal(t, "SELECT name, value FROM cookies WHERE origin = ? ORDER BY name", query)
	assert.Equal(t, []any{"o"}, args)
}

func TestBuildInsertCookiesQuery(t *testing.T) {
	tests := []struct {
		name     string
		cookies  []*http.Cookie
		wantOK   bool
		wantArgs []any
	}{
		{
			name:    "no cookies",
			cookies: nil,
		},
		{
			name:    "only unnamed cookies",
			cookies: []*http.Cookie{nil, {Value: "x"}},
		},
		{
			name: "two cookies",
			cookies: []*http.Cookie{
				{Name: "csrftoken", Value: "t"},
				{Name: "sessionid", Value: "s"},
			},
			wantOK:   true,
			wantArgs: []any{"o", "csrftoken", "t", "o", "sessionid", "s"},
		},
		{
			name: "duplicate names keep the first",
			cookies: []*http.Cookie{
				{Name: "csrftoken", Value: "t"},
				{Name: "sessionid", Value: "s"},
				{Name: "csrftoken", Value: "older"},
			},
			wantOK:   true,
			wantArgs: []any{"o", "csrftoken", "t", "o", "sessionid", "s"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, ok, err := buildInsertCookiesQuery("o", tt.cookies)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Empty(t, query)
				return
			}
			assert.Contains(t, query, "INSERT INTO cookies (origin,name,value) VALUES (?,?,?),(?,?,?)")
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
