// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-chat-assistant/internal/config"
	"github.com/MKhiriev/go-chat-assistant/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientStorages_FileSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "client.db")
	cfg := config.ClientStorage{DB: config.ClientDB{DSN: dsn}}

	s1, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s1.CookieRepository.Save(ctx, testOrigin, []*http.Cookie{
		{Name: "sessionid", Value: "abc"},
	}))
	require.NoError(t, s1.Close())

	s2, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer s2.Close()

	cookies, err := s2.CookieRepository.Load(ctx, testOrigin)
	require.NoError(t, err)
	require.Len(t, cookies, 1)
	assert.Equal(t, "abc", cookies[0].Value)

	other, err := s2.CookieRepository.Load(ctx, "http://elsewhere")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestNewClientStorages_InMemory(t *testing.T) {
	ctx := context.Background()
	s, err := NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: InMemoryDSN}}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	repo := s.CookieRepository
	require.NoError(t, repo.Save(ctx, testOrigin, []*http.Cookie{{Name: "a", Value: "1"}, {Name: "b", Value: "2"}}))
	require.NoError(t, repo.Save(ctx, testOrigin, []*http.Cookie{{Name: "b", Value: "3"}}))

	cookies, err := repo.Load(ctx, testOrigin)
	require.NoError(t, err)
	require.Len(t, cookies, 1)
	assert.Equal(t, "b", cookies[0].Name)
	assert.Equal(t, "3", cookies[0].Value)

	require.NoError(t, repo.Clear(ctx, testOrigin))
	cookies, err = repo.Load(ctx, testOrigin)
	require.NoError(t, err)
	assert.Empty(t, cookies)
}

func TestClientStorages_CloseNil(t *testing.T) {
	var s *ClientStorages
	assert.NoError(t, s.Close())
}
