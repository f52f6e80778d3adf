// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFakeBackendConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, name := range []string{"FAKE_BACKEND_ADDRESS", "FAKE_BACKEND_USERS", "FAKE_BACKEND_SHUTDOWN_TIMEOUT"} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}

	cfg, err := GetFakeBackendConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.HTTPAddress)
	assert.Equal(t, map[string]string{"alice": "secret"}, cfg.Users)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestGetFakeBackendConfig_EnvAndFlags(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FAKE_BACKEND_ADDRESS", ":9000")
	t.Setenv("FAKE_BACKEND_USERS", "bob:pw,carol:pw2")

	cfg, err := GetFakeBackendConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.HTTPAddress)
	assert.Equal(t, map[string]string{"bob": "pw", "carol": "pw2"}, cfg.Users)

	cfg, err = GetFakeBackendConfig([]string{"-a", "127.0.0.1:8080", "-users", "dave:x"})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTPAddress)
	assert.Equal(t, map[string]string{"dave": "x"}, cfg.Users)
}

func TestGetFakeBackendConfig_BadUsers(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := GetFakeBackendConfig([]string{"-users", "nopassword"})
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

func TestFakeBackend_Validate(t *testing.T) {
	assert.ErrorIs(t, (&FakeBackend{Users: map[string]string{"a": "b"}}).validate(), ErrInvalidServerConfigs)
	assert.ErrorIs(t, (&FakeBackend{HTTPAddress: ":1"}).validate(), ErrInvalidServerConfigs)
	assert.ErrorIs(t, (&FakeBackend{HTTPAddress: ":1", Users: map[string]string{"a": "b"}, ShutdownTimeout: -1}).validate(), ErrNegativeDuration)
}
