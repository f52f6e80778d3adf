// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"strings"
	"time"
)

// FakeBackend configures the in-memory development backend.
type FakeBackend struct {
	// HTTPAddress is the listen address.
	// Env: FAKE_BACKEND_ADDRESS
	HTTPAddress string `env:"FAKE_BACKEND_ADDRESS" envDefault:":8000"`

	// Users maps usernames to passwords, written as "alice:secret,bob:pw".
	// Env: FAKE_BACKEND_USERS
	Users map[string]string `env:"FAKE_BACKEND_USERS" envDefault:"alice:secret"`

	// ShutdownTimeout bounds the graceful shutdown.
	// Env: FAKE_BACKEND_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"FAKE_BACKEND_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// GetFakeBackendConfig reads the fake backend settings from the environment
// (after .env) and then from args. Flags override the environment:
//
//	-a listen address
//	-users comma-separated username:password pairs
func GetFakeBackendConfig(args []string) (*FakeBackend, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	cfg := &FakeBackend{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("fake-backend", flag.ContinueOnError)
	address := fs.String("a", "", "Listen address")
	users := fs.String("users", "", "Comma-separated username:password pairs")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *address != "" {
		cfg.HTTPAddress = *address
	}
	if *users != "" {
		parsed, err := parseUsers(*users)
		if err != nil {
			return nil, err
		}
		cfg.Users = parsed
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseUsers(s string) (map[string]string, error) {
	users := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		name, password, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || name == "" || password == "" {
			return nil, fmt.Errorf("%w: bad user %q", ErrInvalidServerConfigs, pair)
		}
		users[name] = password
	}
	return users, nil
}

func (cfg *FakeBackend) validate() error {
	if strings.TrimSpace(cfg.HTTPAddress) == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidServerConfigs)
	}
	if len(cfg.Users) == 0 {
		return fmt.Errorf("%w: no users", ErrInvalidServerConfigs)
	}
	if cfg.ShutdownTimeout < 0 {
		return ErrNegativeDuration
	}
	return nil
}
