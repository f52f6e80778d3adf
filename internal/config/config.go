// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the chat
// client. It is populated by merging built-in defaults, environment variables
// (optionally seeded from a .env file), command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the backend address and transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local cookie store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds client log file settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds settings of the REST transport.
type Adapter struct {
	// BaseURL is the chat API root, e.g. "http://localhost:8000/api/chat".
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single request. Zero keeps the HTTP client
	// default (no timeout).
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CSRFCookie is the name of the client-readable cookie holding the
	// anti-forgery token.
	// Env: ADAPTER_CSRF_COOKIE
	CSRFCookie string `env:"CSRF_COOKIE"`

	// CSRFHeader is the request header the token is copied into on every
	// mutating request.
	// Env: ADAPTER_CSRF_HEADER
	CSRFHeader string `env:"CSRF_HEADER"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the sqlite cookie store settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the sqlite connection settings.
type DB struct {
	// DSN is the sqlite file path. ":memory:" keeps cookies for the lifetime
	// of the process only.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds background job settings.
type Workers struct {
	// RefreshInterval is how often the session list is re-fetched while
	// logged in. Zero disables the job.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Log holds client logging settings.
type Log struct {
	// FilePath is the rotated JSON log file.
	// Env: LOG_FILE
	FilePath string `env:"FILE"`

	// Level is a zerolog level name (debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Defaults used when no source sets a value.
const (
	DefaultBaseURL    = "http://localhost:8000/api/chat"
	DefaultCSRFCookie = "csrftoken"
	DefaultCSRFHeader = "X-CSRFToken"
	DefaultDSN        = "chat-client.db"
	DefaultLogFile    = "logs/chat-client.log"
	DefaultLogLevel   = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:    DefaultBaseURL,
			CSRFCookie: DefaultCSRFCookie,
			CSRFHeader: DefaultCSRFHeader,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Log:     Log{FilePath: DefaultLogFile, Level: DefaultLogLevel},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// sources in the following priority order (later non-zero fields win):
//  1. Built-in defaults
//  2. Environment variables (after loading .env, if present)
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(".env").
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
