// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net/url"
	"strings"
	"time"
)

// URLValue holds a validated absolute http(s) URL.
// It implements the flag.Value interface.
type URLValue struct {
	URL string
}

// ParseFlags parses the client configuration flags from args.
//
// Flags:
//
//	-a backend API root URL (e.g. http://localhost:8000/api/chat)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-csrf-cookie anti-forgery cookie name
//	-csrf-header anti-forgery request header name
//	-d sqlite DSN of the cookie store
//	-refresh-interval session list refresh interval (e.g., "1m"), 0 disables
//	-log-file client log file path
//	-log-level client log level
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var baseURL URLValue
	var requestTimeout, refreshInterval time.Duration
	var csrfCookie, csrfHeader string
	var dsn string
	var logFile, logLevel string
	var jsonConfigPath string

	fs := flag.NewFlagSet("chat-client", flag.ContinueOnError)
	fs.Var(&baseURL, "a", "Backend API root URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&csrfCookie, "csrf-cookie", "", "CSRF cookie name")
	fs.StringVar(&csrfHeader, "csrf-header", "", "CSRF header name")
	fs.StringVar(&dsn, "d", "", "Cookie store sqlite DSN")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Session list refresh interval")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        baseURL.String(),
			RequestTimeout: requestTimeout,
			CSRFCookie:     csrfCookie,
			CSRFHeader:     csrfHeader,
		},
		Storage:      Storage{DB: DB{DSN: dsn}},
		Workers:      Workers{RefreshInterval: refreshInterval},
		Log:          Log{FilePath: logFile, Level: logLevel},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns the URL or an empty string when unset.
func (u *URLValue) String() string {
	return u.URL
}

// Set validates s as an absolute http or https URL and stores it without a
// trailing slash.
func (u *URLValue) Set(s string) error {
	parsed, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return err
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("need an http or https URL")
	}
	if parsed.Host == "" {
		return errors.New("URL must include a host")
	}

	u.URL = strings.TrimRight(parsed.String(), "/")
	return nil
}
