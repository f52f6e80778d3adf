// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"
	"net/http/cookiejar"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/publicsuffix"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly, and keeps the
// cookie jar the client was built with so callers can read and seed cookies.
//
// Example usage:
//
//	client, _ := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client

	Jar *cookiejar.Jar
}

// NewHTTPClient creates an HTTPClient with a fresh cookie jar that applies
// the public suffix list, so cookies are scoped the way a browser scopes
// them.
//
// Each call returns an independent client with its own connection pool and
// cookies.
func NewHTTPClient() (*HTTPClient, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	return &HTTPClient{
		Client: resty.New().SetCookieJar(jar),
		Jar:    jar,
	}, nil
}
