// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

// ErrNilServices is returned by [New] when no services are supplied.
var ErrNilServices = errors.New("tui: services are required")
