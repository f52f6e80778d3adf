// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the client.
// It defines the Worker interface, a Workers aggregate that starts several
// workers in a unified way, and [PeriodicJob], the ticker-driven worker the
// client uses to refresh the session list.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns without waiting for it: implementations
// spawn their own goroutines and stop them when ctx is cancelled or Stop is
// called.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
