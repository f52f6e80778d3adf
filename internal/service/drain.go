// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "context"

// Drain runs effects one after another on the calling goroutine, applying
// each outcome and queueing the effects it triggers, until none are left.
// It returns the number of effects run.
func Drain(ctx context.Context, sync Synchronizer, effects []Effect) int {
	queue := append([]Effect(nil), effects...)
	ran := 0

	for len(queue) > 0 {
		effect := queue[0]
		queue = queue[1:]
		if effect == nil {
			continue
		}

		ran++
		queue = append(queue, sync.Apply(ctx, effect())...)
	}

	return ran
}
