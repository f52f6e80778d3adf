// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"fmt"
	"sync"
	"testing"

	"github.com/MKhiriev/go-chat-assistant/models"
	"github.com/stretchr/testify/assert"
)

func TestStore_DispatchReturnsPrevAndNext(t *testing.T) {
	st := NewStore(Initial())

	prev, next := st.Dispatch(InputChanged{Text: "hello"})
	assert.Empty(t, prev.Input)
	assert.Equal(t, "hello", next.Input)
	assert.Equal(t, next, st.State())
}

func TestStore_ConcurrentDispatchIsSerialised(t *testing.T) {
	st := NewStore(Initial())

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			st.Dispatch(SessionSelected{ID: models.NewSessionID("s")})
			st.Dispatch(InputChanged{Text: fmt.Sprint(i)})
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(50), st.State().SelectionGen)
}
