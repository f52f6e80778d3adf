// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-chat-assistant/internal/adapter"
	"github.com/MKhiriev/go-chat-assistant/internal/logger"
	"github.com/MKhiriev/go-chat-assistant/internal/store"
)

// ClientServices groups the services the client front end talks to.
type ClientServices struct {
	Synchronizer Synchronizer
}

// NewClientServices wires the services over chatAdapter. storages may be nil
// to disable cookie persistence.
func NewClientServices(chatAdapter adapter.ChatAdapter, storages *store.ClientStorages, origin string, log *logger.Logger) *ClientServices {
	var cookies store.CookieRepository
	if storages != nil {
		cookies = storages.CookieRepository
	}

	return &ClientServices{
		Synchronizer: NewSynchronizer(chatAdapter, cookies, origin, log.GetChildLogger()),
	}
}
