// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chat-assistant/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// error, keeping the original in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrSessionNotFound, err)
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrNotAuthorized, err)
	case errors.Is(err, adapter.ErrBadRequest), errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %w", ErrRejected, err)
	case errors.Is(err, adapter.ErrInternalServerError), errors.Is(err, adapter.ErrBadGateway):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	case errors.Is(err, adapter.ErrDecodeResponse):
		return fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}

	return fmt.Errorf("%w: %w", ErrConnection, err)
}

// mapLoginError is mapAdapterError with the backend's credential rejections
// (400 and 401) reported as ErrAuthenticationFailed.
func mapLoginError(err error) error {
	if errors.Is(err, adapter.ErrBadRequest) || errors.Is(err, adapter.ErrUnauthorized) {
		return fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}
	return mapAdapterError(err)
}
