package tui

import "github.com/MKhiriev/go-chat-assistant/internal/state"

// actionMsg carries the outcome of a finished effect back into Update.
type actionMsg struct {
	action state.Action
}

// RefreshRequested asks the UI to re-fetch the session list. It is sent
// from outside the program by [TUI.Refresh].
type RefreshRequested struct{}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearNoticeMsg struct{}
