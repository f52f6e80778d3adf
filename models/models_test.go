// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want SessionID
	}{
		{name: "uuid string", in: `"5f0c7c3e-8a51-4f7e-9d83-2b0c2a7f1e11"`, want: NewSessionID("5f0c7c3e-8a51-4f7e-9d83-2b0c2a7f1e11")},
		{name: "numeric string", in: `"42"`, want: NewSessionID("42")},
		{name: "number", in: `42`, want: SessionID{value: "42", numeric: true}},
		{name: "null", in: `null`, want: SessionID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id SessionID
			require.NoError(t, json.Unmarshal([]byte(tt.in), &id))
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestSessionID_UnmarshalJSON_Invalid(t *testing.T) {
	var id SessionID
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &id))
}

func TestChatRequest_NullSessionWhenUnselected(t *testing.T) {
	b, err := json.Marshal(ChatRequest{Message: "hi"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"hi","session_id":null}`, string(b))
}

func TestChatRequest_KeepsSessionType(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "number", in: `{"session_id":7}`, want: `{"message":"hi","session_id":7}`},
		{name: "uuid", in: `{"session_id":"ab-cd"}`, want: `{"message":"hi","session_id":"ab-cd"}`},
		{name: "digits as string", in: `{"session_id":"42"}`, want: `{"message":"hi","session_id":"42"}`},
		{name: "leading zeros", in: `{"session_id":"007"}`, want: `{"message":"hi","session_id":"007"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp ChatResponse
			require.NoError(t, json.Unmarshal([]byte(tt.in), &resp))

			b, err := json.Marshal(ChatRequest{Message: "hi", SessionID: resp.SessionID})
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(b))
		})
	}
}

func TestNewSessionID_SentAsString(t *testing.T) {
	b, err := json.Marshal(ChatRequest{Message: "hi", SessionID: NewSessionID("7")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"hi","session_id":"7"}`, string(b))
}

func TestSession_Title(t *testing.T) {
	assert.Equal(t, "Forklift prices", Session{ID: NewSessionID("1"), Summary: "Forklift prices"}.Title())
	assert.Equal(t, "Chat 42", Session{ID: NewSessionID("42")}.Title())
}

func TestSessionDetail_Messages(t *testing.T) {
	var d SessionDetail
	body := `{"id":"42","interactions":[{"id":1,"message":"hello","is_user":true},{"id":2,"message":"hi!","is_user":false}]}`
	require.NoError(t, json.Unmarshal([]byte(body), &d))

	msgs := d.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, Message{ID: ServerMessageID(1), Text: "hello", Sender: SenderUser}, msgs[0])
	assert.Equal(t, Message{ID: ServerMessageID(2), Text: "hi!", Sender: SenderAssistant}, msgs[1])
}

func TestSessionDetail_EmptyHistory(t *testing.T) {
	var d SessionDetail
	require.NoError(t, json.Unmarshal([]byte(`{"interactions":[]}`), &d))

	msgs := d.Messages()
	assert.NotNil(t, msgs)
	assert.Empty(t, msgs)
}

func TestNewLocalMessageID_Unique(t *testing.T) {
	a := NewLocalMessageID()
	b := NewLocalMessageID()

	assert.True(t, a.IsLocal())
	assert.True(t, strings.HasPrefix(a.Key(), localIDPrefix))
	assert.NotEqual(t, a, b)
	assert.Zero(t, a.Server)
}

func TestMessageID_KeysDoNotCollide(t *testing.T) {
	srv := ServerMessageID(99)
	assert.False(t, srv.IsLocal())
	assert.Equal(t, "srv-99", srv.Key())
	assert.NotEqual(t, srv.Key(), NewLocalMessageID().Key())
}

func TestNewAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", " ", "abc")
	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc", info.BuildCommit())
}
