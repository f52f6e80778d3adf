// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-chat-assistant/internal/adapter"
	"github.com/MKhiriev/go-chat-assistant/internal/logger"
	"github.com/MKhiriev/go-chat-assistant/internal/state"
	"github.com/MKhiriev/go-chat-assistant/internal/store"
	"github.com/MKhiriev/go-chat-assistant/models"
)

type sessionSynchronizer struct {
	adapter adapter.ChatAdapter
	cookies store.CookieRepository
	origin  string

	store  *state.Store
	logger *logger.Logger
}

// NewSynchronizer returns a [Synchronizer] over chatAdapter. cookies may be
// nil, in which case the backend cookies live only as long as the process;
// otherwise they are stored under origin.
func NewSynchronizer(chatAdapter adapter.ChatAdapter, cookies store.CookieRepository, origin string, log *logger.Logger) Synchronizer {
	return &sessionSynchronizer{
		adapter: chatAdapter,
		cookies: cookies,
		origin:  origin,
		store:   state.NewStore(state.Initial()),
		logger:  log,
	}
}

func (s *sessionSynchronizer) State() state.State {
	return s.store.State()
}

func (s *sessionSynchronizer) Apply(ctx context.Context, action state.Action) []Effect {
	s.logOutcome(action)

	prev, next := s.store.Dispatch(action)

	var effects []Effect
	if next.Auth == state.AuthAuthenticated && next.Epoch != prev.Epoch {
		effects = append(effects, s.refreshEffect(ctx, next.Epoch))
	}
	if reply, ok := action.(state.ReplyReceived); ok && reply.NewSession && next.Auth == state.AuthAuthenticated {
		effects = append(effects, s.refreshEffect(ctx, next.Epoch))
	}

	return effects
}

func (s *sessionSynchronizer) logOutcome(action state.Action) {
	switch a := action.(type) {
	case state.AuthChecked:
		if a.Err != nil {
			s.logger.Warn().Err(a.Err).Msg("authentication check failed")
		}
	case state.LoginFailed:
		s.logger.Warn().Err(a.Err).Msg("login failed")
	case state.LogoutFailed:
		s.logger.Err(a.Err).Msg("logout failed")
	case state.SessionsLoaded:
		if a.Err != nil {
			s.logger.Err(a.Err).Uint64("epoch", a.Epoch).Msg("session list fetch failed")
		}
	case state.HistoryLoaded:
		if a.Err != nil {
			s.logger.Err(a.Err).Str("session_id", a.ID.String()).Msg("session history fetch failed")
		}
	case state.SendFailed:
		s.logger.Err(a.Err).Uint64("gen", a.Gen).Msg("send message failed")
	case state.ReplyReceived:
		s.logger.Debug().
			Str("session_id", a.Response.SessionID.String()).
			Int64("question_id", a.Response.QuestionID).
			Int64("answer_id", a.Response.AnswerID).
			Str("summary", a.Response.Summary).
			Msg("reply received")
	case state.SessionDeleted:
		if a.Err != nil {
			s.logger.Err(a.Err).Str("session_id", a.ID.String()).Msg("delete session failed")
		}
	}
}

func (s *sessionSynchronizer) CheckAuthentication(ctx context.Context) []Effect {
	return []Effect{func() state.Action {
		s.restoreCookies(ctx)

		status, err := s.adapter.CheckAuth(ctx)
		if err != nil {
			return state.AuthChecked{Err: mapAdapterError(err)}
		}

		s.saveCookies(ctx)
		return state.AuthChecked{Status: status}
	}}
}

func (s *sessionSynchronizer) Login(ctx context.Context, username, password string) []Effect {
	if s.store.State().LoginPending {
		return nil
	}

	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return s.Apply(ctx, state.LoginFailed{Err: ErrEmptyCredentials, Reason: ErrEmptyCredentials.Error()})
	}

	s.store.Dispatch(state.LoginRequested{})

	creds := models.Credentials{Username: username, Password: password}
	return []Effect{func() state.Action {
		if err := s.adapter.Login(ctx, creds); err != nil {
			err = mapLoginError(err)
			return state.LoginFailed{Err: err, Reason: textAuthError + ": " + describe(err)}
		}

		s.saveCookies(ctx)
		return state.LoginSucceeded{Username: username}
	}}
}

func (s *sessionSynchronizer) Logout(ctx context.Context) []Effect {
	if s.store.State().Auth != state.AuthAuthenticated {
		return nil
	}

	return []Effect{func() state.Action {
		if err := s.adapter.Logout(ctx); err != nil {
			return state.LogoutFailed{Err: mapAdapterError(err), Reason: textLogoutFailed}
		}

		s.clearCookies(ctx)
		return state.LogoutSucceeded{}
	}}
}

func (s *sessionSynchronizer) RefreshSessions(ctx context.Context) []Effect {
	st := s.store.State()
	if st.Auth != state.AuthAuthenticated {
		return nil
	}
	return []Effect{s.refreshEffect(ctx, st.Epoch)}
}

func (s *sessionSynchronizer) refreshEffect(ctx context.Context, epoch uint64) Effect {
	return func() state.Action {
		sessions, err := s.adapter.ListSessions(ctx)
		if err != nil {
			return state.SessionsLoaded{Epoch: epoch, Err: mapAdapterError(err), Reason: textSessionsFailed}
		}
		return state.SessionsLoaded{Epoch: epoch, Sessions: sessions}
	}
}

func (s *sessionSynchronizer) SelectSession(ctx context.Context, id models.SessionID) []Effect {
	if id.IsZero() {
		return s.NewChat()
	}

	_, next := s.store.Dispatch(state.SessionSelected{ID: id})
	gen := next.SelectionGen

	return []Effect{func() state.Action {
		detail, err := s.adapter.GetSession(ctx, id)
		if err != nil {
			return state.HistoryLoaded{ID: id, Gen: gen, Err: mapAdapterError(err), Reason: textHistoryFailed}
		}
		return state.HistoryLoaded{ID: id, Gen: gen, Messages: detail.Messages()}
	}}
}

func (s *sessionSynchronizer) NewChat() []Effect {
	s.store.Dispatch(state.NewChatStarted{})
	return nil
}

func (s *sessionSynchronizer) SendMessage(ctx context.Context, text string) []Effect {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	optimistic := models.Message{
		ID:     models.NewLocalMessageID(),
		Text:   text,
		Sender: models.SenderUser,
	}
	prev, next := s.store.Dispatch(state.MessageSent{Message: optimistic})

	req := models.ChatRequest{Message: text, SessionID: prev.Selected}
	newSession := prev.Selected.IsZero()
	gen := next.SelectionGen

	return []Effect{func() state.Action {
		resp, err := s.adapter.SendMessage(ctx, req)
		if err != nil {
			return state.SendFailed{
				Gen: gen,
				Err: mapAdapterError(err),
				Notice: models.Message{
					ID:      models.NewLocalMessageID(),
					Text:    textConnectionError,
					Sender:  models.SenderAssistant,
					IsError: true,
				},
			}
		}
		return state.ReplyReceived{Gen: gen, NewSession: newSession, Response: resp}
	}}
}

func (s *sessionSynchronizer) RequestDelete(id models.SessionID) []Effect {
	s.store.Dispatch(state.DeleteRequested{ID: id})
	return nil
}

func (s *sessionSynchronizer) ConfirmDelete(ctx context.Context, confirmed bool) []Effect {
	prev, _ := s.store.Dispatch(state.DeleteResolved{})
	id := prev.PendingDelete
	if !confirmed || id.IsZero() {
		return nil
	}

	return []Effect{func() state.Action {
		if err := s.adapter.DeleteSession(ctx, id); err != nil {
			return state.SessionDeleted{ID: id, Err: mapAdapterError(err)}
		}
		return state.SessionDeleted{ID: id}
	}}
}

func (s *sessionSynchronizer) DeleteSession(ctx context.Context, id models.SessionID, confirmed bool) []Effect {
	s.RequestDelete(id)
	return s.ConfirmDelete(ctx, confirmed)
}

func (s *sessionSynchronizer) DismissAlert() []Effect {
	s.store.Dispatch(state.AlertDismissed{})
	return nil
}

func (s *sessionSynchronizer) SetInput(text string) []Effect {
	s.store.Dispatch(state.InputChanged{Text: text})
	return nil
}

func (s *sessionSynchronizer) restoreCookies(ctx context.Context) {
	if s.cookies == nil {
		return
	}

	cookies, err := s.cookies.Load(ctx, s.origin)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to restore cookies")
		return
	}
	if len(cookies) > 0 {
		s.adapter.SetCookies(cookies)
		s.logger.Debug().Int("count", len(cookies)).Msg("cookies restored")
	}
}

func (s *sessionSynchronizer) saveCookies(ctx context.Context) {
	if s.cookies == nil {
		return
	}
	if err := s.cookies.Save(ctx, s.origin, s.adapter.Cookies()); err != nil {
		s.logger.Warn().Err(err).Msg("failed to persist cookies")
	}
}

func (s *sessionSynchronizer) clearCookies(ctx context.Context) {
	if s.cookies == nil {
		return
	}
	if err := s.cookies.Clear(ctx, s.origin); err != nil {
		s.logger.Warn().Err(err).Msg("failed to clear cookies")
	}
}
