// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-chat-assistant/internal/service"
	"github.com/MKhiriev/go-chat-assistant/internal/state"
	"github.com/MKhiriev/go-chat-assistant/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type focus int

const (
	focusInput focus = iota
	focusSidebar
)

// Model is the root Bubble Tea model. The synchronizer owns the client
// state; Model keeps only widget state and picks the view from the auth
// status:
//  1. loading while the auth status is unknown
//  2. the login form while unauthenticated
//  3. sidebar, thread and input while authenticated
type Model struct {
	ctx       context.Context
	sync      service.Synchronizer
	buildInfo models.AppBuildInfo

	width  int
	height int

	spinner  spinner.Model
	login    loginModel
	input    textinput.Model
	thread   viewport.Model
	renderer *glamour.TermRenderer

	focus     focus
	cursor    int
	notice    string
	renderKey string
	lastAuth  state.AuthStatus

	showBuildInfo bool
}

// NewModel returns the root model over sync.
func NewModel(ctx context.Context, sync service.Synchronizer, buildInfo models.AppBuildInfo) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	input := textinput.New()
	input.Placeholder = "Type a message..."
	input.Prompt = "> "
	input.CharLimit = 0
	input.Focus()

	return Model{
		ctx:       ctx,
		sync:      sync,
		buildInfo: buildInfo,
		spinner:   s,
		login:     newLoginModel(),
		input:     input,
		thread:    viewport.New(0, 0),
	}
}

// Init starts the authentication check.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, textinput.Blink, runEffects(m.sync.CheckAuthentication(m.ctx)))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.syncView()
		return m, nil
	case actionMsg:
		cmd := runEffects(m.sync.Apply(m.ctx, msg.action))
		m.syncView()
		return m, cmd
	case RefreshRequested:
		return m, runEffects(m.sync.RefreshSessions(m.ctx))
	case copiedMsg:
		m.notice = "copied to clipboard"
		return m, cmdClearNotice()
	case copyFailedMsg:
		m.notice = msg.err.Error()
		return m, cmdClearNotice()
	case clearNoticeMsg:
		m.notice = ""
		return m, nil
	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m.forwardToInputs(msg)
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}
	if key.Matches(msg, keys.info) {
		m.showBuildInfo = true
		return m, nil
	}

	st := m.sync.State()
	if st.Alert != "" {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.sync.DismissAlert()
		}
		return m, nil
	}

	switch st.Auth {
	case state.AuthUnknown:
		return m, nil
	case state.AuthUnauthenticated:
		return m.updateLogin(msg, st)
	}

	if !st.PendingDelete.IsZero() {
		switch {
		case key.Matches(msg, keys.yes):
			return m, runEffects(m.sync.ConfirmDelete(m.ctx, true))
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.sync.ConfirmDelete(m.ctx, false)
		}
		return m, nil
	}

	return m.updateMain(msg, st)
}

func (m Model) updateLogin(msg tea.KeyMsg, st state.State) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.tab):
		m.login = m.login.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.login = m.login.focusPrev()
		return m, nil
	case key.Matches(msg, keys.enter):
		if st.LoginPending {
			return m, nil
		}
		username, password := m.login.values()
		effects := m.sync.Login(m.ctx, username, password)
		if len(effects) == 0 {
			return m, nil
		}
		return m, tea.Batch(runEffects(effects), m.spinner.Tick)
	}

	var cmd tea.Cmd
	m.login, cmd = m.login.update(msg)
	return m, cmd
}

func (m Model) updateMain(msg tea.KeyMsg, st state.State) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.logout):
		return m, runEffects(m.sync.Logout(m.ctx))
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
		m.toggleFocus()
		return m, nil
	case key.Matches(msg, keys.pageUp), key.Matches(msg, keys.pageDown):
		var cmd tea.Cmd
		m.thread, cmd = m.thread.Update(msg)
		return m, cmd
	}

	if m.focus == focusInput {
		if key.Matches(msg, keys.enter) {
			effects := m.sync.SendMessage(m.ctx, m.input.Value())
			m.input.SetValue(m.sync.State().Input)
			m.syncView()
			if len(effects) == 0 {
				return m, nil
			}
			return m, tea.Batch(runEffects(effects), m.spinner.Tick)
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.sync.SetInput(m.input.Value())
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, keys.down):
		m.cursor = min(m.cursor+1, len(st.Sessions))
	case key.Matches(msg, keys.enter):
		if m.cursor == 0 {
			return m.startNewChat()
		}
		effects := m.sync.SelectSession(m.ctx, st.Sessions[m.cursor-1].ID)
		m.setFocus(focusInput)
		m.syncView()
		return m, tea.Batch(runEffects(effects), m.spinner.Tick)
	case key.Matches(msg, keys.newChat):
		return m.startNewChat()
	case key.Matches(msg, keys.delete):
		if m.cursor > 0 {
			m.sync.RequestDelete(st.Sessions[m.cursor-1].ID)
		}
	case key.Matches(msg, keys.refresh):
		return m, runEffects(m.sync.RefreshSessions(m.ctx))
	case key.Matches(msg, keys.copy):
		if answer, ok := st.LastAnswer(); ok {
			return m, cmdCopyToClipboard(answer)
		}
		m.notice = "nothing to copy"
		return m, cmdClearNotice()
	}
	return m, nil
}

func (m Model) startNewChat() (tea.Model, tea.Cmd) {
	m.sync.NewChat()
	m.cursor = 0
	m.setFocus(focusInput)
	m.syncView()
	return m, nil
}

// forwardToInputs passes non-key messages such as cursor blinks to the
// text input that is on screen.
func (m Model) forwardToInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.sync.State().Auth {
	case state.AuthUnauthenticated:
		m.login, cmd = m.login.update(msg)
	case state.AuthAuthenticated:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m *Model) toggleFocus() {
	if m.focus == focusInput {
		m.setFocus(focusSidebar)
		return
	}
	m.setFocus(focusInput)
}

func (m *Model) setFocus(f focus) {
	m.focus = f
	if f == focusInput {
		m.input.Focus()
		return
	}
	m.input.Blur()
}

func (m Model) busy() bool {
	st := m.sync.State()
	return st.Auth == state.AuthUnknown || st.LoginPending || st.Sending > 0 || st.LoadingHistory
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height

	w := m.threadWidth()
	m.thread.Width = w
	m.thread.Height = m.threadHeight()
	m.input.Width = max(w-len(m.input.Prompt)-1, 10)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(w),
	)
	if err == nil {
		m.renderer = renderer
	}
	m.renderKey = ""
}

func (m Model) threadWidth() int {
	// app padding 4, sidebar border 2 and padding 2, gap 2
	return max(m.width-sidebarWidth-10, 20)
}

func (m Model) threadHeight() int {
	// app padding 2, header 2, input 2, status and help 3
	return max(m.height-9, 3)
}

// syncView brings widget state in line with the synchronizer state after
// it may have changed.
func (m *Model) syncView() {
	st := m.sync.State()

	if st.Auth != m.lastAuth {
		if st.Auth == state.AuthAuthenticated {
			m.login = m.login.reset()
			m.cursor = 0
			m.setFocus(focusInput)
		}
		m.input.SetValue(st.Input)
		m.lastAuth = st.Auth
	}

	m.cursor = min(m.cursor, len(st.Sessions))

	k := threadKey(st, m.threadWidth())
	if k == m.renderKey {
		return
	}
	m.renderKey = k
	m.thread.SetContent(renderThread(st, m.renderer, m.threadWidth()))
	m.thread.GotoBottom()
}

func (m Model) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	st := m.sync.State()

	var body string
	switch st.Auth {
	case state.AuthUnknown:
		body = renderPage("CHAT ASSISTANT", m.spinner.View()+" Checking session...", "")
	case state.AuthUnauthenticated:
		body = m.login.View(st.LoginPending, m.spinner.View())
	default:
		body = m.mainView(st)
	}

	if !st.PendingDelete.IsZero() {
		body += "\n\n" + confirmModel{title: sessionTitle(st, st.PendingDelete)}.View()
	}
	if st.Alert != "" {
		body += "\n\n" + alertOverlayModel{message: st.Alert}.View()
	}

	return appStyle.Render(body)
}

func (m Model) mainView(st state.State) string {
	header := titleStyle.Render("Chat Assistant")
	if st.Username != "" {
		header += helpStyle.Render("  signed in as " + st.Username)
	}

	thread := lipgloss.JoinVertical(lipgloss.Left,
		m.thread.View(),
		"",
		m.input.View(),
	)
	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		renderSidebar(st, m.cursor, m.focus == focusSidebar, m.threadHeight()+2),
		"  ",
		thread,
	)

	help := "tab: switch focus │ enter: send │ pgup/pgdown: scroll │ ctrl+l: logout"
	if m.focus == focusSidebar {
		help = "tab: switch focus │ enter: open │ n: new chat │ d: delete │ r: refresh │ y: copy answer │ ctrl+l: logout"
	}

	return strings.Join([]string{
		header,
		"",
		columns,
		m.statusLine(st),
		helpStyle.Render(help + " │ ctrl+c: quit"),
	}, "\n")
}

func (m Model) statusLine(st state.State) string {
	var parts []string
	switch {
	case st.LoadingHistory:
		parts = append(parts, m.spinner.View()+" loading conversation...")
	case st.Sending > 0:
		parts = append(parts, m.spinner.View()+" waiting for the assistant...")
	}
	if st.Status != "" {
		parts = append(parts, st.Status)
	}
	if m.notice != "" {
		parts = append(parts, m.notice)
	}
	return statusStyle.Render(strings.Join(parts, " │ "))
}

func sessionTitle(st state.State, id models.SessionID) string {
	for _, s := range st.Sessions {
		if s.ID == id {
			return s.Title()
		}
	}
	return id.String()
}
