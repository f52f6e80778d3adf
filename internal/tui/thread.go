package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-chat-assistant/internal/state"
	"github.com/MKhiriev/go-chat-assistant/models"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// threadKey identifies what the thread viewport currently shows so that
// markdown is rendered again only when the thread changes.
func threadKey(st state.State, width int) string {
	last := ""
	if n := len(st.Messages); n > 0 {
		last = st.Messages[n-1].ID.Key()
	}
	return fmt.Sprintf("%s|%d|%d|%t|%d|%s", st.Selected, st.SelectionGen, len(st.Messages), st.LoadingHistory, width, last)
}

func renderThread(st state.State, renderer *glamour.TermRenderer, width int) string {
	if len(st.Messages) == 0 {
		switch {
		case st.LoadingHistory:
			return helpStyle.Render("Loading conversation...")
		case st.Selected.IsZero():
			return helpStyle.Render("Start a new conversation by typing a message below.")
		default:
			return helpStyle.Render("This conversation has no messages yet.")
		}
	}

	parts := make([]string, 0, len(st.Messages))
	for _, msg := range st.Messages {
		parts = append(parts, renderMessage(msg, renderer, width))
	}
	return strings.Join(parts, "\n\n")
}

func renderMessage(msg models.Message, renderer *glamour.TermRenderer, width int) string {
	if msg.IsError {
		return errorBubbleStyle.Render(msg.Text)
	}
	if msg.Sender == models.SenderUser {
		return userLabelStyle.Render("You") + "\n" + lipgloss.NewStyle().Width(width).Render(msg.Text)
	}
	return assistantLabelStyle.Render("Assistant") + "\n" + renderMarkdown(renderer, msg.Text)
}

// renderMarkdown renders text with renderer, falling back to the raw text
// when there is no renderer or rendering fails.
func renderMarkdown(renderer *glamour.TermRenderer, text string) string {
	if renderer == nil {
		return text
	}
	out, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}
