package tui

import (
	"strings"

	"github.com/MKhiriev/go-chat-assistant/internal/state"
)

const newChatEntry = "+ New chat"

// renderSidebar lists the "new chat" entry followed by the sessions in
// server order. Row 0 is the new chat entry, row i+1 is Sessions[i].
func renderSidebar(st state.State, cursor int, focused bool, height int) string {
	rows := make([]string, 0, len(st.Sessions)+1)
	rows = append(rows, sidebarRow(newChatEntry, "", cursor == 0, focused, st.Selected.IsZero()))
	for i, s := range st.Sessions {
		rows = append(rows, sidebarRow(fitText(s.Title(), sidebarWidth-4), formatCreatedAt(s.CreatedAt), cursor == i+1, focused, s.ID == st.Selected))
	}

	// every session row takes two lines
	visible := len(rows)
	if height > 0 {
		visible = max(height/2, 1)
	}
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := min(start+visible, len(rows))

	body := strings.Join(rows[start:end], "\n")
	if len(st.Sessions) == 0 {
		body += "\n" + dateStyle.Render("  no conversations yet")
	}

	style := sidebarStyle
	if focused {
		style = sidebarFocusedStyle
	}
	if height > 0 {
		style = style.Height(height)
	}
	return style.Render(body)
}

func sidebarRow(title, date string, atCursor, focused, selected bool) string {
	marker := "  "
	if atCursor && focused {
		marker = "› "
	} else if atCursor {
		marker = "· "
	}
	if selected {
		title = selectedItemStyle.Render(title)
	}

	row := marker + title
	if date != "" {
		row += "\n  " + dateStyle.Render(date)
	} else {
		row += "\n"
	}
	return row
}
