package tui

type confirmModel struct {
	title string
}

func (m confirmModel) View() string {
	content := "Delete \"" + m.title + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
