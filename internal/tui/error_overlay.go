package tui

// noticeOverlay is the blocking notice shown on a failed confirmation.
type noticeOverlay struct {
	message string
}

func (m noticeOverlay) View() string {
	content := "Error\n\n" + m.message + "\n\nenter / esc: close"
	return overlayBoxStyle.Render(content)
}
