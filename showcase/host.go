package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Padding(1, 2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(1, 2)
)

// rebuildMsg asks the program to re-render from controller state.
type rebuildMsg struct{}

// callbackMsg carries deferred work onto the program's event loop.
type callbackMsg struct {
	fn func()
}

// teaHost adapts a bubbletea program to the screen.Host contract. Rendered
// views are plain strings; rebuild requests and deferred callbacks travel
// through the program's message queue, which makes them safe to trigger from
// controller goroutines.
type teaHost struct {
	send func(tea.Msg)
}

func (h *teaHost) MarkNeedsBuild() {
	h.send(rebuildMsg{})
}

func (h *teaHost) PostFrame(fn func()) {
	h.send(callbackMsg{fn: fn})
}

func (h *teaHost) BuildLoading() string {
	return loadingStyle.Render("Loading…")
}

func (h *teaHost) BuildError(message string) string {
	return errorStyle.Render("Something went wrong\n\n" + message + "\n\nPress r to retry")
}
