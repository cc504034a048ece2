// Command showcase runs a terminal demo of rudder's controller and screen
// binding on top of bubbletea: debounced search, async loading with an
// overlay, and a retryable error view.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/rudder/pkg/screen"
)

var scrimStyle = lipgloss.NewStyle().Faint(true)

type model struct {
	scr     *searchScreen
	binding *screen.Binding[string]
	query   string
}

// attachMsg defers binding attachment until the event loop is running, so
// the host can deliver messages without blocking.
type attachMsg struct{}

func (m *model) Init() tea.Cmd {
	return func() tea.Msg { return attachMsg{} }
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case attachMsg:
		m.binding.Attach()
		return m, nil

	case rebuildMsg:
		return m, nil

	case callbackMsg:
		msg.fn()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.binding.Detach()
			return m, tea.Quit
		case "r":
			if c := m.binding.Controller(); c != nil && c.IsError() {
				m.scr.ctrl.Retry()
				return m, nil
			}
			m.typed(msg)
		case "backspace":
			if m.scr.ctrl != nil && len(m.query) > 0 {
				m.query = m.query[:len(m.query)-1]
				m.scr.ctrl.SetQuery(m.query)
			}
		default:
			m.typed(msg)
		}
	}
	return m, nil
}

func (m *model) typed(msg tea.KeyMsg) {
	if msg.Type != tea.KeyRunes || m.scr.ctrl == nil {
		return
	}
	m.query += string(msg.Runes)
	m.scr.ctrl.SetQuery(m.query)
}

// View maps the binding's frame onto the terminal: in loading mode the body
// renders dimmed under the overlay, in error mode the error view replaces
// the body.
func (m *model) View() string {
	if m.binding.Controller() == nil {
		return ""
	}
	frame := m.binding.Build()
	switch frame.Mode {
	case screen.ModeLoading:
		body := frame.Body
		if frame.Scrim.Alpha >= 1 {
			body = ""
		} else {
			body = scrimStyle.Render(body)
		}
		return lipgloss.JoinVertical(lipgloss.Left, body, frame.Overlay)
	default:
		return frame.Body
	}
}

func main() {
	scr := &searchScreen{}
	host := &teaHost{}
	binding := screen.NewBinding[string](scr, host)

	m := &model{scr: scr, binding: binding}
	p := tea.NewProgram(m, tea.WithAltScreen())
	// Send blocks when invoked from inside the update loop (controller
	// notifications fire synchronously there), so deliver asynchronously.
	host.send = func(msg tea.Msg) { go p.Send(msg) }

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "showcase: %v\n", err)
		os.Exit(1)
	}
}
