package lock

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	lockdto "focuslock/internal/modules/lock/dto"
	"focuslock/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

// Port is what the overlay needs from the lock use-case.
type Port interface {
	Submit(ctx context.Context, pageID, text string) (lockdto.SubmitOutput, error)
	Close(ctx context.Context, pageID string) error
}

// ─── messages ────────────────────────────────────────────────────────────────

// OverlayMsg carries an overlay update published by the page's controller.
type OverlayMsg struct {
	Overlay lockdto.OverlayOutput
}

type submittedMsg struct {
	out lockdto.SubmitOutput
	err error
}

type closedMsg struct{}

// ─── keys ────────────────────────────────────────────────────────────────────

var (
	submitKey = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit"))
	leaveKey  = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "close page"))
)

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the terminal rendition of the blocking overlay. Every key press
// goes to the task input; the only way out is the task, the countdown or
// closing the page.
type Model struct {
	port    Port
	pageID  string
	input   textinput.Model
	overlay lockdto.OverlayOutput
	outcome string
	err     error
	width   int
	height  int
}

func New(port Port, pageID string, initial lockdto.OverlayOutput) Model {
	ti := textinput.New()
	ti.Placeholder = initial.Placeholder
	ti.CharLimit = 200
	ti.Width = 48
	ti.Focus()

	return Model{
		port:    port,
		pageID:  pageID,
		input:   ti,
		overlay: initial,
	}
}

func (m Model) Init() tea.Cmd {
	if !m.overlay.Visible {
		return tea.Quit
	}
	return textinput.Blink
}

// Outcome reports how the overlay ended: "unlocked" or "closed".
func (m Model) Outcome() string {
	return m.outcome
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case OverlayMsg:
		if msg.Overlay.Version < m.overlay.Version {
			return m, nil
		}
		m.overlay = msg.Overlay
		if !m.overlay.Visible {
			if m.outcome == "" {
				m.outcome = "unlocked"
			}
			return m, tea.Quit
		}
		m.input.Placeholder = m.overlay.Placeholder
		return m, nil

	case submittedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		if !msg.out.Page.Overlay.Visible {
			m.outcome = "unlocked"
			return m, tea.Quit
		}
		return m, nil

	case closedMsg:
		m.outcome = "closed"
		return m, tea.Quit

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, leaveKey):
			return m, m.closeCmd()
		case key.Matches(msg, submitKey):
			text := m.input.Value()
			m.input.Reset()
			return m, m.submitCmd(text)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submitCmd(text string) tea.Cmd {
	port, pageID := m.port, m.pageID
	return func() tea.Msg {
		out, err := port.Submit(context.Background(), pageID, text)
		return submittedMsg{out: out, err: err}
	}
}

func (m Model) closeCmd() tea.Cmd {
	port, pageID := m.port, m.pageID
	return func() tea.Msg {
		_ = port.Close(context.Background(), pageID)
		return closedMsg{}
	}
}

func (m Model) View() string {
	if !m.overlay.Visible {
		return ""
	}
	o := m.overlay

	inputStyle := theme.Input
	if o.InputError {
		inputStyle = theme.InputError
	}

	task := lipgloss.JoinVertical(lipgloss.Center,
		theme.Heading.Render(o.TaskHeading),
		o.TaskPrompt,
		inputStyle.Render(m.input.View()),
		theme.Muted.Render(submitKey.Help().Key+": "+o.SubmitLabel),
	)

	video := theme.Card.Render(lipgloss.JoinVertical(lipgloss.Center,
		theme.Heading.Render(o.VideoHeading),
		o.VideoTitle,
		theme.Muted.Render(o.VideoEmbedURL),
	))

	parts := []string{
		theme.Heading.Render("🔒 " + o.Heading),
		theme.Countdown.Render(o.Countdown),
		"",
		task,
		"",
		video,
		"",
		theme.Muted.Render(o.Footer),
	}
	if m.err != nil {
		parts = append(parts, theme.Hot.Render("Error: "+m.err.Error()))
	}
	parts = append(parts, theme.Muted.Render(leaveKey.Help().Key+": "+leaveKey.Help().Desc))

	box := theme.Overlay.Render(lipgloss.JoinVertical(lipgloss.Center, parts...))
	if m.width == 0 || m.height == 0 {
		return box
	}
	return theme.Backdrop.Render(lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceBackground(theme.Crust)))
}

