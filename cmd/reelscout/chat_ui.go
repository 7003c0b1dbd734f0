package main

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"reelscout/internal/apps"
	"reelscout/internal/assistant"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#E50914")).
			Padding(0, 1)

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F5C518")).
			Bold(true)

	assistantStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04D9FF")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#444444"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#444444")).
			PaddingLeft(2)

	systemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#E50914")).
			Padding(0, 1).
			Bold(true)
)

type chatModel struct {
	viewport viewport.Model
	textarea textarea.Model
	session  *assistant.Session
	store    *apps.Store
	messages []string
	width    int
	height   int
	waiting  bool
	showApps bool
	appsView string
}

// answerMsg carries the assistant's turn back from the async pipeline run.
type answerMsg assistant.ChatTurn

func newChatModel(session *assistant.Session, store *apps.Store) *chatModel {
	ta := textarea.New()
	ta.Placeholder = "Ask about a title, or type / for commands..."
	ta.Focus()

	ta.Prompt = "┃ "
	ta.CharLimit = 500

	ta.SetWidth(60)
	ta.SetHeight(1)

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.ShowLineNumbers = false

	vp := viewport.New(60, 15)

	m := &chatModel{
		textarea: ta,
		viewport: vp,
		session:  session,
		store:    store,
	}
	for _, turn := range session.Turns() {
		m.messages = append(m.messages, renderTurn(turn))
	}
	m.refreshViewport()
	return m
}

func (m *chatModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		if m.showApps {
			m.viewport.Width = msg.Width * 2 / 3
		}
		m.textarea.SetWidth(m.viewport.Width)
		m.viewport.Height = msg.Height - m.textarea.Height() - 5
		m.refreshViewport()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if m.waiting {
				return m, nil
			}
			value := strings.TrimSpace(m.textarea.Value())
			if value == "" {
				return m, nil
			}
			if strings.HasPrefix(value, "/") {
				return m.handleSlashCommand(value)
			}

			m.textarea.Reset()
			m.messages = append(m.messages, userStyle.Render("You: ")+value)
			m.messages = append(m.messages, helpStyle.Render("Looking..."))
			m.refreshViewport()
			m.waiting = true
			return m, m.submitQuery(value)
		}
	case answerMsg:
		m.waiting = false
		// Drop the "Looking..." placeholder before appending the answer.
		if n := len(m.messages); n > 0 {
			m.messages = m.messages[:n-1]
		}
		m.messages = append(m.messages, renderTurn(assistant.ChatTurn(msg)))
		m.refreshViewport()
	}

	return m, tea.Batch(tiCmd, vpCmd)
}

func (m *chatModel) submitQuery(query string) tea.Cmd {
	return func() tea.Msg {
		turn := m.session.HandleQuery(context.Background(), query)
		return answerMsg(turn)
	}
}

func (m *chatModel) handleSlashCommand(cmd string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(cmd)
	m.textarea.Reset()

	switch parts[0] {
	case "/help":
		m.messages = append(m.messages, systemStyle.Render(" COMMANDS ")+"\n"+helpStyle.Render(
			"• /help  - Show this list\n"+
				"• /apps  - Toggle the subscriptions panel\n"+
				"• /clear - Clear the screen\n"+
				"• /exit  - Quit reelscout"))
	case "/apps":
		m.showApps = !m.showApps
		if m.showApps {
			m.viewport.Width = m.width * 2 / 3
			m.appsView = m.renderAppsPanel()
		} else {
			m.viewport.Width = m.width
		}
		m.textarea.SetWidth(m.viewport.Width)
	case "/clear":
		m.messages = nil
		m.viewport.SetContent(systemStyle.Render(" Screen cleared "))
		return m, nil
	case "/exit":
		return m, tea.Quit
	default:
		m.messages = append(m.messages, systemStyle.Render(" Unknown command: ")+" "+parts[0])
	}

	m.refreshViewport()
	return m, nil
}

func (m *chatModel) renderAppsPanel() string {
	var sb strings.Builder
	sb.WriteString(systemStyle.Render(" YOUR APPS ") + "\n\n")

	enabled, err := m.store.Load()
	if err != nil {
		sb.WriteString(helpStyle.Render("unavailable: " + err.Error()))
		return sb.String()
	}
	for _, app := range apps.Supported() {
		mark := "  "
		if apps.Contains(enabled, app) {
			mark = "✓ "
		}
		sb.WriteString(mark + app + "\n")
	}
	sb.WriteString("\n" + helpStyle.Render("reelscout apps enable|disable <app>"))
	return sb.String()
}

func (m *chatModel) refreshViewport() {
	m.viewport.SetContent(strings.Join(m.messages, "\n\n"))
	m.viewport.GotoBottom()
}

func renderTurn(turn assistant.ChatTurn) string {
	if turn.Role == assistant.RoleUser {
		return userStyle.Render("You: ") + turn.Content
	}
	return assistantStyle.Render("Reelscout: ") + turn.Content
}

func (m *chatModel) View() string {
	header := titleStyle.Render(" reelscout ") + " " + helpStyle.Render("esc to quit")
	border := strings.Repeat("─", max(m.width-1, 1))

	mainContent := m.viewport.View()
	if m.showApps {
		mainContent = lipgloss.JoinHorizontal(lipgloss.Top,
			m.viewport.View(),
			panelStyle.Render(m.appsView),
		)
	}

	return header + "\n" +
		borderStyle.Render(border) + "\n" +
		mainContent + "\n" +
		borderStyle.Render(border) + "\n" +
		m.textarea.View() + "\n"
}
