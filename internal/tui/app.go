package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gaonkarsahil14/CODTECH/internal/bot"
	"github.com/gaonkarsahil14/CODTECH/internal/knowledge"
)

// kbChangedMsg fires when another process modified the knowledge file.
type kbChangedMsg struct{}

type chatMessage struct {
	role    string // "welcome", "user", "bot", "system", "warning", "error"
	content string
}

type Model struct {
	width, height int
	viewport      viewport.Model
	textarea      textarea.Model
	messages      []chatMessage

	handler *bot.Handler
	store   *knowledge.Store
	changes <-chan struct{}
}

// NewModel builds the chat interface around an already-loaded handler.
// changes may be nil when the knowledge file watcher is disabled.
func NewModel(h *bot.Handler, store *knowledge.Store, changes <-chan struct{}) Model {
	ta := textarea.New()
	ta.Placeholder = "Ask me anything, or type 'help'..."
	ta.Focus()
	ta.CharLimit = 0
	ta.SetHeight(1)
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(White)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(DimGreen)
	ta.BlurredStyle.Base = lipgloss.NewStyle().Foreground(DarkGreen)
	ta.ShowLineNumbers = false

	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = true

	m := Model{
		viewport: vp,
		textarea: ta,
		handler:  h,
		store:    store,
		changes:  changes,
	}
	m.messages = append(m.messages, chatMessage{
		role: "welcome",
		content: fmt.Sprintf(
			"Hello! I answer questions from a knowledge base of %d entries.\n\n"+
				"Try 'help' for commands, or teach me something:\n"+
				"  teach: What is AI? => AI stands for Artificial Intelligence.",
			len(h.Base())),
	})

	store.LogSessionStart()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.waitForChange())
}

// waitForChange blocks on the watcher channel as a bubbletea command.
func (m Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-m.changes; !ok {
			return nil
		}
		return kbChangedMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerH := 9
		inputH := 3
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - headerH - inputH
		m.textarea.SetWidth(msg.Width - 6)
		m.rebuildView()

	case kbChangedMsg:
		m.messages = append(m.messages, chatMessage{
			role:    "warning",
			content: "The knowledge file changed on disk. This session keeps its own copy; 'save' will overwrite it.",
		})
		m.rebuildView()
		return m, m.waitForChange()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyPgUp:
			m.viewport.HalfViewUp()
			return m, nil
		case tea.KeyPgDown:
			m.viewport.HalfViewDown()
			return m, nil
		case tea.KeyEsc, tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			text := strings.TrimSpace(m.textarea.Value())
			if text == "" {
				return m, nil
			}
			m.textarea.Reset()
			return m.sendTurn(text)
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// sendTurn runs one dialogue turn. The handler is synchronous, so the
// reply is available immediately; no spinner needed.
func (m Model) sendTurn(text string) (tea.Model, tea.Cmd) {
	m.messages = append(m.messages, chatMessage{role: "user", content: text})

	reply := m.handler.Handle(text)
	if reply.Exit {
		m.messages = append(m.messages, chatMessage{role: "bot", content: bot.GoodbyeText})
		m.store.AppendLog(text, bot.GoodbyeText)
		m.rebuildView()
		return m, tea.Quit
	}

	m.messages = append(m.messages, chatMessage{role: "bot", content: reply.Text})
	if reply.SaveStatus == bot.SaveFailed && reply.SaveErr != nil {
		m.messages = append(m.messages, chatMessage{
			role:    "error",
			content: "save error: " + reply.SaveErr.Error(),
		})
	}
	m.store.AppendLog(text, reply.Text)

	m.rebuildView()
	return m, nil
}

func (m *Model) rebuildView() {
	var sb strings.Builder

	for _, msg := range m.messages {
		switch msg.role {
		case "welcome":
			sb.WriteString(BotLabelStyle.Render("BOT") + "\n")
			sb.WriteString(BotMsgStyle.Render(msg.content) + "\n\n")
		case "user":
			sb.WriteString(UserLabelStyle.Render("YOU") + "\n")
			sb.WriteString(UserMsgStyle.Render(msg.content) + "\n\n")
		case "bot":
			sb.WriteString(BotLabelStyle.Render("BOT") + "\n")
			sb.WriteString(BotMsgStyle.Render(msg.content) + "\n\n")
		case "system":
			sb.WriteString(SystemMsgStyle.Render("  ℹ "+msg.content) + "\n\n")
		case "warning":
			sb.WriteString(WarningStyle.Render("  ⚠ "+msg.content) + "\n\n")
		case "error":
			sb.WriteString(ErrorStyle.Render("  ✗ "+msg.content) + "\n\n")
		}
	}

	wasAtBottom := m.viewport.AtBottom()
	m.viewport.SetContent(sb.String())
	if wasAtBottom || len(m.messages) <= 1 {
		m.viewport.GotoBottom()
	}
}

func (m Model) View() string {
	header := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(DimGreen).
		Width(m.width).
		Align(lipgloss.Center).
		Render(BannerStyle.Render(Banner))

	prompt := lipgloss.NewStyle().Foreground(Green).Bold(true).Render("> ")
	inputContent := lipgloss.JoinHorizontal(lipgloss.Top, prompt, m.textarea.View())
	inputBox := InputBoxStyle.
		Width(m.width - 4).
		Render(inputContent)

	help := HelpStyle.Render("Enter: send  •  PgUp/PgDown: scroll  •  'exit' or Esc: quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.viewport.View(),
		inputBox,
		lipgloss.NewStyle().PaddingLeft(2).Render(help),
	)
}
