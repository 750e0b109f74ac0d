package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nkumar/govbot/internal/api"
	"github.com/nkumar/govbot/internal/models"
	"github.com/nkumar/govbot/internal/render"
)

// Animation tick message
type animationTickMsg time.Time

// Message types for the TUI
type (
	replyMsg struct {
		reply string
	}
	sendFailedMsg struct {
		err error
	}
	resetMsg struct {
		greeting string
	}
	resetFailedMsg struct {
		err error
	}
)

// TranscriptRecorder persists chat turns as they happen.
type TranscriptRecorder interface {
	Append(id, sender, text string) error
}

// Model represents the TUI state
type Model struct {
	client api.PortalClientInterface

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	// State
	messages       []chatMessage
	typing         bool // a request is in flight, show the indicator
	ready          bool
	err            error
	feedback       string
	animationFrame int

	// Transcript persistence (nil recorder disables it)
	recorder     TranscriptRecorder
	transcriptID string

	// Dimensions
	width  int
	height int
}

// chatMessage represents a message in the chat
type chatMessage struct {
	sender string // models.SenderUser or models.SenderBot
	text   string // bot text holds portal markup, converted at render time
}

// NewChatModel creates a new chat TUI model
func NewChatModel(client api.PortalClientInterface) Model {
	ta := textarea.New()
	ta.Placeholder = "Type apply to start, status to check an application..."
	ta.CharLimit = 2000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	return Model{
		client:   client,
		textarea: ta,
		spinner:  s,
		messages: []chatMessage{},
	}
}

// NewChatModelWithTranscript creates a chat TUI model that records turns
// to a transcript store.
func NewChatModelWithTranscript(client api.PortalClientInterface, recorder TranscriptRecorder, transcriptID string) Model {
	m := NewChatModel(client)
	m.recorder = recorder
	m.transcriptID = transcriptID
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
	)
}

// animationTick returns a command that sends animation tick messages
func animationTick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return animationTickMsg(t)
	})
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4
		inputHeight := 6
		statusHeight := 1
		padding := 2

		vpHeight := m.height - headerHeight - inputHeight - statusHeight - padding
		if vpHeight < 5 {
			vpHeight = 5
		}

		contentWidth := m.width - 4

		if !m.ready {
			m.viewport = viewport.New(contentWidth, vpHeight)
			m.textarea.SetWidth(contentWidth - 4)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = vpHeight
			m.textarea.SetWidth(contentWidth - 4)
		}
		m.updateViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.typing {
				m.typing = false
			} else {
				return m, tea.Quit
			}

		case "enter":
			input := strings.TrimSpace(m.textarea.Value())
			if input == "exit" || input == "quit" || input == "/exit" || input == "/quit" {
				return m, tea.Quit
			}
			return m.submit(input)

		case "ctrl+a":
			return m.submit(models.PhraseApply)

		case "ctrl+s":
			return m.submit(models.PhraseStatus)

		case "ctrl+r":
			if !m.typing {
				m.typing = true
				m.err = nil
				m.feedback = ""
				m.animationFrame = 0
				return m, tea.Batch(m.resetSession(), m.spinner.Tick, animationTick())
			}

		case "ctrl+y":
			m.copyLastReply()
		}

	case replyMsg:
		m.typing = false
		m.messages = append(m.messages, chatMessage{
			sender: models.SenderBot,
			text:   msg.reply,
		})
		m.record(models.SenderBot, msg.reply)
		m.updateViewport()
		m.viewport.GotoBottom()

	case sendFailedMsg:
		// Indicator goes away and the fallback is shown as a bot turn, with
		// the underlying error kept visible below the status bar.
		m.typing = false
		m.err = msg.err
		m.messages = append(m.messages, chatMessage{
			sender: models.SenderBot,
			text:   models.FallbackReply,
		})
		m.updateViewport()
		m.viewport.GotoBottom()

	case resetMsg:
		m.typing = false
		m.messages = []chatMessage{{
			sender: models.SenderBot,
			text:   msg.greeting,
		}}
		m.record(models.SenderBot, msg.greeting)
		m.feedback = "Session reset"
		m.updateViewport()
		m.viewport.GotoBottom()

	case resetFailedMsg:
		// Reset failure keeps the conversation as is
		m.typing = false
		m.err = msg.err

	case spinner.TickMsg:
		if m.typing {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case animationTickMsg:
		if m.typing {
			m.animationFrame++
			m.updateViewport()
			cmds = append(cmds, animationTick())
		}
	}

	// Only pass KeyMsg to the textarea to prevent escape sequence leaks
	if !m.typing {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.textarea, cmd = m.textarea.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit runs the shared send path. Typed input and quick phrases go
// through here so both behave identically.
func (m Model) submit(text string) (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(text)
	if input == "" || m.typing {
		return m, nil
	}

	m.messages = append(m.messages, chatMessage{
		sender: models.SenderUser,
		text:   input,
	})
	m.record(models.SenderUser, input)
	m.updateViewport()
	m.viewport.GotoBottom()

	m.typing = true
	m.err = nil
	m.feedback = ""
	m.animationFrame = 0
	m.textarea.Reset()

	return m, tea.Batch(
		m.sendMessage(input),
		m.spinner.Tick,
		animationTick(),
	)
}

// sendMessage creates a command to send a message to the portal
func (m Model) sendMessage(message string) tea.Cmd {
	return func() tea.Msg {
		reply, err := m.client.Send(message)
		if err != nil {
			return sendFailedMsg{err: err}
		}
		return replyMsg{reply: reply}
	}
}

// resetSession creates a command to reset the portal session
func (m Model) resetSession() tea.Cmd {
	return func() tea.Msg {
		greeting, err := m.client.Reset()
		if err != nil {
			return resetFailedMsg{err: err}
		}
		return resetMsg{greeting: greeting}
	}
}

// copyLastReply puts the most recent bot reply on the system clipboard
// as plain markdown.
func (m *Model) copyLastReply() {
	for i := len(m.messages) - 1; i >= 0; i-- {
		if m.messages[i].sender != models.SenderBot {
			continue
		}
		if err := clipboard.WriteAll(render.ReplyToMarkdown(m.messages[i].text)); err != nil {
			m.feedback = "Clipboard unavailable"
		} else {
			m.feedback = "Copied last reply"
		}
		return
	}
	m.feedback = "Nothing to copy"
}

// record appends a turn to the transcript when persistence is enabled
func (m Model) record(sender, text string) {
	if m.recorder == nil || m.transcriptID == "" {
		return
	}
	// Persistence is best effort, a failed write never breaks the chat
	_ = m.recorder.Append(m.transcriptID, sender, text)
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Connecting...")
	}

	var sections []string
	contentWidth := m.width - 4

	headerParts := []string{
		titleStyle.Render("🏛 GovBot"),
		hintStyle.Render("  •  "),
		subtitleStyle.Render(m.client.BaseURL()),
	}
	headerContent := lipgloss.JoinHorizontal(lipgloss.Center, headerParts...)
	header := headerStyle.Width(contentWidth).Render(headerContent)
	sections = append(sections, header)

	var messagesContent string
	if len(m.messages) == 0 && !m.typing {
		messagesContent = m.renderWelcome()
	} else {
		messagesContent = m.viewport.View()
	}

	messagesPanel := messagesAreaStyle.
		Width(contentWidth).
		Height(m.viewport.Height).
		Render(messagesContent)
	sections = append(sections, messagesPanel)

	var inputContent string
	if m.typing {
		inputContent = m.renderTypingAnimation()
	} else {
		inputContent = lipgloss.JoinVertical(
			lipgloss.Left,
			inputLabelStyle.Render("You"),
			m.textarea.View(),
		)
	}

	inputPanel := inputPanelStyle.Width(contentWidth).Render(inputContent)
	sections = append(sections, inputPanel)

	sections = append(sections, m.renderStatusBar(contentWidth))

	if m.feedback != "" {
		sections = append(sections, feedbackStyle.Render("  "+m.feedback))
	}

	if m.err != nil {
		sections = append(sections, FormatError(m.err))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderWelcome renders the welcome screen when no messages exist
func (m Model) renderWelcome() string {
	width := m.viewport.Width - 4
	height := m.viewport.Height

	icon := welcomeIconStyle.Width(width).Render("🏛")
	title := welcomeTitleStyle.Width(width).Render("Government Services Portal")
	subtitle := welcomeStyle.Width(width).Render("Type apply to start an application or status to check one")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		"",
		icon,
		"",
		title,
		"",
		subtitle,
		"",
	)

	contentHeight := lipgloss.Height(content)
	topPadding := (height - contentHeight) / 2
	if topPadding < 0 {
		topPadding = 0
	}

	return strings.Repeat("\n", topPadding) + content
}

// renderTypingAnimation renders the animated indicator shown while the
// portal is composing a reply
func (m Model) renderTypingAnimation() string {
	chars := []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

	frame := m.animationFrame

	spinIdx := frame % len(chars)
	spinColor := gradientColors[frame%len(gradientColors)]
	spin := lipgloss.NewStyle().Foreground(spinColor).Bold(true).Render(chars[spinIdx])

	dots := ""
	numDots := (frame / 3) % 4
	for i := 0; i < numDots; i++ {
		dotColor := gradientColors[(frame+i)%len(gradientColors)]
		dots += lipgloss.NewStyle().Foreground(dotColor).Render("●")
	}
	for i := numDots; i < 3; i++ {
		dots += lipgloss.NewStyle().Foreground(colorTextMute).Render("○")
	}

	text := lipgloss.NewStyle().Foreground(colorText).Render(" GovBot is typing ")

	return fmt.Sprintf("%s%s%s", spin, text, dots)
}

// renderStatusBar renders the bottom status bar with shortcuts
func (m Model) renderStatusBar(width int) string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"^A", "Apply"},
		{"^S", "Status"},
		{"^R", "Reset"},
		{"^Y", "Copy"},
		{"Esc", "Quit"},
	}

	var items []string
	for _, s := range shortcuts {
		item := lipgloss.JoinHorizontal(
			lipgloss.Center,
			statusKeyStyle.Render(s.key),
			statusDescStyle.Render(" "+s.desc),
		)
		items = append(items, item)
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(items, "  │  "))
	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(bar)
}

// updateViewport refreshes the viewport content with styled messages
func (m *Model) updateViewport() {
	var content strings.Builder
	bubbleWidth := m.viewport.Width - 6

	for i, msg := range m.messages {
		if i > 0 {
			content.WriteString("\n")
		}

		if msg.sender == models.SenderUser {
			label := userLabelStyle.Render("⬤ You")
			bubble := userBubbleStyle.Width(bubbleWidth).Render(msg.text)
			content.WriteString(label + "\n" + bubble)
		} else {
			label := botLabelStyle.Render("🏛 GovBot")

			rendered, err := render.ReplyWithWidth(msg.text, bubbleWidth-4)
			if err != nil {
				rendered = render.ReplyToMarkdown(msg.text)
			}
			rendered = strings.TrimRight(rendered, "\n")

			bubble := botBubbleStyle.Width(bubbleWidth).Render(rendered)
			content.WriteString(label + "\n" + bubble)
		}
		content.WriteString("\n")
	}

	// Singleton typing bubble, dropped again when the reply lands
	if m.typing {
		if len(m.messages) > 0 {
			content.WriteString("\n")
		}
		content.WriteString(typingStyle.Render("🏛 GovBot is typing…"))
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// RunChat starts the chat TUI
func RunChat(client api.PortalClientInterface) error {
	m := NewChatModel(client)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// RunChatWithTranscript starts the chat TUI with transcript recording
func RunChatWithTranscript(client api.PortalClientInterface, recorder TranscriptRecorder, transcriptID string) error {
	m := NewChatModelWithTranscript(client, recorder, transcriptID)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
