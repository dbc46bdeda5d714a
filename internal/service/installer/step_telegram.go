package installer

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func newSecretInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = placeholder
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	return ti
}

// APIKeyStep collects the completion service key.
type APIKeyStep struct {
	input textinput.Model
	err   string
}

func NewAPIKeyStep() Step {
	return &APIKeyStep{input: newSecretInput("gsk_...")}
}

func (s *APIKeyStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *APIKeyStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		value := strings.TrimSpace(s.input.Value())
		if value == "" {
			s.err = "the API key is required"
			return s, nil
		}
		state.Settings.GroqAPIKey = value
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *APIKeyStep) View(state *InstallState) string {
	view := "Enter your Groq API key:\n\n" + s.input.View() + "\n\n"
	if s.err != "" {
		view += errorStyle.Render(s.err) + "\n\n"
	}
	return view + hintStyle.Render("(press enter to confirm)") + "\n"
}

// TelegramTokenStep collects the bot token. It is skipped when Telegram
// was not selected.
type TelegramTokenStep struct {
	input textinput.Model
	err   string
}

func NewTelegramTokenStep() Step {
	return &TelegramTokenStep{input: newSecretInput("123456789:ABCDEF...")}
}

func (s *TelegramTokenStep) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, next)
}

func (s *TelegramTokenStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if !state.TelegramEnabled() {
		return nil, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		value := strings.TrimSpace(s.input.Value())
		if !strings.Contains(value, ":") {
			s.err = "a bot token looks like 123456789:ABCDEF..."
			return s, nil
		}
		state.Settings.TelegramToken = value
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *TelegramTokenStep) View(state *InstallState) string {
	view := "Enter your Telegram bot token (from @BotFather):\n\n" + s.input.View() + "\n\n"
	if s.err != "" {
		view += errorStyle.Render(s.err) + "\n\n"
	}
	return view + hintStyle.Render("(press enter to confirm)") + "\n"
}
