package installer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type channelChoice struct {
	label    string
	telegram bool
	web      bool
}

// ChannelStep selects which transports run.
type ChannelStep struct {
	choices []channelChoice
	cursor  int
}

func NewChannelStep() Step {
	return &ChannelStep{
		choices: []channelChoice{
			{label: "Telegram + web chat", telegram: true, web: true},
			{label: "Telegram only", telegram: true},
			{label: "Web chat only", web: true},
		},
	}
}

func (s *ChannelStep) Init() tea.Cmd {
	return nil
}

func (s *ChannelStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch key.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.choices)-1 {
			s.cursor++
		}
	case "enter":
		c := s.choices[s.cursor]
		state.Settings.EnableTelegram = fmt.Sprint(c.telegram)
		state.Settings.EnableWeb = fmt.Sprint(c.web)
		return nil, nil
	}
	return s, nil
}

func (s *ChannelStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString("Where should the bot answer customers?\n\n")
	for i, choice := range s.choices {
		if s.cursor == i {
			b.WriteString(selStyle.Render("❯ "+choice.label) + "\n")
		} else {
			b.WriteString(itemStyle.Render("  "+choice.label) + "\n")
		}
	}
	b.WriteString("\n" + hintStyle.Render("(press ctrl+c to quit)") + "\n")
	return b.String()
}
