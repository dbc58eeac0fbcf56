package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fractiz/internal/ui/theme"
)

// Button is a single pressable label.
type Button struct {
	Label   string
	Active  bool
	OnPress func() tea.Cmd
}

func NewButton(label string, active bool, onPress func() tea.Cmd) Button {
	return Button{Label: label, Active: active, OnPress: onPress}
}

func (b Button) Press() tea.Cmd {
	if b.OnPress == nil {
		return nil
	}
	return b.OnPress()
}

func (b Button) View() string {
	label := " " + b.Label + " "
	if b.Active {
		return theme.ButtonActive.Render("▸" + label)
	}
	return theme.ButtonInactive.Render(" " + label)
}

// Confirm is a yes/no prompt. y/n pick directly; arrows move between the
// buttons and Enter presses the active one. Yes starts inactive.
type Confirm struct {
	Question string
	yes, no  Button
}

func NewConfirm(question, yesLabel, noLabel string, onYes, onNo func() tea.Cmd) Confirm {
	return Confirm{
		Question: question,
		yes:      NewButton(yesLabel, false, onYes),
		no:       NewButton(noLabel, true, onNo),
	}
}

func (c Confirm) Update(msg tea.Msg) (Confirm, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c, nil
	}
	switch kmsg.String() {
	case "y":
		return c, c.yes.Press()
	case "n", "esc":
		return c, c.no.Press()
	case "left", "right", "h", "l", "tab":
		c.yes.Active, c.no.Active = c.no.Active, c.yes.Active
	case "enter":
		if c.yes.Active {
			return c, c.yes.Press()
		}
		return c, c.no.Press()
	}
	return c, nil
}

// YesActive reports whether Enter would confirm.
func (c Confirm) YesActive() bool {
	return c.yes.Active
}

func (c Confirm) View() string {
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, c.yes.View(), "   ", c.no.View())
	body := lipgloss.JoinVertical(lipgloss.Center, theme.Body.Render(c.Question), "", buttons)
	return theme.Card.Render(body)
}
