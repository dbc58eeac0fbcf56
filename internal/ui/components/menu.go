package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/fractiz/internal/ui/theme"
)

// MenuItem is one entry of a Menu. Action runs on Enter.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list navigated with arrows or j/k.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu selects the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i, item := range items {
		if !item.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	switch kmsg.String() {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "enter", "space":
		return m, m.activate()
	}
	return m, nil
}

func (m *Menu) move(step int) {
	for i := m.Selected + step; i >= 0 && i < len(m.Items); i += step {
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

func (m Menu) activate() tea.Cmd {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return nil
	}
	item := m.Items[m.Selected]
	if item.Disabled || item.Action == nil {
		return nil
	}
	return item.Action()
}

func (m Menu) View() string {
	lines := make([]string, len(m.Items))
	for i, item := range m.Items {
		if i == m.Selected {
			lines[i] = theme.Selected.Render("▸ " + item.Label)
		} else {
			lines[i] = theme.Unselected.Render("  " + item.Label)
		}
	}
	return strings.Join(lines, "\n")
}
