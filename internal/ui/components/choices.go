package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fractiz/internal/catalog"
	"github.com/abhisek/fractiz/internal/ui/theme"
)

// Choices renders the options of a question with a cursor. Answer state
// belongs to the caller; Choices only tracks the cursor.
type Choices struct {
	Options  []catalog.Option
	Selected int

	// Filled shades the fraction bars.
	Filled bool

	// Chosen and Correct are set after an answer to colour the result.
	// -1 means not answered.
	Chosen  int
	Correct int
}

func NewChoices(options []catalog.Option) Choices {
	return Choices{Options: options, Chosen: -1, Correct: -1}
}

// Update moves the cursor on arrow keys.
func (c Choices) Update(msg tea.Msg) (Choices, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || c.Chosen >= 0 {
		return c, nil
	}
	switch kmsg.String() {
	case "up", "left", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "right", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	}
	return c, nil
}

// Reveal marks chosen and correct options.
func (c *Choices) Reveal(chosen, correct int) {
	c.Chosen = chosen
	c.Correct = correct
}

func (c Choices) View() string {
	var b strings.Builder
	for i, o := range c.Options {
		prefix := "  "
		if i == c.Selected && c.Chosen < 0 {
			prefix = "▸ "
		}
		label := fmt.Sprintf("%s%d)  %-6s", prefix, i+1, o.DisplayText)

		style := theme.Unselected
		switch {
		case c.Chosen >= 0 && i == c.Correct:
			style = theme.Correct
		case c.Chosen >= 0 && i == c.Chosen:
			style = theme.Incorrect
		case c.Chosen >= 0:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == c.Selected:
			style = theme.Selected
		}
		b.WriteString(style.Render(label))
		b.WriteString("  ")
		b.WriteString(FractionBar(o.Fraction, o.Visual, c.Filled))
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
