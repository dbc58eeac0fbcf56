// Package screen defines the contract every TUI screen implements.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/fractiz/internal/ui/layout"
)

type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body; the app draws header and footer around it.
	View(width, height int) string

	// Title is shown in the middle of the header.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider lets a screen put a short status on the right of the
// header, such as the running score.
type StatusProvider interface {
	Status() string
}
