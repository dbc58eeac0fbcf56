package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette. Warm pastels, picked to read well on dark terminals.
var (
	Primary   = lipgloss.Color("#F472B6") // Pink
	Secondary = lipgloss.Color("#38BDF8") // Sky
	Accent    = lipgloss.Color("#FBBF24") // Honey
	Success   = lipgloss.Color("#4ADE80") // Green
	Error     = lipgloss.Color("#FB7185") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Fraction visuals. Each visual type gets its own fill colour.
var (
	VisualCircle    = lipgloss.Color("#F59E0B") // Cake
	VisualRectangle = lipgloss.Color("#A16207") // Chocolate
	VisualLiquid    = lipgloss.Color("#F97316") // Juice
)

// Text styles.
var (
	// Prompt is the question text on the game screen.
	Prompt = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)

	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(Accent)

	Body = lipgloss.NewStyle().Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(Secondary).
		Italic(true)
)

var Card = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Primary).
	Padding(1, 3)

// Option and answer states.
var (
	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)
	Correct    = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect  = lipgloss.NewStyle().Foreground(Error).Bold(true).Strikethrough(true)
)

var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 1)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Padding(0, 1)
)
