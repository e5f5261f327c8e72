package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette built around the BIOFIT brand green.
var (
	Primary      = lipgloss.Color("#00965E") // BIOFIT green
	Secondary    = lipgloss.Color("#34D399") // Mint
	Accent       = lipgloss.Color("#F59E0B") // Amber
	ArcadeYellow = lipgloss.Color("#FACC15") // Gold
	Success      = lipgloss.Color("#22C55E") // Green
	Error        = lipgloss.Color("#E11D48") // Rose
	Text         = lipgloss.Color("#F8FAFC") // White
	TextDim      = lipgloss.Color("#94A3B8") // Slate
	BgDark       = lipgloss.Color("#052E1C") // Deep green
	BgCard       = lipgloss.Color("#0B3D2A") // Dark green
	Border       = lipgloss.Color("#1F6B4A") // Moss
)

// ModuleColors gives each training module its own accent.
var ModuleColors = map[string]color.Color{
	"true-false": lipgloss.Color("#3B82F6"),
	"match":      lipgloss.Color("#F59E0B"),
	"scenario":   lipgloss.Color("#E11D48"),
	"trivia":     lipgloss.Color("#9333EA"),
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Locked = lipgloss.NewStyle().
		Foreground(TextDim)
)

// Components
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
