package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	Primary    = lipgloss.Color("#E8C872")
	Secondary  = lipgloss.Color("#8FA3BF")
	Error      = lipgloss.Color("#F07178")
	Info       = lipgloss.Color("#82AAFF")
	Muted      = lipgloss.Color("#6B7785")
	Surface    = lipgloss.Color("#1A1A1A")
	Input      = lipgloss.Color("#2C2C2C")
	Foreground = lipgloss.Color("#F5F5F5")
	Subtle     = lipgloss.Color("#BDBDBD")

	// Border styles
	RoundedBorder = lipgloss.RoundedBorder()
	ThickBorder   = lipgloss.ThickBorder()
)

// Base styles
var (
	// Top bar
	HeaderStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Surface).
			Bold(true).
			Align(lipgloss.Center).
			Padding(0, 1)

	// Character name on a card
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	TextStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	// Label of an info row ("Culture:")
	LabelStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Bold(true)

	// Value of an info row
	ValueStyle = lipgloss.NewStyle().
			Foreground(Subtle)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	CardStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Secondary).
			Padding(0, 1)

	ActiveCardStyle = lipgloss.NewStyle().
			Border(ThickBorder).
			BorderForeground(Primary).
			Padding(0, 1)

	StatusLoading = lipgloss.NewStyle().
			Foreground(Info).
			Bold(true)

	StatusError = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			MarginTop(1)

	InputStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Input).
			Padding(0, 1)

	FocusedInputStyle = lipgloss.NewStyle().
				Border(RoundedBorder).
				BorderForeground(Primary).
				Padding(0, 1)

	DialogStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Primary).
			Background(Surface).
			Padding(1, 3)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(Subtle).
			Padding(0, 2)

	ActiveButtonStyle = lipgloss.NewStyle().
				Foreground(Surface).
				Background(Primary).
				Bold(true).
				Padding(0, 2)
)
