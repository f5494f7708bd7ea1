package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/thrones/pkg/app/styles"
)

// ConfirmDialog is a modal Yes/No prompt. The owning screen routes keys to
// it while Visible is set.
type ConfirmDialog struct {
	Title   string
	Prompt  string
	Visible bool
	yes     bool
}

func NewConfirmDialog(title, prompt string) *ConfirmDialog {
	return &ConfirmDialog{Title: title, Prompt: prompt}
}

// Show opens the dialog with "No" focused.
func (d *ConfirmDialog) Show() {
	d.Visible = true
	d.yes = false
}

func (d *ConfirmDialog) Hide() {
	d.Visible = false
}

// Toggle moves focus between the two buttons.
func (d *ConfirmDialog) Toggle() {
	d.yes = !d.yes
}

// Confirmed reports whether "Yes" is focused.
func (d *ConfirmDialog) Confirmed() bool {
	return d.yes
}

func (d *ConfirmDialog) View() string {
	yes, no := styles.ButtonStyle, styles.ActiveButtonStyle
	if d.yes {
		yes, no = styles.ActiveButtonStyle, styles.ButtonStyle
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top, yes.Render("Yes"), "  ", no.Render("No"))

	return styles.DialogStyle.Render(lipgloss.JoinVertical(
		lipgloss.Center,
		styles.TitleStyle.Render(d.Title),
		"",
		styles.TextStyle.Render(d.Prompt),
		"",
		buttons,
	))
}
