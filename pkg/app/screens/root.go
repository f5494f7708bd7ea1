package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/thrones/pkg/app/components"
)

// RootScreen hosts the characters screen and the exit confirmation that the
// back action (esc) opens.
type RootScreen struct {
	characters *CharactersScreen
	confirm    *components.ConfirmDialog

	quitting bool
	width    int
	height   int
}

func NewRootScreen(characters *CharactersScreen) *RootScreen {
	return &RootScreen{
		characters: characters,
		confirm:    components.NewConfirmDialog("Exit App", "Are you sure you want to exit?"),
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.characters.Init()
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return r, r.quit()
		}

		if r.confirm.Visible {
			switch msg.String() {
			case "left", "right", "tab", "shift+tab", "h", "l":
				r.confirm.Toggle()
			case "y":
				return r, r.quit()
			case "n", "esc":
				r.confirm.Hide()
			case "enter":
				if r.confirm.Confirmed() {
					return r, r.quit()
				}
				r.confirm.Hide()
			}
			// the dialog is modal
			return r, nil
		}

		if msg.String() == "esc" {
			r.confirm.Show()
			return r, nil
		}
	}

	newModel, cmd := r.characters.Update(msg)
	r.characters = newModel.(*CharactersScreen)
	return r, cmd
}

func (r *RootScreen) View() string {
	if r.quitting {
		return ""
	}
	if r.confirm.Visible && r.width > 0 {
		return lipgloss.Place(r.width, r.height, lipgloss.Center, lipgloss.Center, r.confirm.View())
	}
	return r.characters.View()
}

// quit tears the characters screen down before leaving, so a fetch that is
// still running is cancelled and its result ignored.
func (r *RootScreen) quit() tea.Cmd {
	r.quitting = true
	r.confirm.Hide()
	r.characters.Close()
	return tea.Quit
}
