package screens

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestRoot(t *testing.T) *RootScreen {
	t.Helper()
	root := NewRootScreen(loadedScreen(t))
	root.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return root
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestEscOpensExitDialog(t *testing.T) {
	root := newTestRoot(t)

	_, cmd := root.Update(key("esc"))
	assert.Nil(t, cmd)
	assert.True(t, root.confirm.Visible)

	view := root.View()
	assert.Contains(t, view, "Exit App")
	assert.Contains(t, view, "Are you sure you want to exit?")
}

func TestDialogNoKeepsScreen(t *testing.T) {
	root := newTestRoot(t)
	root.Update(key("esc"))

	_, cmd := root.Update(key("n"))
	assert.False(t, isQuit(cmd))
	assert.False(t, root.confirm.Visible)
	assert.False(t, root.characters.closed)

	root.Update(key("esc"))
	root.Update(key("esc"))
	assert.False(t, root.confirm.Visible, "esc dismisses an open dialog")
}

func TestDialogYesQuits(t *testing.T) {
	root := newTestRoot(t)
	root.Update(key("esc"))

	_, cmd := root.Update(key("y"))
	assert.True(t, isQuit(cmd))
	assert.True(t, root.characters.closed)
	assert.Equal(t, "", root.View())
}

func TestDialogEnterFollowsFocus(t *testing.T) {
	root := newTestRoot(t)

	root.Update(key("esc"))
	_, cmd := root.Update(key("enter"))
	assert.False(t, isQuit(cmd), "No is focused by default")
	assert.False(t, root.confirm.Visible)

	root.Update(key("esc"))
	root.Update(key("tab"))
	_, cmd = root.Update(key("enter"))
	assert.True(t, isQuit(cmd))
}

func TestDialogIsModal(t *testing.T) {
	root := newTestRoot(t)
	root.Update(key("esc"))

	root.Update(key("a"))
	root.Update(key("x"))

	assert.True(t, root.confirm.Visible)
	assert.Equal(t, "", root.characters.Query())
}

func TestCtrlCQuits(t *testing.T) {
	root := newTestRoot(t)

	_, cmd := root.Update(key("ctrl+c"))
	assert.True(t, isQuit(cmd))
	assert.True(t, root.characters.closed)
}

func TestRootForwardsToCharacters(t *testing.T) {
	root := newTestRoot(t)

	root.Update(key("snow"))
	assert.Equal(t, "snow", root.characters.Query())
	require.Len(t, root.characters.Visible(), 1)
	assert.Contains(t, root.View(), "Jon Snow")
}
