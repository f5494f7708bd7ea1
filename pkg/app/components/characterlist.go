package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/thrones/pkg/app/styles"
	"github.com/kerbaras/thrones/pkg/data"
)

// cardHeight is the number of terminal lines one rendered card occupies:
// name, three info rows and the top and bottom border.
const cardHeight = 6

const seasonsWidth = 22

type CharacterList struct {
	Items         []data.Character
	SelectedIndex int
	Offset        int
	Width         int
	Height        int
}

func NewCharacterList() *CharacterList {
	return &CharacterList{
		Items:         []data.Character{},
		SelectedIndex: 0,
		Width:         80,
		Height:        24,
	}
}

// SetItems replaces the visible characters and moves the cursor back to the
// top, since the previous selection may no longer be in the list.
func (l *CharacterList) SetItems(items []data.Character) {
	l.Items = items
	l.SelectedIndex = 0
	l.Offset = 0
}

func (l *CharacterList) Next() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex++
	if l.SelectedIndex >= len(l.Items) {
		l.SelectedIndex = 0
	}
	l.follow()
}

func (l *CharacterList) Prev() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex--
	if l.SelectedIndex < 0 {
		l.SelectedIndex = len(l.Items) - 1
	}
	l.follow()
}

// PageDown and PageUp move by one screenful without wrapping.
func (l *CharacterList) PageDown() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex = min(l.SelectedIndex+l.visibleCount(), len(l.Items)-1)
	l.follow()
}

func (l *CharacterList) PageUp() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex = max(l.SelectedIndex-l.visibleCount(), 0)
	l.follow()
}

func (l *CharacterList) Selected() *data.Character {
	if len(l.Items) == 0 || l.SelectedIndex >= len(l.Items) {
		return nil
	}
	return &l.Items[l.SelectedIndex]
}

func (l *CharacterList) visibleCount() int {
	return max(1, l.Height/cardHeight)
}

// follow scrolls just enough to keep the selection on screen.
func (l *CharacterList) follow() {
	visible := l.visibleCount()
	if l.SelectedIndex < l.Offset {
		l.Offset = l.SelectedIndex
	}
	if l.SelectedIndex >= l.Offset+visible {
		l.Offset = l.SelectedIndex - visible + 1
	}
}

func (l *CharacterList) View() string {
	if len(l.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render("No characters match your search")
		return lipgloss.Place(l.Width, min(l.Height, 3), lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	end := min(l.Offset+l.visibleCount(), len(l.Items))

	var b strings.Builder
	for i := l.Offset; i < end; i++ {
		b.WriteString(l.renderCard(l.Items[i], i == l.SelectedIndex))
		b.WriteString("\n")
	}

	if len(l.Items) > end-l.Offset {
		b.WriteString(styles.MutedStyle.Render(
			fmt.Sprintf("Showing %d-%d of %d characters", l.Offset+1, end, len(l.Items)),
		))
	}

	return b.String()
}

func (l *CharacterList) renderCard(c data.Character, active bool) string {
	cardStyle := styles.CardStyle
	if active {
		cardStyle = styles.ActiveCardStyle
	}

	// lipgloss widths include padding but not the border
	inner := max(l.Width-2, seasonsWidth+12)
	infoWidth := inner - 2 - seasonsWidth

	info := lipgloss.NewStyle().Width(infoWidth).Render(lipgloss.JoinVertical(
		lipgloss.Left,
		styles.TitleStyle.Render(truncate(c.Name, infoWidth)),
		infoRow("Culture:", c.Culture, infoWidth),
		infoRow("Born:", c.Born, infoWidth),
		infoRow("Died:", c.Died, infoWidth),
	))

	seasons := lipgloss.NewStyle().Width(seasonsWidth).Render(lipgloss.JoinVertical(
		lipgloss.Left,
		styles.LabelStyle.Render("Seasons:"),
		styles.MutedStyle.Render(truncate(data.SeasonNumerals(c.TVSeries), seasonsWidth)),
	))

	return cardStyle.Width(inner).Render(lipgloss.JoinHorizontal(lipgloss.Top, info, seasons))
}

func infoRow(label, value string, width int) string {
	value = truncate(value, max(width-len(label)-1, 1))
	return styles.LabelStyle.Render(label) + " " + styles.ValueStyle.Render(value)
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}
