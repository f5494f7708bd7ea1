package screens

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/thrones/pkg/app/components"
	"github.com/kerbaras/thrones/pkg/app/styles"
	"github.com/kerbaras/thrones/pkg/data"
	"github.com/kerbaras/thrones/pkg/services"
)

// State is the load state of a characters screen. Loading moves to Loaded
// or Failed exactly once; both are terminal for the screen.
type State int

const (
	Loading State = iota
	Loaded
	Failed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

const loadErrorMessage = "Unable to load data. Check your internet connection."

var visits atomic.Uint64

type CharactersScreen struct {
	controller *services.CharacterController
	logger     *slog.Logger

	// ctx bounds the background fetch; Close cancels it.
	ctx     context.Context
	cancel  context.CancelFunc
	visit   uint64
	started bool
	closed  bool

	state      State
	characters []data.Character
	input      textinput.Model
	spinner    spinner.Model
	list       *components.CharacterList
	width      int
	height     int
}

func NewCharactersScreen(parent context.Context, controller *services.CharacterController, logger *slog.Logger) *CharactersScreen {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(parent)

	ti := textinput.New()
	ti.Placeholder = "Search"
	ti.CharLimit = 100
	ti.Width = 50

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.StatusLoading

	return &CharactersScreen{
		controller: controller,
		logger:     logger.With(slog.String("component", "screens.CharactersScreen")),
		ctx:        ctx,
		cancel:     cancel,
		visit:      visits.Add(1),
		state:      Loading,
		input:      ti,
		spinner:    sp,
		list:       components.NewCharacterList(),
	}
}

// Init starts the one fetch of this screen. Later calls do nothing.
func (s *CharactersScreen) Init() tea.Cmd {
	if s.started {
		return nil
	}
	s.started = true
	return tea.Batch(s.spinner.Tick, s.loadCharacters())
}

// Close cancels an in-flight fetch. A result that still arrives afterwards
// is dropped by Update.
func (s *CharactersScreen) Close() {
	s.closed = true
	s.cancel()
}

func (s *CharactersScreen) State() State {
	return s.state
}

func (s *CharactersScreen) Query() string {
	return s.input.Value()
}

// Visible returns the characters currently listed: the loaded list filtered
// by the query, or nil when nothing is loaded.
func (s *CharactersScreen) Visible() []data.Character {
	if s.state != Loaded {
		return nil
	}
	return s.list.Items
}

func (s *CharactersScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.input.Width = max(msg.Width-8, 10)
		s.list.Width = msg.Width
		// header, search box and help line
		s.list.Height = max(msg.Height-8, 0)
		return s, nil

	case spinner.TickMsg:
		if s.state != Loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case charactersLoadedMsg:
		return s, s.applyResult(msg)

	case tea.MouseMsg:
		if s.state == Loaded && msg.Action == tea.MouseActionPress {
			switch msg.Button {
			case tea.MouseButtonWheelUp:
				s.list.Prev()
			case tea.MouseButtonWheelDown:
				s.list.Next()
			}
		}
		return s, nil

	case tea.KeyMsg:
		// the search box is disabled until the fetch resolves
		if s.state == Loading {
			return s, nil
		}

		switch msg.String() {
		case "up":
			s.list.Prev()
			return s, nil
		case "down":
			s.list.Next()
			return s, nil
		case "pgup":
			s.list.PageUp()
			return s, nil
		case "pgdown":
			s.list.PageDown()
			return s, nil
		}
	}

	if !s.input.Focused() {
		return s, nil
	}

	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() != before {
		s.applyFilter()
	}
	return s, cmd
}

func (s *CharactersScreen) applyResult(msg charactersLoadedMsg) tea.Cmd {
	if s.closed || msg.visit != s.visit || s.state != Loading {
		s.logger.Debug("discarding stale fetch result",
			slog.Uint64("visit", msg.visit),
			slog.Bool("closed", s.closed),
		)
		return nil
	}

	if msg.result.Failed() {
		s.state = Failed
		s.characters = nil
	} else {
		s.state = Loaded
		s.characters = msg.result.Characters
		s.applyFilter()
	}
	s.logger.Debug("fetch resolved", slog.String("state", s.state.String()))

	return s.input.Focus()
}

func (s *CharactersScreen) applyFilter() {
	if s.state != Loaded {
		return
	}
	s.list.SetItems(data.FilterByName(s.characters, s.input.Value()))
}

func (s *CharactersScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.HeaderStyle.Width(s.width).Render("Game of Thrones")

	inputStyle := styles.InputStyle
	if s.input.Focused() {
		inputStyle = styles.FocusedInputStyle
	}
	inputView := inputStyle.Width(max(s.width-4, 12)).Render(s.input.View())

	var body string
	switch s.state {
	case Loading:
		body = lipgloss.PlaceHorizontal(s.width, lipgloss.Center,
			s.spinner.View()+" "+styles.StatusLoading.Render("Loading characters..."))
	case Failed:
		body = lipgloss.PlaceHorizontal(s.width, lipgloss.Center,
			styles.StatusError.Render(loadErrorMessage))
	case Loaded:
		body = s.list.View()
	}

	help := styles.HelpStyle.Render("type to search • ↑/↓ pgup/pgdn: scroll • esc: exit")

	return fmt.Sprintf("%s\n%s\n%s\n%s", header, inputView, body, help)
}

// Messages
type charactersLoadedMsg struct {
	visit  uint64
	result services.FetchResult
}

// Commands
func (s *CharactersScreen) loadCharacters() tea.Cmd {
	ctx, controller, visit := s.ctx, s.controller, s.visit
	return func() tea.Msg {
		return charactersLoadedMsg{visit: visit, result: controller.FetchCharacters(ctx)}
	}
}
