package app

import (
	"context"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/thrones/pkg/app/screens"
	"github.com/kerbaras/thrones/pkg/services"
)

type App struct {
	controller *services.CharacterController
	logger     *slog.Logger
}

func NewApp(controller *services.CharacterController, logger *slog.Logger) *App {
	return &App{controller: controller, logger: logger}
}

// Run shows the characters screen until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	screen := screens.NewCharactersScreen(ctx, a.controller, a.logger)
	defer screen.Close()

	model := screens.NewRootScreen(screen)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
