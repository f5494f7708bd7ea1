package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/kerbaras/thrones/pkg/data"
	"github.com/kerbaras/thrones/pkg/sources"
)

var errNoSource = errors.New("no character source configured")

// CharacterController fetches the character feed and applies the name filter.
type CharacterController struct {
	source sources.Source
	logger *slog.Logger
}

func NewCharacterController(source sources.Source, logger *slog.Logger) *CharacterController {
	if logger == nil {
		logger = slog.Default()
	}
	return &CharacterController{
		source: source,
		logger: logger.With(slog.String("component", "services.CharacterController")),
	}
}

// FetchCharacters performs the single fetch. Every failure, including a
// cancelled ctx, collapses to a failed result; no partial list is returned.
func (c *CharacterController) FetchCharacters(ctx context.Context) FetchResult {
	if c.source == nil {
		return Failed(errNoSource)
	}

	characters, err := c.source.GetCharacters(ctx)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		c.logger.Error("failed to load characters", slog.Any("error", err))
		return Failed(err)
	}

	c.logger.Info("characters loaded", slog.Int("count", len(characters)))
	return Loaded(characters)
}

// Search fetches once and filters the result by name.
func (c *CharacterController) Search(ctx context.Context, query string) FetchResult {
	result := c.FetchCharacters(ctx)
	if result.Failed() {
		return result
	}
	return Loaded(data.FilterByName(result.Characters, query))
}
