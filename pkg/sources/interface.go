package sources

import (
	"context"

	"github.com/kerbaras/thrones/pkg/data"
)

type Source interface {
	GetCharacters(ctx context.Context) ([]data.Character, error)
}
