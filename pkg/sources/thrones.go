package sources

import (
	"context"

	"github.com/kerbaras/thrones/pkg/data"
	"github.com/kerbaras/thrones/pkg/utils"
)

// DefaultBaseURL hosts the /characters feed.
const DefaultBaseURL = "https://yj8ke8qonl.execute-api.eu-west-1.amazonaws.com"

type ThronesAPI struct {
	api *utils.API
}

func NewThronesAPI(api *utils.API) *ThronesAPI {
	return &ThronesAPI{api: api}
}

func (t *ThronesAPI) GetCharacters(ctx context.Context) ([]data.Character, error) {
	var characters []data.Character
	if err := t.api.Get(ctx, "/characters", nil, &characters); err != nil {
		return nil, err
	}
	return characters, nil
}
