package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kerbaras/thrones/pkg/data"
	"github.com/kerbaras/thrones/pkg/sources"
	"github.com/kerbaras/thrones/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type mockSource struct {
	getCharactersFunc func(ctx context.Context) ([]data.Character, error)
}

func (m *mockSource) GetCharacters(ctx context.Context) ([]data.Character, error) {
	if m.getCharactersFunc != nil {
		return m.getCharactersFunc(ctx)
	}
	return nil, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCharacters() []data.Character {
	return []data.Character{
		{Name: "Jon Snow"},
		{Name: "Eddard Stark"},
		{Name: "Arya Stark"},
		{Name: "Daenerys Targaryen"},
	}
}

func TestNewCharacterController(t *testing.T) {
	controller := NewCharacterController(&mockSource{}, nil)
	require.NotNil(t, controller)
	assert.NotNil(t, controller.logger)
	assert.NotNil(t, controller.source)
}

func TestFetchCharactersLoaded(t *testing.T) {
	controller := NewCharacterController(&mockSource{
		getCharactersFunc: func(ctx context.Context) ([]data.Character, error) {
			return testCharacters(), nil
		},
	}, quietLogger())

	result := controller.FetchCharacters(context.Background())
	assert.False(t, result.Failed())
	assert.NoError(t, result.Err)
	assert.Equal(t, testCharacters(), result.Characters)
}

func TestFetchCharactersNilListIsEmpty(t *testing.T) {
	controller := NewCharacterController(&mockSource{}, quietLogger())

	result := controller.FetchCharacters(context.Background())
	assert.False(t, result.Failed())
	assert.NotNil(t, result.Characters)
	assert.Empty(t, result.Characters)
}

func TestFetchCharactersSourceError(t *testing.T) {
	sourceErr := errors.New("boom")
	controller := NewCharacterController(&mockSource{
		getCharactersFunc: func(ctx context.Context) ([]data.Character, error) {
			return testCharacters()[:1], sourceErr
		},
	}, quietLogger())

	result := controller.FetchCharacters(context.Background())
	assert.True(t, result.Failed())
	assert.ErrorIs(t, result.Err, sourceErr)
	assert.Nil(t, result.Characters, "no partial results on failure")
}

func TestFetchCharactersNoSource(t *testing.T) {
	controller := NewCharacterController(nil, quietLogger())

	result := controller.FetchCharacters(context.Background())
	assert.True(t, result.Failed())
	assert.ErrorIs(t, result.Err, errNoSource)
}

func TestFetchCharactersCancelled(t *testing.T) {
	controller := NewCharacterController(&mockSource{
		getCharactersFunc: func(ctx context.Context) ([]data.Character, error) {
			return testCharacters(), nil
		},
	}, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := controller.FetchCharacters(ctx)
	assert.True(t, result.Failed())
	assert.ErrorIs(t, result.Err, context.Canceled)
}

// Every HTTP failure mode ends up as the same failed result.
func TestFetchCharactersHTTPFailures(t *testing.T) {
	closed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	closedURL := closed.URL
	closed.Close()

	tests := []struct {
		name    string
		handler http.HandlerFunc
		baseURL string
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
		{
			name: "unauthorized",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
		},
		{
			name: "absent body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"not":"a list"}`))
			},
		},
		{
			name:    "network error",
			baseURL: closedURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseURL := tt.baseURL
			if tt.handler != nil {
				srv := httptest.NewServer(tt.handler)
				defer srv.Close()
				baseURL = srv.URL
			}

			api := utils.NewAPI(baseURL, utils.WithBearerToken("token"), utils.WithLogger(quietLogger()))
			controller := NewCharacterController(sources.NewThronesAPI(api), quietLogger())

			result := controller.FetchCharacters(context.Background())
			assert.True(t, result.Failed())
			assert.Nil(t, result.Characters)
		})
	}
}

func TestFetchCharactersHTTPLoaded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"name":"Arya Stark","gender":"Female","culture":"Northmen","born":"In 289 AC","died":"","aliases":["Arry","Weasel"],"tvSeries":["Season 1","Season 2"],"playedBy":["Maisie Williams"]}]`))
	}))
	defer srv.Close()

	api := utils.NewAPI(srv.URL, utils.WithBearerToken("token"), utils.WithLogger(quietLogger()))
	controller := NewCharacterController(sources.NewThronesAPI(api), quietLogger())

	result := controller.FetchCharacters(context.Background())
	require.False(t, result.Failed(), "unexpected error: %v", result.Err)
	assert.Equal(t, Loaded([]data.Character{{
		Name:     "Arya Stark",
		Gender:   "Female",
		Culture:  "Northmen",
		Born:     "In 289 AC",
		Died:     "",
		Aliases:  []string{"Arry", "Weasel"},
		TVSeries: []string{"Season 1", "Season 2"},
		PlayedBy: []string{"Maisie Williams"},
	}}), result)
}

func TestSearch(t *testing.T) {
	controller := NewCharacterController(&mockSource{
		getCharactersFunc: func(ctx context.Context) ([]data.Character, error) {
			return testCharacters(), nil
		},
	}, quietLogger())

	t.Run("filters by name", func(t *testing.T) {
		result := controller.Search(context.Background(), "stark")
		require.False(t, result.Failed())
		assert.Equal(t, []data.Character{{Name: "Eddard Stark"}, {Name: "Arya Stark"}}, result.Characters)
	})

	t.Run("no match is empty", func(t *testing.T) {
		result := controller.Search(context.Background(), "zzz")
		require.False(t, result.Failed())
		assert.Empty(t, result.Characters)
		assert.NotNil(t, result.Characters)
	})

	t.Run("empty query returns all", func(t *testing.T) {
		result := controller.Search(context.Background(), "")
		require.False(t, result.Failed())
		assert.Len(t, result.Characters, 4)
	})
}

func TestSearchFailure(t *testing.T) {
	controller := NewCharacterController(&mockSource{
		getCharactersFunc: func(ctx context.Context) ([]data.Character, error) {
			return nil, errors.New("offline")
		},
	}, quietLogger())

	result := controller.Search(context.Background(), "snow")
	assert.True(t, result.Failed())
}

func TestFetchResult(t *testing.T) {
	assert.False(t, Loaded(nil).Failed())
	assert.Equal(t, []data.Character{}, Loaded(nil).Characters)
	assert.True(t, Failed(errors.New("x")).Failed())
}
