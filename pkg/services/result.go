package services

import "github.com/kerbaras/thrones/pkg/data"

// FetchResult is the outcome of one fetch. Callers only branch on Failed;
// Err is kept so the cause can be logged.
type FetchResult struct {
	Characters []data.Character
	Err        error
}

func Loaded(characters []data.Character) FetchResult {
	if characters == nil {
		characters = []data.Character{}
	}
	return FetchResult{Characters: characters}
}

func Failed(err error) FetchResult {
	return FetchResult{Err: err}
}

func (r FetchResult) Failed() bool {
	return r.Err != nil
}
