package mock

import (
	"context"

	"github.com/skaranam/namartha"
)

var _ namartha.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of namartha.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
