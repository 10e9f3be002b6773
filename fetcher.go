package namartha

import "context"

// Fetcher retrieves commentary pages from remote sources.
type Fetcher interface {
	// Fetch retrieves the page body at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
