package mock

import "github.com/skaranam/namartha"

var _ namartha.SourceParser = (*SourceParser)(nil)

// SourceParser is a mock implementation of namartha.SourceParser.
type SourceParser struct {
	ParseSourceFn func(html, name string) (*namartha.Source, error)
}

func (p *SourceParser) ParseSource(html, name string) (*namartha.Source, error) {
	return p.ParseSourceFn(html, name)
}
