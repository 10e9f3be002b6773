// Package goquery parses commentary source pages into glossaries using CSS
// selection.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/skaranam/namartha"
)

// Ensure Parser implements namartha.SourceParser at compile time.
var _ namartha.SourceParser = (*Parser)(nil)

// Parser extracts term/commentary pairs from commentary pages. It
// understands the two layouts the archives use: definition lists (each dt
// is a name, the following dd its commentary) and two-column tables (first
// cell name, second cell commentary). Entries keep document order, which
// the resolver relies on for its fallback scan.
type Parser struct {
	converter namartha.Converter
}

// NewParser creates a new Parser. The converter renders each commentary
// body as markdown; when nil, plain text is used.
func NewParser(converter namartha.Converter) *Parser {
	return &Parser{converter: converter}
}

// ParseSource parses a commentary page into a Source with the given name.
func (p *Parser) ParseSource(html, name string) (*namartha.Source, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, namartha.Errorf(namartha.EINVALID, "failed to parse HTML: %v", err)
	}

	var glosses []namartha.Gloss

	doc.Find("dl dt").Each(func(_ int, dt *goquery.Selection) {
		term := strings.TrimSpace(dt.Text())
		if term == "" {
			return
		}
		dd := dt.NextFiltered("dd")
		if dd.Length() == 0 {
			return
		}
		glosses = append(glosses, namartha.Gloss{Term: term, Text: p.renderBody(dd)})
	})

	doc.Find("table tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() < 2 {
			return
		}
		term := strings.TrimSpace(cells.First().Text())
		if term == "" {
			return
		}
		glosses = append(glosses, namartha.Gloss{Term: term, Text: p.renderBody(cells.Eq(1))})
	})

	if len(glosses) == 0 {
		return nil, namartha.Errorf(namartha.EINVALID, "no commentary entries found in %s", name)
	}

	return namartha.NewSource(name, glosses), nil
}

// renderBody renders an entry's commentary cell, falling back to plain text
// when no converter is configured or conversion fails.
func (p *Parser) renderBody(sel *goquery.Selection) string {
	text := strings.TrimSpace(sel.Text())
	if p.converter == nil {
		return text
	}
	inner, err := sel.Html()
	if err != nil {
		return text
	}
	markdown, err := p.converter.Convert(inner)
	if err != nil {
		return text
	}
	return strings.TrimSpace(markdown)
}
