package namartha

// Converter converts HTML to Markdown. Scraped commentary bodies are stored
// as markdown so commentary text is uniform across sources.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}
