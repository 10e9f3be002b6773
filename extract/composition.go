package extract

import (
	"regexp"
	"strings"

	"github.com/skaranam/namartha"
)

var (
	wordByWordMarkerRe = regexp.MustCompile(`^\*\*Word-by-word meaning\*\*`)
	wordMeaningRe      = regexp.MustCompile(`^[*-]\s+\*\*(.+?)\*\*\s*[—–-]+\s*(.*)$`)
)

// parseComposition splits a COMPOSITIONS section at the word-by-word
// marker: everything before is free prose concatenated into the summary,
// everything after is "* **word** — meaning" bullets.
func parseComposition(lines []string) namartha.Composition {
	var composition namartha.Composition
	var summary []string
	afterMarker := false
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if wordByWordMarkerRe.MatchString(line) {
			afterMarker = true
			continue
		}
		if !afterMarker {
			summary = append(summary, line)
			continue
		}
		if m := wordMeaningRe.FindStringSubmatch(line); m != nil {
			composition.WordByWord = append(composition.WordByWord, namartha.WordMeaning{
				Compound: m[1],
				Meaning:  strings.TrimSpace(m[2]),
			})
		}
	}
	composition.Summary = strings.Join(summary, " ")
	return composition
}
