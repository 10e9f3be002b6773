package namartha

import (
	"regexp"
	"strings"
)

// BreakdownMap maps a surface word (exact string, including internal
// hyphens) to the ordered components of its annotated compound breakdown.
// It is built per line and discarded once the line's segments are produced.
type BreakdownMap map[string][]string

// breakdownRe matches a bracket-breakdown annotation: a word, one or more
// spaces, a bracketed group of +-separated components, and an optional
// parenthesized name number, e.g. "निजारुण [निज + अरुण](48)".
var breakdownRe = regexp.MustCompile(`(\S+)\s+\[([^\[\]]*)\](?:\(\d+\))?`)

// ExtractBreakdowns locates bracket-breakdown annotations in a verse line,
// records each word's component list, and returns the line with the
// annotations removed, leaving the bare words in place. It must run before
// Tokenize on the same line.
//
// A word key is the annotated token with trailing dandas trimmed, matching
// the word segment Tokenize produces for it. An annotation whose component
// list is empty after trimming is removed from the line but records no
// breakdown. If the same word is annotated twice on one line the later
// annotation wins.
func ExtractBreakdowns(line string) (string, BreakdownMap) {
	breakdowns := make(BreakdownMap)
	cleaned := breakdownRe.ReplaceAllStringFunc(line, func(match string) string {
		sub := breakdownRe.FindStringSubmatch(match)
		word := strings.TrimRight(sub[1], danda+"॥")
		if components := splitComponents(sub[2]); len(components) > 0 {
			breakdowns[word] = components
		}
		return sub[1]
	})
	return cleaned, breakdowns
}

// splitComponents splits a bracket interior on "+", trimming surrounding
// whitespace and discarding empty components.
func splitComponents(interior string) []string {
	var components []string
	for _, c := range strings.Split(interior, "+") {
		if c = strings.TrimSpace(c); c != "" {
			components = append(components, c)
		}
	}
	return components
}
