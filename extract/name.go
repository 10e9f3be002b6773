package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/skaranam/namartha"
)

// parseNameLines classifies the lines between the block header and the first
// section: the first Latin-initial line is the IAST form, the first
// non-Latin, non-marker, non-table line is the Devanagari form, and a verse
// marker anywhere in the name lines supplies the authoritative entry number.
// The marker may share a line with the Devanagari name; the stored name has
// the marker removed.
func parseNameLines(entry *namartha.NameEntry, lines []string) (int, bool) {
	number, hasNumber := 0, false
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if !hasNumber {
			if n, ok := namartha.VerseMarkerNumber(line); ok {
				number, hasNumber = n, true
			}
		}
		switch {
		case entry.Name.IAST == "" && startsWithLatin(line):
			entry.Name.IAST = line
		case entry.Name.Devanagari == "" && !startsWithLatin(line) &&
			!strings.HasPrefix(line, "|") && !isMarkerOnly(line):
			entry.Name.Devanagari = stripMarkers(line)
			entry.Name.Tokens = wordTokens(entry.Name.Devanagari)
		}
	}
	return number, hasNumber
}

func startsWithLatin(line string) bool {
	r, _ := utf8.DecodeRuneInString(line)
	return unicode.Is(unicode.Latin, r)
}

// isMarkerOnly reports whether the line carries no word at all (a bare verse
// marker, possibly with punctuation).
func isMarkerOnly(line string) bool {
	for _, seg := range namartha.Tokenize(line) {
		if seg.Kind == namartha.SegmentWord {
			return false
		}
	}
	return true
}

// stripMarkers removes verse-marker segments from a line.
func stripMarkers(line string) string {
	var b strings.Builder
	for _, seg := range namartha.Tokenize(line) {
		if seg.Kind != namartha.SegmentVerseMarker {
			b.WriteString(seg.Text)
		}
	}
	return strings.TrimSpace(b.String())
}

// wordTokens returns the word segments of a line.
func wordTokens(line string) []string {
	var tokens []string
	for _, seg := range namartha.Tokenize(line) {
		if seg.Kind == namartha.SegmentWord {
			tokens = append(tokens, seg.Text)
		}
	}
	return tokens
}
