package namartha

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// danda is the Devanagari sentence-final punctuation mark (U+0964).
// A trailing run of dandas on a unit is punctuation, not part of the word.
const danda = "।"

// SegmentKind classifies a tokenized unit of verse text.
type SegmentKind string

// Segment kinds produced by Tokenize.
const (
	SegmentWord        SegmentKind = "word"
	SegmentPunctuation SegmentKind = "punctuation"
	SegmentVerseMarker SegmentKind = "verse_marker"
	SegmentSeparator   SegmentKind = "separator"
)

// Segment is one unit of a tokenized verse line. Concatenating the Text of
// all segments in emission order reproduces the source line exactly.
type Segment struct {
	Text string      `json:"text"`
	Kind SegmentKind `json:"kind"`
}

// verseMarkerRe matches a verse marker: a number (Devanagari or Arabic
// digits) flanked by double dandas, e.g. "॥ 12 ॥" or "॥१२॥".
var verseMarkerRe = regexp.MustCompile(`॥\s*([०-९0-9]+)\s*॥`)

// colophonRe matches the concluding colophon line of the hymn ("iti śrī ...
// sampūrṇam"). The colophon is rendered verbatim but never annotated.
var colophonRe = regexp.MustCompile(`^\s*॥?\s*इति\s+श्री.*सम्पूर्ण`)

// Tokenize splits one display line into an ordered sequence of segments.
// Verse markers are emitted as their own segments; the spans between them
// are split into whitespace-delimited units, with a trailing run of dandas
// on each unit emitted as punctuation after the word. Hyphens inside a unit
// denote compound joins and are preserved. An empty line yields no segments.
func Tokenize(line string) []Segment {
	if line == "" {
		return nil
	}

	var segs []Segment
	prev := 0
	for _, m := range verseMarkerRe.FindAllStringIndex(line, -1) {
		segs = append(segs, tokenizeSpan(line[prev:m[0]])...)
		segs = append(segs, Segment{Text: line[m[0]:m[1]], Kind: SegmentVerseMarker})
		prev = m[1]
	}
	return append(segs, tokenizeSpan(line[prev:])...)
}

// tokenizeSpan splits an ordinary (marker-free) span into word, punctuation,
// and separator segments. Separators carry the exact whitespace run from the
// source so the tokenization stays lossless.
func tokenizeSpan(span string) []Segment {
	var segs []Segment
	for span != "" {
		r, _ := utf8.DecodeRuneInString(span)
		if unicode.IsSpace(r) {
			end := strings.IndexFunc(span, func(r rune) bool { return !unicode.IsSpace(r) })
			if end == -1 {
				end = len(span)
			}
			segs = append(segs, Segment{Text: span[:end], Kind: SegmentSeparator})
			span = span[end:]
			continue
		}
		end := strings.IndexFunc(span, unicode.IsSpace)
		if end == -1 {
			end = len(span)
		}
		segs = append(segs, splitUnit(span[:end])...)
		span = span[end:]
	}
	return segs
}

// splitUnit strips a trailing run of dandas from a whitespace-delimited
// unit. A unit that is all punctuation produces no word segment.
func splitUnit(unit string) []Segment {
	word := strings.TrimRight(unit, danda)
	var segs []Segment
	if word != "" {
		segs = append(segs, Segment{Text: word, Kind: SegmentWord})
	}
	if len(word) < len(unit) {
		segs = append(segs, Segment{Text: unit[len(word):], Kind: SegmentPunctuation})
	}
	return segs
}

// VerseMarkerNumber extracts the verse number from the first verse marker in
// line. Devanagari digits are read at their Arabic values.
func VerseMarkerNumber(line string) (int, bool) {
	m := verseMarkerRe.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	n := 0
	for _, r := range m[1] {
		switch {
		case r >= '0' && r <= '9':
			n = n*10 + int(r-'0')
		case r >= '०' && r <= '९':
			n = n*10 + int(r-'०')
		}
	}
	return n, true
}

// IsColophon reports whether line is the concluding colophon of the hymn.
func IsColophon(line string) bool {
	return colophonRe.MatchString(line)
}
