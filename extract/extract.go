// Package extract parses the name-corpus markdown into structured entries.
//
// The corpus is a sequence of "# NAME <n>" blocks, each holding name lines,
// a root-breakdown table, etymology prose, a composition summary, and one or
// more commentary sections. This is a section scanner over a fixed header
// vocabulary, not a general markdown parser: each block is sliced at its
// "##" headers and each slice goes to a dedicated section parser.
//
// Extraction is best-effort. A malformed section degrades that entry's field
// to its zero value; structural inconsistencies are recorded on the entry as
// data; nothing aborts the rest of the corpus.
package extract

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/skaranam/namartha"
)

var (
	blockStartRe  = regexp.MustCompile(`^#\s+[^#]`)
	blockHeaderRe = regexp.MustCompile(`^#\s+NAME\s+(\d+)\s*$`)
	sectionRe     = regexp.MustCompile(`^##\s+([^#].*?)\s*$`)
)

type sectionKind int

const (
	sectionUnknown sectionKind = iota
	sectionRootBreakdown
	sectionEtymology
	sectionCompositions
	sectionCommentary
	sectionCommentaries
)

// classifySection maps a "##" header title to its kind and parenthesized
// label, e.g. "COMMENTARY (Bhaskararaya)" -> (sectionCommentary,
// "Bhaskararaya").
func classifySection(title string) (sectionKind, string) {
	label := ""
	if i := strings.Index(title, "("); i >= 0 {
		if j := strings.LastIndex(title, ")"); j > i {
			label = strings.TrimSpace(title[i+1 : j])
		}
	}
	switch upper := strings.ToUpper(title); {
	case strings.HasPrefix(upper, "ROOT BREAKDOWN"):
		return sectionRootBreakdown, label
	case strings.HasPrefix(upper, "ETYMOLOGY"):
		return sectionEtymology, label
	case strings.HasPrefix(upper, "COMPOSITION"):
		return sectionCompositions, label
	case strings.HasPrefix(upper, "COMMENTARIES"):
		return sectionCommentaries, label
	case strings.HasPrefix(upper, "COMMENTARY"):
		return sectionCommentary, label
	}
	return sectionUnknown, label
}

// Extract parses a markdown corpus into structured entries, sorted by entry
// number ascending. Entries without a parsed number sort first.
func Extract(corpus string) []*namartha.NameEntry {
	blocks := splitBlocks(corpus)
	entries := make([]*namartha.NameEntry, 0, len(blocks))
	for _, block := range blocks {
		entries = append(entries, parseBlock(block))
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].EntryNumber < entries[j].EntryNumber
	})
	return entries
}

// splitBlocks slices the corpus at top-level "#" headers. Lines before the
// first header are ignored.
func splitBlocks(corpus string) [][]string {
	var blocks [][]string
	var current []string
	for _, line := range strings.Split(corpus, "\n") {
		if blockStartRe.MatchString(line) {
			if current != nil {
				blocks = append(blocks, current)
			}
			current = []string{line}
			continue
		}
		if current != nil {
			current = append(current, line)
		}
	}
	if current != nil {
		blocks = append(blocks, current)
	}
	return blocks
}

type section struct {
	kind  sectionKind
	label string
	start int
	end   int
}

func parseBlock(block []string) *namartha.NameEntry {
	entry := &namartha.NameEntry{
		Etymology:    make(map[string]*namartha.EtymologyDetail),
		Commentaries: make(map[string]namartha.Commentary),
	}

	// A header that fails to parse leaves the number unset rather than
	// aborting the block.
	headerNumber, hasHeaderNumber := 0, false
	if m := blockHeaderRe.FindStringSubmatch(block[0]); m != nil {
		headerNumber, _ = strconv.Atoi(m[1])
		hasHeaderNumber = true
	}

	var sections []section
	for i := 1; i < len(block); i++ {
		if m := sectionRe.FindStringSubmatch(block[i]); m != nil {
			kind, label := classifySection(m[1])
			if n := len(sections); n > 0 {
				sections[n-1].end = i
			}
			sections = append(sections, section{kind: kind, label: label, start: i + 1, end: len(block)})
		}
	}

	nameEnd := len(block)
	if len(sections) > 0 {
		nameEnd = sections[0].start - 1
	}
	markerNumber, hasMarkerNumber := parseNameLines(entry, block[1:nameEnd])

	// The block's own declared marker number is authoritative; a conflict
	// with the header number is a data-quality fact, not something to
	// silently correct.
	switch {
	case hasMarkerNumber:
		entry.EntryNumber = markerNumber
		if hasHeaderNumber && headerNumber != markerNumber {
			entry.Issues = append(entry.Issues,
				fmt.Sprintf("header number %d conflicts with verse marker number %d", headerNumber, markerNumber))
		}
	case hasHeaderNumber:
		entry.EntryNumber = headerNumber
	default:
		entry.Issues = append(entry.Issues, "no entry number parsed")
	}

	for _, sec := range sections {
		body := block[sec.start:sec.end]
		switch sec.kind {
		case sectionRootBreakdown:
			entry.RootBreakdown = parseRootTable(body)
		case sectionEtymology:
			parseEtymology(entry.Etymology, body)
		case sectionCompositions:
			entry.Composition = parseComposition(body)
		case sectionCommentary:
			key, commentary := parseCommentary(sec.label, body, false)
			entry.Commentaries[key] = commentary
		case sectionCommentaries:
			key, commentary := parseCommentary(sec.label, body, true)
			entry.Commentaries[key] = commentary
		}
	}

	mergeTableIntoEtymology(entry)
	checkTokenCoverage(entry)
	return entry
}

// checkTokenCoverage records table compounds that are not among the name's
// tokens. Comparison is hyphen-insensitive since the two are formatted by
// different conventions.
func checkTokenCoverage(entry *namartha.NameEntry) {
	if len(entry.Name.Tokens) == 0 {
		return
	}
	stripped := make(map[string]bool, len(entry.Name.Tokens))
	for _, token := range entry.Name.Tokens {
		stripped[strings.ReplaceAll(token, "-", "")] = true
	}
	for _, row := range entry.RootBreakdown {
		if !stripped[strings.ReplaceAll(row.Compound, "-", "")] {
			entry.Issues = append(entry.Issues,
				fmt.Sprintf("compound %s is not among the name tokens", row.Compound))
		}
	}
}
