package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/skaranam/namartha"
)

var (
	compoundHeaderRe   = regexp.MustCompile(`^###\s+(.+?)\s*$`)
	fieldRe            = regexp.MustCompile(`^[-*]\s+\*\*([^*]+?)\*\*\s*[:：]?\s*(.*)$`)
	meaningSubRe       = regexp.MustCompile(`(?i)^\s+[-*]\s+\*{0,2}(literal|contextual)\*{0,2}\s*[:：]\s*(.*)$`)
	rootValueRe        = regexp.MustCompile(`^√?\s*(\S+)\s*(?:[—–-]+\s*)?(?:[“"]([^”"]*)[”"])?\s*(?:\(class\s+([^)]+)\))?`)
	literalInlineRe    = regexp.MustCompile(`(?i)literal\s*[:：]\s*(?:[“"]([^”"]*)[”"]|([^;]+))`)
	contextualInlineRe = regexp.MustCompile(`(?i)contextual\s*[:：]\s*(?:[“"]([^”"]*)[”"]|(.+))`)
)

// parseEtymology scans the free-form etymology prose: one "###" heading per
// compound followed by labeled bullet lines (Breakdown, Root,
// Upasarga/prefix, Suffix, Sandhi, Formation, Grammar, Meaning with
// literal/contextual sub-parts). Unrecognized lines are skipped; a repeated
// compound heading starts a fresh detail.
func parseEtymology(out map[string]*namartha.EtymologyDetail, lines []string) {
	var current *namartha.EtymologyDetail
	inMeaning := false
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if m := compoundHeaderRe.FindStringSubmatch(line); m != nil {
			current = &namartha.EtymologyDetail{}
			out[m[1]] = current
			inMeaning = false
			continue
		}
		if current == nil {
			continue
		}
		if inMeaning {
			// Meaning sub-bullets keep their source indentation.
			if m := meaningSubRe.FindStringSubmatch(raw); m != nil {
				setMeaningField(&current.Meaning, m[1], m[2])
				continue
			}
		}
		m := fieldRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		inMeaning = false
		label := strings.ToLower(strings.TrimSpace(m[1]))
		value := strings.TrimSpace(m[2])
		switch {
		case strings.HasPrefix(label, "breakdown"):
			current.Breakdown = splitPlus(value)
		case strings.HasPrefix(label, "root"):
			current.Root = parseRootValue(value)
		case strings.HasPrefix(label, "upasarga"), strings.Contains(label, "prefix"):
			current.Prefixes = splitList(value)
		case strings.HasPrefix(label, "suffix"):
			current.Suffix = unquote(value)
		case strings.HasPrefix(label, "sandhi"):
			current.Sandhi = sandhiValue(value)
		case strings.HasPrefix(label, "formation"):
			current.Formation = value
		case strings.HasPrefix(label, "grammar"):
			current.Grammar = value
		case strings.HasPrefix(label, "literal"):
			current.Meaning.Literal = unquote(value)
		case strings.HasPrefix(label, "contextual"):
			current.Meaning.Contextual = unquote(value)
		case strings.HasPrefix(label, "meaning"):
			current.Meaning = parseInlineMeaning(value)
			inMeaning = true
		}
	}
}

// parseRootValue parses a dhātu bullet value such as
// `√भू — "to become" (class 1)`. Every part after the syllable is optional.
func parseRootValue(value string) namartha.Root {
	m := rootValueRe.FindStringSubmatch(value)
	if m == nil {
		return namartha.Root{Syllable: value}
	}
	return namartha.Root{
		Syllable: strings.TrimSpace(m[1]),
		Meaning:  strings.TrimSpace(m[2]),
		Class:    strings.TrimSpace(m[3]),
	}
}

// parseInlineMeaning handles the single-line form
// `literal: "x"; contextual: "y"`.
func parseInlineMeaning(value string) namartha.Meaning {
	var meaning namartha.Meaning
	if m := literalInlineRe.FindStringSubmatch(value); m != nil {
		meaning.Literal = strings.TrimSpace(firstNonEmpty(m[1], m[2]))
	}
	if m := contextualInlineRe.FindStringSubmatch(value); m != nil {
		meaning.Contextual = strings.TrimSpace(firstNonEmpty(m[1], m[2]))
	}
	return meaning
}

func setMeaningField(meaning *namartha.Meaning, which, value string) {
	value = unquote(strings.TrimSpace(value))
	if strings.EqualFold(which, "literal") {
		meaning.Literal = value
	} else {
		meaning.Contextual = value
	}
}

// mergeTableIntoEtymology merges the root-breakdown table into the etymology
// details. Prose wins; table cells fill whatever the prose omitted. A table
// compound with no etymology prose still gets a table-only detail, recorded
// as a structural issue.
func mergeTableIntoEtymology(entry *namartha.NameEntry) {
	for _, row := range entry.RootBreakdown {
		detail, ok := entry.Etymology[row.Compound]
		if !ok {
			entry.Issues = append(entry.Issues,
				fmt.Sprintf("compound %s has no etymology prose", row.Compound))
			detail = &namartha.EtymologyDetail{}
			entry.Etymology[row.Compound] = detail
		}
		if len(detail.Breakdown) == 0 {
			detail.Breakdown = row.Components
		}
		if detail.Grammar == "" {
			detail.Grammar = row.Grammar
		}
		if detail.Sandhi == nil {
			detail.Sandhi = row.Sandhi
		}
		if detail.Meaning.Literal == "" {
			detail.Meaning.Literal = row.Meaning.Literal
		}
		if detail.Meaning.Contextual == "" {
			detail.Meaning.Contextual = row.Meaning.Contextual
		}
	}
}

func splitList(value string) []string {
	var parts []string
	for _, p := range strings.FieldsFunc(value, func(r rune) bool { return r == ',' || r == '+' }) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func unquote(s string) string {
	for _, pair := range [][2]string{{`"`, `"`}, {"“", "”"}} {
		if strings.HasPrefix(s, pair[0]) && strings.HasSuffix(s, pair[1]) && len(s) > len(pair[0])+len(pair[1]) {
			return s[len(pair[0]) : len(s)-len(pair[1])]
		}
	}
	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
