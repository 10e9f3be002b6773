package extract

import (
	"regexp"
	"strings"

	"github.com/skaranam/namartha"
)

// tableSeparatorRe matches one cell of a markdown table alignment row.
var tableSeparatorRe = regexp.MustCompile(`^:?-+:?$`)

// parseRootTable parses the markdown table following the ROOT BREAKDOWN
// header. Columns are located by header name, so column order is not
// significant. Returns nil when no well-formed table is present.
func parseRootTable(lines []string) []namartha.RootBreakdown {
	rows := tableRows(lines)
	if len(rows) < 2 {
		return nil
	}

	cols := make(map[string]int)
	for i, header := range rows[0] {
		switch h := strings.ToLower(header); {
		case strings.Contains(h, "compound"):
			cols["compound"] = i
		case strings.Contains(h, "sandhi"):
			cols["sandhi"] = i
		case strings.Contains(h, "component"):
			cols["components"] = i
		case strings.Contains(h, "grammar"):
			cols["grammar"] = i
		case strings.Contains(h, "literal"):
			cols["literal"] = i
		case strings.Contains(h, "contextual"):
			cols["contextual"] = i
		}
	}
	if _, ok := cols["compound"]; !ok {
		return nil
	}

	var breakdown []namartha.RootBreakdown
	for _, row := range rows[1:] {
		if isSeparatorRow(row) {
			continue
		}
		compound := cell(row, cols, "compound")
		if compound == "" {
			continue
		}
		breakdown = append(breakdown, namartha.RootBreakdown{
			Compound:   compound,
			Sandhi:     sandhiValue(cell(row, cols, "sandhi")),
			Components: splitPlus(cell(row, cols, "components")),
			Grammar:    cell(row, cols, "grammar"),
			Meaning: namartha.Meaning{
				Literal:    cell(row, cols, "literal"),
				Contextual: cell(row, cols, "contextual"),
			},
		})
	}
	return breakdown
}

// tableRows collects the first contiguous run of "|" lines and splits them
// into trimmed cells.
func tableRows(lines []string) [][]string {
	var rows [][]string
	started := false
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if !strings.HasPrefix(line, "|") {
			if started {
				break
			}
			continue
		}
		started = true
		rows = append(rows, splitRow(line))
	}
	return rows
}

func splitRow(line string) []string {
	cells := strings.Split(strings.Trim(line, "|"), "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

func isSeparatorRow(row []string) bool {
	for _, c := range row {
		if c != "" && !tableSeparatorRe.MatchString(c) {
			return false
		}
	}
	return true
}

// sandhiValue normalizes a Sandhi value: a literal dash means no sandhi
// rule applies.
func sandhiValue(value string) *string {
	switch value {
	case "", "-", "—", "–":
		return nil
	}
	return &value
}

func cell(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// splitPlus splits a cell on "+", trimming each part and discarding empties.
func splitPlus(s string) []string {
	var parts []string
	for _, p := range strings.Split(s, "+") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
