package extract

import (
	"fmt"

	"github.com/skaranam/namartha"
)

// Report lists data-quality findings over an extracted corpus. Defects are
// data, not failures: extraction always completes, and the report makes the
// gaps visible.
type Report struct {
	// MissingCommentary names entries with no non-empty commentary in any
	// source.
	MissingCommentary []string `json:"missingCommentary,omitempty"`

	// Unnumbered names entries without a parsed entry number.
	Unnumbered []string `json:"unnumbered,omitempty"`

	// Issues carries the structural inconsistencies recorded per entry
	// during extraction, prefixed with the entry's name.
	Issues []string `json:"issues,omitempty"`
}

// Empty reports whether the audit found nothing.
func (r *Report) Empty() bool {
	return len(r.MissingCommentary) == 0 && len(r.Unnumbered) == 0 && len(r.Issues) == 0
}

// Audit inspects an extracted corpus for missing commentary, unnumbered
// entries, and recorded structural issues.
func Audit(entries []*namartha.NameEntry) *Report {
	report := &Report{}
	for _, entry := range entries {
		name := entry.Name.Devanagari
		if name == "" {
			name = fmt.Sprintf("entry %d", entry.EntryNumber)
		}
		if !entry.HasCommentary() {
			report.MissingCommentary = append(report.MissingCommentary, name)
		}
		if entry.EntryNumber == 0 {
			report.Unnumbered = append(report.Unnumbered, name)
		}
		for _, issue := range entry.Issues {
			report.Issues = append(report.Issues, name+": "+issue)
		}
	}
	return report
}
