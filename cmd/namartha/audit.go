package main

import (
	"fmt"
	"os"

	"github.com/skaranam/namartha/extract"
)

// Run executes the audit command.
func (c *AuditCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.Corpus)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot read corpus: %v\n", err)
		return err
	}

	entries := extract.Extract(string(data))
	report := extract.Audit(entries)

	if report.Empty() {
		fmt.Fprintf(deps.Stdout, "No issues found in %d entries\n", len(entries))
		return nil
	}

	if len(report.MissingCommentary) > 0 {
		fmt.Fprintf(deps.Stdout, "Entries without commentary (%d):\n", len(report.MissingCommentary))
		for _, name := range report.MissingCommentary {
			fmt.Fprintf(deps.Stdout, "  %s\n", name)
		}
	}
	if len(report.Unnumbered) > 0 {
		fmt.Fprintf(deps.Stdout, "Unnumbered entries (%d):\n", len(report.Unnumbered))
		for _, name := range report.Unnumbered {
			fmt.Fprintf(deps.Stdout, "  %s\n", name)
		}
	}
	if len(report.Issues) > 0 {
		fmt.Fprintf(deps.Stdout, "Structural issues (%d):\n", len(report.Issues))
		for _, issue := range report.Issues {
			fmt.Fprintf(deps.Stdout, "  %s\n", issue)
		}
	}
	return nil
}
