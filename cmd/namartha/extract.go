package main

import (
	"fmt"
	"os"

	"github.com/skaranam/namartha"
	"github.com/skaranam/namartha/extract"
	"github.com/skaranam/namartha/fs"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.Corpus)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot read corpus: %v\n", err)
		return err
	}

	entries := extract.Extract(string(data))
	if len(entries) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no entries found in %s\n", c.Corpus)
		return namartha.Errorf(namartha.EINVALID, "no entries found in %s", c.Corpus)
	}

	if err := deps.Entries.CreateEntries(deps.Ctx, entries); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", namartha.ErrorMessage(err))
		return err
	}

	if c.Out != "" {
		if err := fs.WriteJSON(c.Out, entries); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", namartha.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Extracted %d entries\n", len(entries))

	if report := extract.Audit(entries); !report.Empty() {
		fmt.Fprintf(deps.Stderr, "Warning: %d entries without commentary, %d unnumbered, %d issues. Run 'namartha audit' for details.\n",
			len(report.MissingCommentary), len(report.Unnumbered), len(report.Issues))
	}
	return nil
}
