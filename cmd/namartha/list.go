package main

import (
	"fmt"
	"sort"

	"github.com/skaranam/namartha"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := namartha.EntryFilter{EntryNumber: c.Number}
	if c.Name != "" {
		filter.Devanagari = &c.Name
	}

	entries, err := deps.Entries.FindEntries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", namartha.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No entries found. Use 'namartha extract' to load a corpus.")
		return nil
	}

	for _, entry := range entries {
		fmt.Fprintf(deps.Stdout, "%4d  %s  %s\n", entry.EntryNumber, entry.Name.Devanagari, entry.Name.IAST)
		if !c.Full {
			continue
		}
		keys := make([]string, 0, len(entry.Commentaries))
		for key := range entry.Commentaries {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			commentary := entry.Commentaries[key]
			fmt.Fprintf(deps.Stdout, "      [%s] %s (%s)\n", key, commentary.Author, commentary.Period)
			fmt.Fprintf(deps.Stdout, "      %s\n", commentary.Text)
		}
	}

	return nil
}
