package main

import (
	"fmt"

	"github.com/skaranam/namartha"
	"github.com/skaranam/namartha/fs"
)

// Run executes the import-source command.
func (c *ImportSourceCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: fetch failed: %v\n", err)
		return err
	}

	source, err := deps.Parser.ParseSource(html, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", namartha.ErrorMessage(err))
		return err
	}

	out := c.Out
	if out == "" {
		out = c.Name + ".json"
	}

	sf := fs.SourceFile{Name: source.Name()}
	for _, term := range source.Terms() {
		text, _ := source.Lookup(term)
		sf.Glosses = append(sf.Glosses, namartha.Gloss{Term: term, Text: text})
	}

	if err := fs.WriteJSON(out, sf); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", namartha.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported %d glosses from %s to %s\n", len(sf.Glosses), c.URL, out)
	return nil
}
