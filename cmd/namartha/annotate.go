package main

import (
	"fmt"

	"github.com/skaranam/namartha"
	"github.com/skaranam/namartha/annotate"
	"github.com/skaranam/namartha/bloom"
	"github.com/skaranam/namartha/fs"
)

// expectedTerms sizes the per-source key prefilter. A sahasranāma glossary
// has on the order of a thousand entries.
const expectedTerms = 4096

// Run executes the annotate command.
func (c *AnnotateCmd) Run(deps *Dependencies) error {
	lines, err := fs.LoadVerseLines(c.Verses)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", namartha.ErrorMessage(err))
		return err
	}

	var sources []*namartha.Source
	for _, path := range c.Source {
		source, err := fs.LoadSource(path, namartha.WithKeyFilter(bloom.NewFilter(expectedTerms, 0.01)))
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", namartha.ErrorMessage(err))
			return err
		}
		sources = append(sources, source)
	}

	annotator := &annotate.Annotator{
		Sources:     sources,
		Concurrency: c.Concurrency,
	}

	annotations, err := annotator.Annotate(deps.Ctx, lines)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", namartha.ErrorMessage(err))
		return err
	}

	// An annotation pass replaces the previous one wholesale: stale
	// positions from an earlier text revision must not survive.
	if err := deps.Annotations.DeleteAnnotations(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", namartha.ErrorMessage(err))
		return err
	}
	if err := deps.Annotations.CreateAnnotations(deps.Ctx, annotations); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", namartha.ErrorMessage(err))
		return err
	}

	if c.Out != "" {
		if err := fs.WriteJSON(c.Out, annotations); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", namartha.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Annotated %d words from %d lines using %d sources\n",
		len(annotations), len(lines), len(sources))
	return nil
}
