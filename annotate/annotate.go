// Package annotate orchestrates breakdown extraction, tokenization, and
// commentary resolution over a verse document, producing the word-annotation
// map the display layer consumes.
package annotate

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/skaranam/namartha"
)

// DefaultConcurrency is the default per-line fan-out limit.
const DefaultConcurrency = 4

// Annotator resolves every word of a verse document against a set of
// commentary sources. Sources are read-only for the duration of a pass, so
// lines are processed concurrently.
type Annotator struct {
	// Sources are consulted independently per word, in order. A failure to
	// resolve in one source never blocks lookup in another.
	Sources []*namartha.Source

	// Concurrency limits the per-line fan-out. Defaults to
	// DefaultConcurrency when <= 0.
	Concurrency int
}

// Annotate produces one annotation per word position that resolved in at
// least one source. Blank lines and the concluding colophon line are
// skipped. Annotation identity is (line index, position index), where the
// position index counts word segments within the line.
func (a *Annotator) Annotate(ctx context.Context, lines []string) ([]*namartha.WordAnnotation, error) {
	concurrency := a.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	perLine := make([][]*namartha.WordAnnotation, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, line := range lines {
		if strings.TrimSpace(line) == "" || namartha.IsColophon(line) {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			perLine[i] = a.annotateLine(i, line)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var annotations []*namartha.WordAnnotation
	for _, lineAnnotations := range perLine {
		annotations = append(annotations, lineAnnotations...)
	}
	return annotations, nil
}

func (a *Annotator) annotateLine(lineIndex int, line string) []*namartha.WordAnnotation {
	cleaned, breakdowns := namartha.ExtractBreakdowns(line)

	var annotations []*namartha.WordAnnotation
	position := 0
	for _, seg := range namartha.Tokenize(cleaned) {
		if seg.Kind != namartha.SegmentWord {
			continue
		}

		components := breakdowns[seg.Text]
		commentary := make(map[string]string)
		for _, src := range a.Sources {
			var text string
			var ok bool
			if len(components) > 0 {
				text, ok = resolveComponents(src, components)
			} else {
				text, ok = src.Resolve(seg.Text)
			}
			if ok {
				commentary[src.Name()] = text
			}
		}

		// A word no source can explain renders as plain text downstream.
		if len(commentary) > 0 {
			annotations = append(annotations, &namartha.WordAnnotation{
				ID:                  uuid.New().String(),
				SurfaceWord:         seg.Text,
				LineIndex:           lineIndex,
				PositionIndex:       position,
				BreakdownComponents: components,
				CommentaryBySource:  commentary,
			})
		}
		position++
	}
	return annotations
}

// resolveComponents resolves each breakdown component independently and
// joins the resolved ones as "<component>\n<meaning>" blocks separated by a
// blank line, in component order. Components that fail to resolve are
// omitted; the word fails only when no component resolves.
func resolveComponents(src *namartha.Source, components []string) (string, bool) {
	var blocks []string
	for _, c := range components {
		if text, ok := src.Resolve(c); ok {
			blocks = append(blocks, c+"\n"+text)
		}
	}
	if len(blocks) == 0 {
		return "", false
	}
	return strings.Join(blocks, "\n\n"), true
}
