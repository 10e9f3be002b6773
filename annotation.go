package namartha

import "context"

// WordAnnotation records, for one word position in the displayed text, the
// surface word, its optional breakdown components, and the commentary text
// resolved from each source. Identity is (LineIndex, PositionIndex); at most
// one annotation exists per position. Annotations are created once per
// document pass and immutable thereafter — the display layer only reads
// them.
type WordAnnotation struct {
	ID                  string            `json:"id"`
	SurfaceWord         string            `json:"surfaceWord"`
	LineIndex           int               `json:"lineIndex"`
	PositionIndex       int               `json:"positionIndex"`
	BreakdownComponents []string          `json:"breakdownComponents,omitempty"`
	CommentaryBySource  map[string]string `json:"commentaryBySource"`
}

// Validate returns an error if the annotation contains invalid fields.
func (a *WordAnnotation) Validate() error {
	if a.SurfaceWord == "" {
		return Errorf(EINVALID, "annotation surface word required")
	}
	if a.LineIndex < 0 || a.PositionIndex < 0 {
		return Errorf(EINVALID, "annotation position must be non-negative")
	}
	if len(a.CommentaryBySource) == 0 {
		return Errorf(EINVALID, "annotation requires commentary from at least one source")
	}
	return nil
}

// AnnotationService represents a service for persisting word annotations.
type AnnotationService interface {
	// CreateAnnotations stores a batch of annotations. An annotation at an
	// already-stored position replaces the stored one.
	CreateAnnotations(ctx context.Context, annotations []*WordAnnotation) error

	// FindAnnotations retrieves annotations matching the filter, ordered by
	// (line index, position index).
	FindAnnotations(ctx context.Context, filter AnnotationFilter) ([]*WordAnnotation, error)

	// DeleteAnnotations removes all stored annotations.
	DeleteAnnotations(ctx context.Context) error
}

// AnnotationFilter represents a filter for FindAnnotations.
type AnnotationFilter struct {
	ID        *string `json:"id"`
	LineIndex *int    `json:"lineIndex"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
