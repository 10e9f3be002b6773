package mock

import (
	"context"

	"github.com/skaranam/namartha"
)

var _ namartha.AnnotationService = (*AnnotationService)(nil)

// AnnotationService is a mock implementation of namartha.AnnotationService.
type AnnotationService struct {
	CreateAnnotationsFn func(ctx context.Context, annotations []*namartha.WordAnnotation) error
	FindAnnotationsFn   func(ctx context.Context, filter namartha.AnnotationFilter) ([]*namartha.WordAnnotation, error)
	DeleteAnnotationsFn func(ctx context.Context) error
}

func (s *AnnotationService) CreateAnnotations(ctx context.Context, annotations []*namartha.WordAnnotation) error {
	return s.CreateAnnotationsFn(ctx, annotations)
}

func (s *AnnotationService) FindAnnotations(ctx context.Context, filter namartha.AnnotationFilter) ([]*namartha.WordAnnotation, error) {
	return s.FindAnnotationsFn(ctx, filter)
}

func (s *AnnotationService) DeleteAnnotations(ctx context.Context) error {
	return s.DeleteAnnotationsFn(ctx)
}
