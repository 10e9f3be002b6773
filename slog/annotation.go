package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/skaranam/namartha"
)

// Ensure LoggingAnnotationService implements namartha.AnnotationService.
var _ namartha.AnnotationService = (*LoggingAnnotationService)(nil)

// LoggingAnnotationService wraps an AnnotationService with operation logging.
type LoggingAnnotationService struct {
	next   namartha.AnnotationService
	logger *slog.Logger
}

// NewLoggingAnnotationService creates a new LoggingAnnotationService.
func NewLoggingAnnotationService(next namartha.AnnotationService, logger *slog.Logger) *LoggingAnnotationService {
	return &LoggingAnnotationService{next: next, logger: logger}
}

// CreateAnnotations delegates to the wrapped service and logs the operation.
func (s *LoggingAnnotationService) CreateAnnotations(ctx context.Context, annotations []*namartha.WordAnnotation) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create annotations",
			"count", len(annotations),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateAnnotations(ctx, annotations)
}

// FindAnnotations delegates to the wrapped service and logs the operation.
func (s *LoggingAnnotationService) FindAnnotations(ctx context.Context, filter namartha.AnnotationFilter) (annotations []*namartha.WordAnnotation, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find annotations",
			"count", len(annotations),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindAnnotations(ctx, filter)
}

// DeleteAnnotations delegates to the wrapped service and logs the operation.
func (s *LoggingAnnotationService) DeleteAnnotations(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete annotations",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteAnnotations(ctx)
}
