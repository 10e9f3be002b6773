// Package slog provides logging decorators for namartha services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/skaranam/namartha"
)

// Ensure LoggingEntryService implements namartha.EntryService.
var _ namartha.EntryService = (*LoggingEntryService)(nil)

// LoggingEntryService wraps an EntryService with operation logging.
type LoggingEntryService struct {
	next   namartha.EntryService
	logger *slog.Logger
}

// NewLoggingEntryService creates a new LoggingEntryService.
func NewLoggingEntryService(next namartha.EntryService, logger *slog.Logger) *LoggingEntryService {
	return &LoggingEntryService{next: next, logger: logger}
}

// CreateEntry delegates to the wrapped service and logs the operation.
func (s *LoggingEntryService) CreateEntry(ctx context.Context, entry *namartha.NameEntry) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create entry",
			"number", entry.EntryNumber,
			"devanagari", entry.Name.Devanagari,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateEntry(ctx, entry)
}

// CreateEntries delegates to the wrapped service and logs the operation.
func (s *LoggingEntryService) CreateEntries(ctx context.Context, entries []*namartha.NameEntry) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create entries",
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateEntries(ctx, entries)
}

// FindEntryByNumber delegates to the wrapped service and logs the operation.
func (s *LoggingEntryService) FindEntryByNumber(ctx context.Context, number int) (entry *namartha.NameEntry, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find entry by number",
			"number", number,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindEntryByNumber(ctx, number)
}

// FindEntries delegates to the wrapped service and logs the operation.
func (s *LoggingEntryService) FindEntries(ctx context.Context, filter namartha.EntryFilter) (entries []*namartha.NameEntry, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find entries",
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindEntries(ctx, filter)
}

// DeleteEntry delegates to the wrapped service and logs the operation.
func (s *LoggingEntryService) DeleteEntry(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete entry",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteEntry(ctx, id)
}
