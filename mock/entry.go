package mock

import (
	"context"

	"github.com/skaranam/namartha"
)

var _ namartha.EntryService = (*EntryService)(nil)

// EntryService is a mock implementation of namartha.EntryService.
type EntryService struct {
	CreateEntryFn       func(ctx context.Context, entry *namartha.NameEntry) error
	CreateEntriesFn     func(ctx context.Context, entries []*namartha.NameEntry) error
	FindEntryByNumberFn func(ctx context.Context, number int) (*namartha.NameEntry, error)
	FindEntriesFn       func(ctx context.Context, filter namartha.EntryFilter) ([]*namartha.NameEntry, error)
	DeleteEntryFn       func(ctx context.Context, id string) error
}

func (s *EntryService) CreateEntry(ctx context.Context, entry *namartha.NameEntry) error {
	return s.CreateEntryFn(ctx, entry)
}

func (s *EntryService) CreateEntries(ctx context.Context, entries []*namartha.NameEntry) error {
	return s.CreateEntriesFn(ctx, entries)
}

func (s *EntryService) FindEntryByNumber(ctx context.Context, number int) (*namartha.NameEntry, error) {
	return s.FindEntryByNumberFn(ctx, number)
}

func (s *EntryService) FindEntries(ctx context.Context, filter namartha.EntryFilter) ([]*namartha.NameEntry, error) {
	return s.FindEntriesFn(ctx, filter)
}

func (s *EntryService) DeleteEntry(ctx context.Context, id string) error {
	return s.DeleteEntryFn(ctx, id)
}
