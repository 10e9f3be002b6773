package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/skaranam/namartha"
	main "github.com/skaranam/namartha/cmd/namartha"
	"github.com/skaranam/namartha/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists entries with number and both scripts", func(t *testing.T) {
		t.Parallel()

		entries := &mock.EntryService{
			FindEntriesFn: func(_ context.Context, _ namartha.EntryFilter) ([]*namartha.NameEntry, error) {
				return []*namartha.NameEntry{
					{EntryNumber: 1, Name: namartha.Name{Devanagari: "श्रीमाता", IAST: "śrīmātā"}},
					{EntryNumber: 2, Name: namartha.Name{Devanagari: "श्रीमहाराज्ञी", IAST: "śrīmahārājñī"}},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Entries: entries,
		}

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "श्रीमाता")
		assert.Contains(t, stdout.String(), "śrīmahārājñī")
		assert.Empty(t, stderr.String())
	})

	t.Run("number flag narrows the filter", func(t *testing.T) {
		t.Parallel()

		var gotFilter namartha.EntryFilter
		entries := &mock.EntryService{
			FindEntriesFn: func(_ context.Context, filter namartha.EntryFilter) ([]*namartha.NameEntry, error) {
				gotFilter = filter
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Entries: entries,
		}

		number := 42
		cmd := &main.ListCmd{Number: &number}

		require.NoError(t, cmd.Run(deps))
		require.NotNil(t, gotFilter.EntryNumber)
		assert.Equal(t, 42, *gotFilter.EntryNumber)
		assert.Contains(t, stdout.String(), "No entries found")
	})

	t.Run("full output includes commentaries", func(t *testing.T) {
		t.Parallel()

		entries := &mock.EntryService{
			FindEntriesFn: func(_ context.Context, _ namartha.EntryFilter) ([]*namartha.NameEntry, error) {
				return []*namartha.NameEntry{{
					EntryNumber: 1,
					Name:        namartha.Name{Devanagari: "श्रीमाता", IAST: "śrīmātā"},
					Commentaries: map[string]namartha.Commentary{
						"bhaskararaya": {Author: "Bhāskararāya Makhin", Period: "1690–1785 CE", Text: "The Mother."},
					},
				}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Entries: entries,
		}

		cmd := &main.ListCmd{Full: true}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "[bhaskararaya] Bhāskararāya Makhin (1690–1785 CE)")
		assert.Contains(t, stdout.String(), "The Mother.")
	})

	t.Run("returns error when the service fails", func(t *testing.T) {
		t.Parallel()

		entries := &mock.EntryService{
			FindEntriesFn: func(_ context.Context, _ namartha.EntryFilter) ([]*namartha.NameEntry, error) {
				return nil, namartha.Errorf(namartha.EINTERNAL, "boom")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Entries: entries,
		}

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
