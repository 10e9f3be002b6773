package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	main "github.com/skaranam/namartha/cmd/namartha"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestMain returns a Main wired to a database in a temp directory.
func newTestMain(t *testing.T) *main.Main {
	t.Helper()
	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "namartha.db")
	return m
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("no command shows usage", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), nil, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("help exits cleanly", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "annotate")
		assert.Contains(t, stdout.String(), "extract")
	})

	t.Run("extract then list round-trips through the database", func(t *testing.T) {
		t.Parallel()

		corpus := writeFixture(t, "corpus.md", testCorpus)
		dbPath := filepath.Join(t.TempDir(), "namartha.db")

		extractMain := main.NewMain()
		extractMain.DBPath = dbPath
		stdout := &bytes.Buffer{}
		err := extractMain.Run(context.Background(), []string{"extract", corpus}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Extracted 2 entries")

		listMain := main.NewMain()
		listMain.DBPath = dbPath
		stdout = &bytes.Buffer{}
		err = listMain.Run(context.Background(), []string{"list"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "श्रीमाता")
		assert.Contains(t, stdout.String(), "श्रीमहाराज्ञी")
	})

	t.Run("unknown command is an error", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)

		err := m.Run(context.Background(), []string{"frobnicate"}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
	})
}
