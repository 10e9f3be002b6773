package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/skaranam/namartha"
	main "github.com/skaranam/namartha/cmd/namartha"
	"github.com/skaranam/namartha/fs"
	"github.com/skaranam/namartha/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportSourceCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("fetches, parses, and writes a glossary file", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				assert.Equal(t, "https://example.org/lalita", url)
				return "<dl><dt>श्रीमाता</dt><dd>The Mother.</dd></dl>", nil
			},
		}
		parser := &mock.SourceParser{
			ParseSourceFn: func(html, name string) (*namartha.Source, error) {
				assert.Contains(t, html, "श्रीमाता")
				return namartha.NewSource(name, []namartha.Gloss{
					{Term: "श्रीमाता", Text: "The Mother."},
				}), nil
			},
		}

		out := filepath.Join(t.TempDir(), "bhaskararaya.json")
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Fetcher: fetcher,
			Parser:  parser,
		}

		cmd := &main.ImportSourceCmd{
			URL:  "https://example.org/lalita",
			Name: "bhaskararaya",
			Out:  out,
		}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "Imported 1 glosses")

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		var sf fs.SourceFile
		require.NoError(t, json.Unmarshal(data, &sf))
		assert.Equal(t, "bhaskararaya", sf.Name)
		require.Len(t, sf.Glosses, 1)
		assert.Equal(t, "श्रीमाता", sf.Glosses[0].Term)
	})

	t.Run("parser failure surfaces the message", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "<html></html>", nil
			},
		}
		parser := &mock.SourceParser{
			ParseSourceFn: func(_, name string) (*namartha.Source, error) {
				return nil, namartha.Errorf(namartha.EINVALID, "no commentary entries found in %s", name)
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Fetcher: fetcher,
			Parser:  parser,
		}

		cmd := &main.ImportSourceCmd{URL: "https://example.org/empty", Name: "empty"}

		err := cmd.Run(deps)

		assert.Equal(t, namartha.EINVALID, namartha.ErrorCode(err))
		assert.Contains(t, stderr.String(), "no commentary entries found")
	})
}
