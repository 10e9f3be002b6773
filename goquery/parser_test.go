package goquery_test

import (
	"strings"
	"testing"

	"github.com/skaranam/namartha"
	"github.com/skaranam/namartha/goquery"
	"github.com/skaranam/namartha/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_ParseSource(t *testing.T) {
	t.Parallel()

	t.Run("definition list layout", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><dl>
			<dt>श्रीमाता</dt><dd>The auspicious Mother.</dd>
			<dt>श्रीमहाराज्ञी</dt><dd>The great Empress.</dd>
		</dl></body></html>`

		parser := goquery.NewParser(nil)
		source, err := parser.ParseSource(html, "bhaskararaya")

		require.NoError(t, err)
		assert.Equal(t, "bhaskararaya", source.Name())
		assert.Equal(t, []string{"श्रीमाता", "श्रीमहाराज्ञी"}, source.Terms())

		text, ok := source.Lookup("श्रीमहाराज्ञी")
		require.True(t, ok)
		assert.Equal(t, "The great Empress.", text)
	})

	t.Run("two-column table layout", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><table>
			<tr><th>Name</th><th>Commentary</th></tr>
			<tr><td>श्रीमाता</td><td>She who is the Mother.</td></tr>
			<tr><td>श्रीमहाराज्ञी</td><td>She who rules.</td></tr>
		</table></body></html>`

		parser := goquery.NewParser(nil)
		source, err := parser.ParseSource(html, "ravi")

		require.NoError(t, err)
		assert.Equal(t, []string{"श्रीमाता", "श्रीमहाराज्ञी"}, source.Terms())
	})

	t.Run("commentary bodies go through the converter", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><dl>
			<dt>श्रीमाता</dt><dd>The <em>auspicious</em> Mother.</dd>
		</dl></body></html>`

		converter := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				assert.Contains(t, html, "<em>")
				return "The *auspicious* Mother.", nil
			},
		}

		parser := goquery.NewParser(converter)
		source, err := parser.ParseSource(html, "bhaskararaya")

		require.NoError(t, err)
		text, ok := source.Lookup("श्रीमाता")
		require.True(t, ok)
		assert.Equal(t, "The *auspicious* Mother.", text)
	})

	t.Run("converter failure falls back to plain text", func(t *testing.T) {
		t.Parallel()

		html := `<dl><dt>श्रीमाता</dt><dd>The Mother.</dd></dl>`

		converter := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "", namartha.Errorf(namartha.EINVALID, "empty HTML input")
			},
		}

		parser := goquery.NewParser(converter)
		source, err := parser.ParseSource(html, "bhaskararaya")

		require.NoError(t, err)
		text, ok := source.Lookup("श्रीमाता")
		require.True(t, ok)
		assert.Equal(t, "The Mother.", text)
	})

	t.Run("page without entries", func(t *testing.T) {
		t.Parallel()

		parser := goquery.NewParser(nil)
		_, err := parser.ParseSource("<html><body><p>nothing here</p></body></html>", "empty")

		assert.Equal(t, namartha.EINVALID, namartha.ErrorCode(err))
	})

	t.Run("skips dt without a dd", func(t *testing.T) {
		t.Parallel()

		html := `<dl>
			<dt>श्रीमाता</dt><dd>The Mother.</dd>
			<dt>अनाथा</dt>
		</dl>`

		parser := goquery.NewParser(nil)
		source, err := parser.ParseSource(strings.TrimSpace(html), "bhaskararaya")

		require.NoError(t, err)
		assert.Equal(t, []string{"श्रीमाता"}, source.Terms())
	})
}
