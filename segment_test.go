package namartha_test

import (
	"strings"
	"testing"

	"github.com/skaranam/namartha"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	t.Run("splits words on whitespace", func(t *testing.T) {
		t.Parallel()

		segs := namartha.Tokenize("श्रीमाता श्रीमहाराज्ञी")

		require.Len(t, segs, 3)
		assert.Equal(t, namartha.Segment{Text: "श्रीमाता", Kind: namartha.SegmentWord}, segs[0])
		assert.Equal(t, namartha.Segment{Text: " ", Kind: namartha.SegmentSeparator}, segs[1])
		assert.Equal(t, namartha.Segment{Text: "श्रीमहाराज्ञी", Kind: namartha.SegmentWord}, segs[2])
	})

	t.Run("emits verse marker as its own segment", func(t *testing.T) {
		t.Parallel()

		segs := namartha.Tokenize("चिदग्निकुण्डसम्भूता ॥ 4 ॥")

		require.Len(t, segs, 3)
		assert.Equal(t, namartha.SegmentWord, segs[0].Kind)
		assert.Equal(t, namartha.SegmentSeparator, segs[1].Kind)
		assert.Equal(t, namartha.Segment{Text: "॥ 4 ॥", Kind: namartha.SegmentVerseMarker}, segs[2])
	})

	t.Run("recognizes Devanagari digits in verse markers", func(t *testing.T) {
		t.Parallel()

		segs := namartha.Tokenize("॥ १२ ॥")

		require.Len(t, segs, 1)
		assert.Equal(t, namartha.SegmentVerseMarker, segs[0].Kind)
	})

	t.Run("strips trailing danda run as punctuation", func(t *testing.T) {
		t.Parallel()

		segs := namartha.Tokenize("नमः।")

		require.Len(t, segs, 2)
		assert.Equal(t, namartha.Segment{Text: "नमः", Kind: namartha.SegmentWord}, segs[0])
		assert.Equal(t, namartha.Segment{Text: "।", Kind: namartha.SegmentPunctuation}, segs[1])
	})

	t.Run("preserves internal hyphens", func(t *testing.T) {
		t.Parallel()

		segs := namartha.Tokenize("चितिस्तत्पद-लक्ष्यार्था")

		require.Len(t, segs, 1)
		assert.Equal(t, "चितिस्तत्पद-लक्ष्यार्था", segs[0].Text)
	})

	t.Run("punctuation-only unit produces no word segment", func(t *testing.T) {
		t.Parallel()

		segs := namartha.Tokenize("।।")

		require.Len(t, segs, 1)
		assert.Equal(t, namartha.SegmentPunctuation, segs[0].Kind)
	})

	t.Run("empty line yields no segments", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, namartha.Tokenize(""))
	})

	t.Run("is lossless", func(t *testing.T) {
		t.Parallel()

		lines := []string{
			"श्रीमाता श्रीमहाराज्ञी श्रीमत्सिंहासनेश्वरी ।",
			"चिदग्निकुण्डसम्भूता देवकार्यसमुद्यता ॥ 1 ॥",
			"  उद्यद्भानुसहस्राभा\tचतुर्बाहुसमन्विता ॥ २ ॥  ",
			"राकेन्दुवदना ।। नमः",
			"॥ 108 ॥",
		}
		for _, line := range lines {
			var b strings.Builder
			for _, seg := range namartha.Tokenize(line) {
				b.WriteString(seg.Text)
			}
			assert.Equal(t, line, b.String())
		}
	})
}

func TestVerseMarkerNumber(t *testing.T) {
	t.Parallel()

	t.Run("reads Arabic digits", func(t *testing.T) {
		t.Parallel()

		n, ok := namartha.VerseMarkerNumber("चिदग्निकुण्डसम्भूता ॥ 42 ॥")

		assert.True(t, ok)
		assert.Equal(t, 42, n)
	})

	t.Run("reads Devanagari digits", func(t *testing.T) {
		t.Parallel()

		n, ok := namartha.VerseMarkerNumber("॥ १०८ ॥")

		assert.True(t, ok)
		assert.Equal(t, 108, n)
	})

	t.Run("returns false without a marker", func(t *testing.T) {
		t.Parallel()

		_, ok := namartha.VerseMarkerNumber("श्रीमाता")

		assert.False(t, ok)
	})
}

func TestIsColophon(t *testing.T) {
	t.Parallel()

	assert.True(t, namartha.IsColophon("॥ इति श्रीललितासहस्रनामस्तोत्रं सम्पूर्णम् ॥"))
	assert.True(t, namartha.IsColophon("इति श्री ललितासहस्रनाम सम्पूर्णम्"))
	assert.False(t, namartha.IsColophon("श्रीमाता श्रीमहाराज्ञी ॥ 1 ॥"))
}
