package bloom_test

import (
	"testing"

	"github.com/skaranam/namartha"
	"github.com/skaranam/namartha/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("added keys are reported present", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.01)
		f.Add("श्रीमाता")
		f.Add("श्रीमहाराज्ञी")

		assert.True(t, f.MightContain("श्रीमाता"))
		assert.True(t, f.MightContain("श्रीमहाराज्ञी"))
	})

	t.Run("unseen keys are reported absent", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.01)
		f.Add("श्रीमाता")

		assert.False(t, f.MightContain("चिदग्निकुण्डसम्भूता"))
	})

	t.Run("gates the resolver scan without changing results", func(t *testing.T) {
		t.Parallel()

		glosses := []namartha.Gloss{
			{Term: "चितिस्तत्पद-लक्ष्यार्था", Text: "X"},
		}

		plain := namartha.NewSource("plain", glosses)
		filtered := namartha.NewSource("filtered", glosses,
			namartha.WithKeyFilter(bloom.NewFilter(100, 0.01)))

		for _, word := range []string{"चितिस्तत्पदलक्ष्यार्था", "अनुपस्थित"} {
			wantText, wantOK := plain.Resolve(word)
			gotText, gotOK := filtered.Resolve(word)
			assert.Equal(t, wantOK, gotOK)
			assert.Equal(t, wantText, gotText)
		}
	})
}
