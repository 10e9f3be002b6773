package namartha_test

import (
	"testing"

	"github.com/skaranam/namartha"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBreakdowns(t *testing.T) {
	t.Parallel()

	t.Run("records components and removes the annotation", func(t *testing.T) {
		t.Parallel()

		line := "उद्यद्भानुसहस्राभा [उद्यत् + भानु + सहस्र + आभा](6) चतुर्बाहुसमन्विता"

		cleaned, breakdowns := namartha.ExtractBreakdowns(line)

		assert.Equal(t, "उद्यद्भानुसहस्राभा चतुर्बाहुसमन्विता", cleaned)
		require.Len(t, breakdowns, 1)
		assert.Equal(t, []string{"उद्यत्", "भानु", "सहस्र", "आभा"}, breakdowns["उद्यद्भानुसहस्राभा"])
	})

	t.Run("trims trailing danda from the word key", func(t *testing.T) {
		t.Parallel()

		cleaned, breakdowns := namartha.ExtractBreakdowns("देवकार्यसमुद्यता। [देव + कार्य + समुद्यता](5)")

		assert.Equal(t, "देवकार्यसमुद्यता।", cleaned)
		assert.Equal(t, []string{"देव", "कार्य", "समुद्यता"}, breakdowns["देवकार्यसमुद्यता"])
	})

	t.Run("empty component list records no breakdown", func(t *testing.T) {
		t.Parallel()

		cleaned, breakdowns := namartha.ExtractBreakdowns("श्रीमाता [ + ](1)")

		assert.Equal(t, "श्रीमाता", cleaned)
		assert.Empty(t, breakdowns)
	})

	t.Run("later annotation wins for a repeated word", func(t *testing.T) {
		t.Parallel()

		line := "श्रीमाता [श्री + माता](1) नमः श्रीमाता [श्रीम + आता](1)"

		_, breakdowns := namartha.ExtractBreakdowns(line)

		assert.Equal(t, []string{"श्रीम", "आता"}, breakdowns["श्रीमाता"])
	})

	t.Run("is idempotent on its own output", func(t *testing.T) {
		t.Parallel()

		line := "महाबुद्धिर्महासिद्धिर्महायोगेश्वरेश्वरी [महाबुद्धिः + महासिद्धिः + महायोगेश्वरेश्वरी](55)"

		cleaned, _ := namartha.ExtractBreakdowns(line)
		again, breakdowns := namartha.ExtractBreakdowns(cleaned)

		assert.Equal(t, cleaned, again)
		assert.Empty(t, breakdowns)
	})

	t.Run("leaves a bracket-free line untouched", func(t *testing.T) {
		t.Parallel()

		cleaned, breakdowns := namartha.ExtractBreakdowns("श्रीमाता नमः ॥ 1 ॥")

		assert.Equal(t, "श्रीमाता नमः ॥ 1 ॥", cleaned)
		assert.Empty(t, breakdowns)
	})
}
