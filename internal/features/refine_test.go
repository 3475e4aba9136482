// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package features

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/fakenews-lab/pkg/types"
)

// testFrame builds the raw column layout the loader produces.
func testFrame(t *testing.T, countries []string, texts []string, created []float64) *types.Frame {
	t.Helper()
	n := len(countries)
	blank := make([]string, n)
	f := types.NewFrame(n)
	require.NoError(t, f.AddStringColumn("id", blank))
	require.NoError(t, f.AddStringColumn("news_url", blank))
	require.NoError(t, f.AddStringColumn("title", blank))
	require.NoError(t, f.AddStringColumn("article_text", texts))
	require.NoError(t, f.AddStringColumn("country", countries))
	require.NoError(t, f.AddFloatColumn("creation_date", created))
	return f
}

func TestSuspiciousCountryStep(t *testing.T) {
	countries := []string{"MK", "PA", "US", "DE", "REDACTED FOR PRIVACY", "redacted", "mk", ""}
	want := []float64{1, 1, 0, 0, 1, 1, 1, 0}

	f := testFrame(t, countries, make([]string, len(countries)), make([]float64, len(countries)))
	require.NoError(t, suspiciousCountryStep(f))

	flags, err := f.Floats("is_suspicious_country")
	require.NoError(t, err)
	assert.Equal(t, want, flags)
}

func TestRefine(t *testing.T) {
	countries := []string{"MK", "US", "REDACTED"}
	texts := []string{
		"A wonderful and honest report. It reads easily.",
		"Catastrophe! A terrible fraud destroyed everything believable.",
		"",
	}
	created := []float64{1500000000, 1600000000, 1700000000}

	f := testFrame(t, countries, texts, created)
	cfg := types.RefineConfig{ReferenceTime: time.Unix(2000000000, 0).UTC()}
	require.NoError(t, Refine(f, cfg))

	// Row count survives the whole pipeline.
	assert.Equal(t, 3, f.Rows())

	// Pruned columns are gone, derived columns are present.
	names := f.Names()
	for _, dropped := range []string{"id", "article_text", "country", "title", "news_url"} {
		assert.NotContains(t, names, dropped)
	}
	assert.Equal(t, []string{
		"creation_date",
		"is_suspicious_country",
		"flesch_reading_ease",
		"percent_difficult_words",
		"article_polarity",
		"article_subjectivity",
	}, names)

	// Row order is preserved: the MK row keeps its flag in position 0.
	flags, err := f.Floats("is_suspicious_country")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 1}, flags)

	// Sentiment columns are rescaled into [0, 1].
	for _, col := range []string{"article_polarity", "article_subjectivity"} {
		vals, err := f.Floats(col)
		require.NoError(t, err)
		for i, v := range vals {
			assert.GreaterOrEqual(t, v, 0.0, "%s row %d", col, i)
			assert.LessOrEqual(t, v, 1.0, "%s row %d", col, i)
		}
	}

	// Positive text scores above the empty (neutral) text, negative below.
	polarity, err := f.Floats("article_polarity")
	require.NoError(t, err)
	assert.Greater(t, polarity[0], polarity[2])
	assert.Less(t, polarity[1], polarity[2])

	// Empty article text yields exactly 0 difficult-word ratio.
	ratios, err := f.Floats("percent_difficult_words")
	require.NoError(t, err)
	assert.Equal(t, 0.0, ratios[2])

	// Creation dates are scaled by the fixed reference timestamp.
	scaled, err := f.Floats("creation_date")
	require.NoError(t, err)
	assert.InDelta(t, 0.75, scaled[0], 1e-12)
	assert.InDelta(t, 0.80, scaled[1], 1e-12)
	assert.InDelta(t, 0.85, scaled[2], 1e-12)

	// The refined frame is fully numeric.
	matrix, err := f.Matrix()
	require.NoError(t, err)
	assert.Len(t, matrix, 3)
	assert.Len(t, matrix[0], 6)
}

func TestRefine_DefaultReferenceTime(t *testing.T) {
	f := testFrame(t, []string{"US"}, []string{"text"}, []float64{float64(DefaultReferenceTime.Unix())})
	require.NoError(t, Refine(f, types.RefineConfig{}))

	scaled, err := f.Floats("creation_date")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, scaled[0], 1e-12)
}

func TestStepsOrder(t *testing.T) {
	names := make([]string, 0, 6)
	for _, s := range Steps(types.RefineConfig{}) {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{
		"suspicious-country",
		"reading-ease",
		"difficult-words",
		"sentiment",
		"prune",
		"scale-creation-date",
	}, names)
}

func TestRefine_MissingColumn(t *testing.T) {
	f := types.NewFrame(1)
	require.NoError(t, f.AddStringColumn("article_text", []string{"x"}))
	err := Refine(f, types.RefineConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "suspicious-country")
}
