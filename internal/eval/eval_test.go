// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/fakenews-lab/pkg/types"
)

// tenRowFrame builds a numeric 10-row frame with a 5/5 label split, the
// shape the refinement pipeline hands the evaluator.
func tenRowFrame(t *testing.T) (*types.Frame, types.Labels) {
	t.Helper()
	n := 10
	suspicious := make([]float64, n)
	ease := make([]float64, n)
	difficult := make([]float64, n)
	polarity := make([]float64, n)
	labels := make(types.Labels, n)
	for i := 0; i < n; i++ {
		if i%2 == 1 {
			labels[i] = 1
			suspicious[i] = 1
			ease[i] = 30 + float64(i)
			difficult[i] = 0.4
			polarity[i] = 0.2
		} else {
			ease[i] = 70 + float64(i)
			difficult[i] = 0.1
			polarity[i] = 0.7
		}
	}

	f := types.NewFrame(n)
	require.NoError(t, f.AddFloatColumn("is_suspicious_country", suspicious))
	require.NoError(t, f.AddFloatColumn("flesch_reading_ease", ease))
	require.NoError(t, f.AddFloatColumn("percent_difficult_words", difficult))
	require.NoError(t, f.AddFloatColumn("article_polarity", polarity))
	return f, labels
}

func TestEvaluate_FullPanelTenRows(t *testing.T) {
	f, labels := tenRowFrame(t)

	var buf bytes.Buffer
	report, err := Evaluate(f, labels, types.EvaluationConfig{Folds: 10, Seed: 3}, &buf)
	require.NoError(t, err)

	// One (mean, std) pair per configured classifier.
	require.Len(t, report.Scores, 8)
	wantOrder := []string{"LR", "LDA", "KNN", "CART", "NB", "SVM", "BAG", "RF"}
	for i, score := range report.Scores {
		assert.Equal(t, wantOrder[i], score.Model)
		assert.GreaterOrEqual(t, score.MeanAccuracy, 0.0)
		assert.LessOrEqual(t, score.MeanAccuracy, 1.0)
		assert.GreaterOrEqual(t, score.StdAccuracy, 0.0)
		assert.Equal(t, 10, score.Folds)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 8)
	assert.Contains(t, lines[0], "LR")
	assert.Contains(t, lines[0], "accuracy")
}

func TestEvaluate_RestrictedPanel(t *testing.T) {
	f, labels := tenRowFrame(t)

	var buf bytes.Buffer
	cfg := types.EvaluationConfig{Folds: 5, Models: []string{"knn", "NB"}}
	report, err := Evaluate(f, labels, cfg, &buf)
	require.NoError(t, err)

	require.Len(t, report.Scores, 2)
	assert.Equal(t, "KNN", report.Scores[0].Model)
	assert.Equal(t, "NB", report.Scores[1].Model)
}

func TestEvaluate_NonNumericFrame(t *testing.T) {
	f := types.NewFrame(2)
	require.NoError(t, f.AddStringColumn("title", []string{"a", "b"}))

	var buf bytes.Buffer
	_, err := Evaluate(f, types.Labels{0, 1}, types.EvaluationConfig{}, &buf)
	assert.Error(t, err)
}

func TestPanelByNames(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    []string
		wantErr bool
	}{
		{"empty means full panel", nil,
			[]string{"LR", "LDA", "KNN", "CART", "NB", "SVM", "BAG", "RF"}, false},
		{"subset keeps panel order", []string{"RF", "LR"}, []string{"LR", "RF"}, false},
		{"case insensitive", []string{"cart"}, []string{"CART"}, false},
		{"unknown name", []string{"XGB"}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			panel, err := PanelByNames(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			got := make([]string, 0, len(panel))
			for _, s := range panel {
				got = append(got, s.Name)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
