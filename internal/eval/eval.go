// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package eval runs a fixed panel of classical classifiers through k-fold
// cross-validation and reports per-model accuracy. The panel is data: a
// list of named constructors, so models can be added or substituted
// without touching the evaluation loop.
package eval

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/pdiddy/fakenews-lab/pkg/types"
)

// Classifier is a trainable binary classifier over dense float features.
type Classifier interface {
	Name() string
	Fit(X [][]float64, y []int) error
	Predict(x []float64) int
}

// Spec names one panel entry and constructs a fresh classifier for each
// fold. The seed feeds models with internal randomness (the ensembles);
// deterministic models ignore it.
type Spec struct {
	Name string
	New  func(seed int64) Classifier
}

// DefaultPanel returns the canonical eight-model panel.
func DefaultPanel() []Spec {
	return []Spec{
		{Name: "LR", New: func(int64) Classifier { return NewLogistic() }},
		{Name: "LDA", New: func(int64) Classifier { return NewLDA() }},
		{Name: "KNN", New: func(int64) Classifier { return NewKNN(5) }},
		{Name: "CART", New: func(int64) Classifier { return NewTree(TreeOptions{}) }},
		{Name: "NB", New: func(int64) Classifier { return NewGaussianNB() }},
		{Name: "SVM", New: func(int64) Classifier { return NewLinearSVC() }},
		{Name: "BAG", New: func(seed int64) Classifier { return NewBagging(10, seed) }},
		{Name: "RF", New: func(seed int64) Classifier { return NewRandomForest(100, seed) }},
	}
}

// PanelByNames restricts the default panel to the named models, keeping
// panel order. Unknown names are an error listing the valid ones.
func PanelByNames(names []string) ([]Spec, error) {
	if len(names) == 0 {
		return DefaultPanel(), nil
	}
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[strings.ToUpper(strings.TrimSpace(n))] = true
	}
	var panel []Spec
	var valid []string
	for _, spec := range DefaultPanel() {
		valid = append(valid, spec.Name)
		if wanted[spec.Name] {
			panel = append(panel, spec)
			delete(wanted, spec.Name)
		}
	}
	if len(wanted) > 0 {
		unknown := make([]string, 0, len(wanted))
		for n := range wanted {
			unknown = append(unknown, n)
		}
		sort.Strings(unknown)
		return nil, fmt.Errorf("unknown models %v (valid: %s)", unknown, strings.Join(valid, ", "))
	}
	return panel, nil
}

// Evaluate cross-validates every panel model on the refined frame and
// writes one report line per model. The frame must be fully numeric.
func Evaluate(f *types.Frame, labels types.Labels, cfg types.EvaluationConfig, w io.Writer) (types.Report, error) {
	X, err := f.Matrix()
	if err != nil {
		return types.Report{}, fmt.Errorf("exporting feature matrix: %w", err)
	}

	folds := cfg.Folds
	if folds <= 0 {
		folds = 10
	}

	panel, err := PanelByNames(cfg.Models)
	if err != nil {
		return types.Report{}, err
	}

	report := types.Report{StartedAt: time.Now().UTC()}
	for _, spec := range panel {
		mean, std, err := CrossValidate(spec, X, labels, folds, cfg.Seed)
		if err != nil {
			return types.Report{}, fmt.Errorf("evaluating %s: %w", spec.Name, err)
		}
		fmt.Fprintf(w, "%-5s accuracy %.2f%% (std %.2f%%)\n", spec.Name, mean*100, std*100)
		report.Scores = append(report.Scores, types.ModelScore{
			Model:        spec.Name,
			MeanAccuracy: mean,
			StdAccuracy:  std,
			Folds:        folds,
		})
	}
	return report, nil
}

// uniqueClasses returns the sorted distinct labels.
func uniqueClasses(y []int) []int {
	seen := make(map[int]bool)
	var classes []int
	for _, v := range y {
		if !seen[v] {
			seen[v] = true
			classes = append(classes, v)
		}
	}
	sort.Ints(classes)
	return classes
}

// majorityClass returns the most frequent label; ties break toward the
// smaller label so prediction is deterministic.
func majorityClass(y []int) int {
	counts := make(map[int]int)
	for _, v := range y {
		counts[v]++
	}
	best, bestCount := 0, -1
	for _, c := range uniqueClasses(y) {
		if counts[c] > bestCount {
			best, bestCount = c, counts[c]
		}
	}
	return best
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}
