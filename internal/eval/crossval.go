// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eval

import (
	"fmt"
	"math"
)

// CrossValidate measures a model's classification accuracy with k-fold
// cross-validation. Folds are contiguous and unshuffled — fold i holds
// rows [i*n/k, (i+1)*n/k) — so the measurement is deterministic for a
// given dataset. It returns the mean and population standard deviation
// of the per-fold accuracies.
//
// k is clamped to [2, n]. A fresh classifier is constructed per fold.
func CrossValidate(spec Spec, X [][]float64, y []int, k int, seed int64) (mean, std float64, err error) {
	n := len(X)
	if n != len(y) {
		return 0, 0, fmt.Errorf("%d rows but %d labels", n, len(y))
	}
	if n < 2 {
		return 0, 0, fmt.Errorf("need at least 2 rows, have %d", n)
	}
	if k < 2 {
		k = 2
	}
	if k > n {
		k = n
	}

	accuracies := make([]float64, 0, k)
	for i := 0; i < k; i++ {
		lo, hi := i*n/k, (i+1)*n/k

		trainX := make([][]float64, 0, n-(hi-lo))
		trainY := make([]int, 0, n-(hi-lo))
		trainX = append(trainX, X[:lo]...)
		trainX = append(trainX, X[hi:]...)
		trainY = append(trainY, y[:lo]...)
		trainY = append(trainY, y[hi:]...)

		model := spec.New(seed)
		if err := model.Fit(trainX, trainY); err != nil {
			return 0, 0, fmt.Errorf("fold %d: fitting %s: %w", i, model.Name(), err)
		}

		correct := 0
		for r := lo; r < hi; r++ {
			if model.Predict(X[r]) == y[r] {
				correct++
			}
		}
		accuracies = append(accuracies, float64(correct)/float64(hi-lo))
	}

	for _, a := range accuracies {
		mean += a
	}
	mean /= float64(len(accuracies))

	var variance float64
	for _, a := range accuracies {
		d := a - mean
		variance += d * d
	}
	std = math.Sqrt(variance / float64(len(accuracies)))

	return mean, std, nil
}
