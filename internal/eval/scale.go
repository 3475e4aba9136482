// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eval

import "math"

// standardizer centers and scales features to zero mean and unit variance
// using training-set statistics. Models whose training is scale-sensitive
// (logistic regression, the SVC, kNN) fit one internally so the evaluator
// can hand every model the same raw matrix.
type standardizer struct {
	mean  []float64
	scale []float64
}

func fitStandardizer(X [][]float64) *standardizer {
	n := len(X)
	p := len(X[0])
	s := &standardizer{
		mean:  make([]float64, p),
		scale: make([]float64, p),
	}
	for _, row := range X {
		for j, v := range row {
			s.mean[j] += v
		}
	}
	for j := range s.mean {
		s.mean[j] /= float64(n)
	}
	for _, row := range X {
		for j, v := range row {
			d := v - s.mean[j]
			s.scale[j] += d * d
		}
	}
	for j := range s.scale {
		s.scale[j] = math.Sqrt(s.scale[j] / float64(n))
		// Constant feature: leave it centered but unscaled.
		if s.scale[j] == 0 {
			s.scale[j] = 1
		}
	}
	return s
}

func (s *standardizer) apply(x []float64) []float64 {
	out := make([]float64, len(x))
	for j, v := range x {
		out[j] = (v - s.mean[j]) / s.scale[j]
	}
	return out
}

func (s *standardizer) applyAll(X [][]float64) [][]float64 {
	out := make([][]float64, len(X))
	for i, row := range X {
		out[i] = s.apply(row)
	}
	return out
}
