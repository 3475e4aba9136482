// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eval

import (
	"fmt"
	"sort"
)

// KNN is a k-nearest-neighbors classifier with Euclidean distance over
// standardized features.
type KNN struct {
	K int

	std *standardizer
	X   [][]float64
	y   []int
}

// NewKNN returns a k-nearest-neighbors classifier.
func NewKNN(k int) *KNN {
	if k < 1 {
		k = 5
	}
	return &KNN{K: k}
}

// Name implements Classifier.
func (c *KNN) Name() string { return "k-nearest neighbors" }

// Fit implements Classifier. Training just memorizes the standardized set.
func (c *KNN) Fit(X [][]float64, y []int) error {
	if len(X) == 0 {
		return fmt.Errorf("no training rows")
	}
	c.std = fitStandardizer(X)
	c.X = c.std.applyAll(X)
	c.y = append([]int(nil), y...)
	return nil
}

// Predict implements Classifier. Votes among the k nearest training rows;
// distance ties keep insertion order, class ties go to the smaller label.
func (c *KNN) Predict(x []float64) int {
	xs := c.std.apply(x)
	type neighbor struct {
		dist  float64
		index int
	}
	neighbors := make([]neighbor, len(c.X))
	for i, row := range c.X {
		var d float64
		for j := range row {
			diff := row[j] - xs[j]
			d += diff * diff
		}
		neighbors[i] = neighbor{dist: d, index: i}
	}
	sort.SliceStable(neighbors, func(a, b int) bool {
		return neighbors[a].dist < neighbors[b].dist
	})

	k := c.K
	if k > len(neighbors) {
		k = len(neighbors)
	}
	votes := make([]int, 0, k)
	for _, nb := range neighbors[:k] {
		votes = append(votes, c.y[nb.index])
	}
	return majorityClass(votes)
}
