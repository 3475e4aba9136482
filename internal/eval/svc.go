// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eval

import "fmt"

// LinearSVC is a linear support-vector classifier trained with the
// Pegasos subgradient method on hinge loss. Rows are visited in dataset
// order, so training is deterministic.
type LinearSVC struct {
	Lambda float64
	Epochs int

	std      *standardizer
	weights  []float64
	bias     float64
	constant bool
	class    int
}

// NewLinearSVC returns a linear support-vector classifier with the
// default regularization and schedule.
func NewLinearSVC() *LinearSVC {
	return &LinearSVC{Lambda: 0.01, Epochs: 100}
}

// Name implements Classifier.
func (c *LinearSVC) Name() string { return "linear support-vector classifier" }

// Fit implements Classifier.
func (c *LinearSVC) Fit(X [][]float64, y []int) error {
	if len(X) == 0 {
		return fmt.Errorf("no training rows")
	}
	if classes := uniqueClasses(y); len(classes) < 2 {
		c.constant = true
		c.class = classes[0]
		return nil
	}

	c.std = fitStandardizer(X)
	Xs := c.std.applyAll(X)
	c.weights = make([]float64, len(Xs[0]))
	c.bias = 0

	t := 0
	for epoch := 0; epoch < c.Epochs; epoch++ {
		for i, row := range Xs {
			t++
			eta := 1 / (c.Lambda * float64(t))
			yi := float64(2*y[i] - 1) // map {0,1} onto {-1,+1}

			margin := yi * (dot(c.weights, row) + c.bias)
			for j := range c.weights {
				c.weights[j] *= 1 - eta*c.Lambda
			}
			if margin < 1 {
				for j, v := range row {
					c.weights[j] += eta * yi * v
				}
				c.bias += eta * yi
			}
		}
	}
	return nil
}

// Predict implements Classifier.
func (c *LinearSVC) Predict(x []float64) int {
	if c.constant {
		return c.class
	}
	if dot(c.weights, c.std.apply(x))+c.bias >= 0 {
		return 1
	}
	return 0
}
