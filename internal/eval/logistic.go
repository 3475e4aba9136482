// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eval

import (
	"fmt"
	"math"
)

// Logistic is a binary logistic-regression classifier trained with
// full-batch gradient descent on standardized features.
type Logistic struct {
	LearningRate float64
	Iterations   int

	std      *standardizer
	weights  []float64
	bias     float64
	constant bool
	class    int
}

// NewLogistic returns a logistic-regression classifier with the default
// training schedule.
func NewLogistic() *Logistic {
	return &Logistic{LearningRate: 0.1, Iterations: 500}
}

// Name implements Classifier.
func (c *Logistic) Name() string { return "logistic regression" }

// Fit implements Classifier.
func (c *Logistic) Fit(X [][]float64, y []int) error {
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

	n := len(Xs)
	p := len(Xs[0])
	c.weights = make([]float64, p)
	c.bias = 0

	grad := make([]float64, p)
	for iter := 0; iter < c.Iterations; iter++ {
		for j := range grad {
			grad[j] = 0
		}
		var gradBias float64
		for i, row := range Xs {
			pred := sigmoid(dot(c.weights, row) + c.bias)
			d := pred - float64(y[i])
			for j, v := range row {
				grad[j] += d * v
			}
			gradBias += d
		}
		for j := range c.weights {
			c.weights[j] -= c.LearningRate * grad[j] / float64(n)
		}
		c.bias -= c.LearningRate * gradBias / float64(n)
	}
	return nil
}

// Predict implements Classifier.
func (c *Logistic) Predict(x []float64) int {
	if c.constant {
		return c.class
	}
	if sigmoid(dot(c.weights, c.std.apply(x))+c.bias) >= 0.5 {
		return 1
	}
	return 0
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
