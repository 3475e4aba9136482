// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eval

import (
	"fmt"
	"math"
)

// GaussianNB is a Gaussian naive Bayes classifier: per-class feature
// means and variances with a variance-smoothing floor.
type GaussianNB struct {
	classes   []int
	logPriors []float64
	means     [][]float64
	variances [][]float64
	constant  bool
	class     int
}

// NewGaussianNB returns a Gaussian naive Bayes classifier.
func NewGaussianNB() *GaussianNB { return &GaussianNB{} }

// Name implements Classifier.
func (c *GaussianNB) Name() string { return "gaussian naive bayes" }

// Fit implements Classifier.
func (c *GaussianNB) Fit(X [][]float64, y []int) error {
	if len(X) == 0 {
		return fmt.Errorf("no training rows")
	}
	c.classes = uniqueClasses(y)
	if len(c.classes) < 2 {
		c.constant = true
		c.class = c.classes[0]
		return nil
	}

	n := len(X)
	p := len(X[0])
	classIndex := make(map[int]int, len(c.classes))
	counts := make([]int, len(c.classes))
	c.means = make([][]float64, len(c.classes))
	c.variances = make([][]float64, len(c.classes))
	for k, cls := range c.classes {
		classIndex[cls] = k
		c.means[k] = make([]float64, p)
		c.variances[k] = make([]float64, p)
	}

	for i, row := range X {
		k := classIndex[y[i]]
		counts[k]++
		for j, v := range row {
			c.means[k][j] += v
		}
	}
	for k := range c.classes {
		for j := range c.means[k] {
			c.means[k][j] /= float64(counts[k])
		}
	}
	for i, row := range X {
		k := classIndex[y[i]]
		for j, v := range row {
			d := v - c.means[k][j]
			c.variances[k][j] += d * d
		}
	}

	// Smoothing floor proportional to the largest overall feature
	// variance keeps degenerate (constant) features from zeroing the
	// likelihood.
	var maxVar float64
	overallMean := make([]float64, p)
	for _, row := range X {
		for j, v := range row {
			overallMean[j] += v
		}
	}
	for j := range overallMean {
		overallMean[j] /= float64(n)
	}
	for j := 0; j < p; j++ {
		var v float64
		for _, row := range X {
			d := row[j] - overallMean[j]
			v += d * d
		}
		v /= float64(n)
		if v > maxVar {
			maxVar = v
		}
	}
	smoothing := 1e-9 * (maxVar + 1)

	c.logPriors = make([]float64, len(c.classes))
	for k := range c.classes {
		c.logPriors[k] = math.Log(float64(counts[k]) / float64(n))
		for j := range c.variances[k] {
			c.variances[k][j] = c.variances[k][j]/float64(counts[k]) + smoothing
		}
	}
	return nil
}

// Predict implements Classifier.
func (c *GaussianNB) Predict(x []float64) int {
	if c.constant {
		return c.class
	}
	best := c.classes[0]
	bestScore := math.Inf(-1)
	for k, cls := range c.classes {
		score := c.logPriors[k]
		for j, v := range x {
			variance := c.variances[k][j]
			d := v - c.means[k][j]
			score += -0.5*math.Log(2*math.Pi*variance) - d*d/(2*variance)
		}
		if score > bestScore {
			best, bestScore = cls, score
		}
	}
	return best
}
