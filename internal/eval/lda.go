// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eval

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// LDA is a linear discriminant analysis classifier: class-conditional
// Gaussians with a shared (pooled) covariance matrix.
type LDA struct {
	classes   []int
	means     [][]float64
	logPriors []float64
	invCov    *mat.Dense
	constant  bool
	class     int
}

// NewLDA returns a linear discriminant analysis classifier.
func NewLDA() *LDA { return &LDA{} }

// Name implements Classifier.
func (c *LDA) Name() string { return "linear discriminant analysis" }

// Fit implements Classifier.
func (c *LDA) Fit(X [][]float64, y []int) error {
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

	// Class means and priors.
	counts := make([]int, len(c.classes))
	c.means = make([][]float64, len(c.classes))
	classIndex := make(map[int]int, len(c.classes))
	for k, cls := range c.classes {
		c.means[k] = make([]float64, p)
		classIndex[cls] = k
	}
	for i, row := range X {
		k := classIndex[y[i]]
		counts[k]++
		for j, v := range row {
			c.means[k][j] += v
		}
	}
	c.logPriors = make([]float64, len(c.classes))
	for k := range c.classes {
		for j := range c.means[k] {
			c.means[k][j] /= float64(counts[k])
		}
		c.logPriors[k] = math.Log(float64(counts[k]) / float64(n))
	}

	// Pooled within-class covariance.
	cov := make([]float64, p*p)
	for i, row := range X {
		mean := c.means[classIndex[y[i]]]
		for a := 0; a < p; a++ {
			da := row[a] - mean[a]
			for b := 0; b < p; b++ {
				cov[a*p+b] += da * (row[b] - mean[b])
			}
		}
	}
	denom := float64(n - len(c.classes))
	if denom < 1 {
		denom = float64(n)
	}
	var trace float64
	for a := 0; a < p; a++ {
		for b := 0; b < p; b++ {
			cov[a*p+b] /= denom
		}
		trace += cov[a*p+a]
	}

	// Invert with a ridge that grows until the matrix is well conditioned.
	// Tiny folds routinely produce singular pooled covariance.
	ridge := 1e-6 * (trace/float64(p) + 1)
	for attempt := 0; ; attempt++ {
		m := mat.NewDense(p, p, nil)
		for a := 0; a < p; a++ {
			for b := 0; b < p; b++ {
				v := cov[a*p+b]
				if a == b {
					v += ridge
				}
				m.Set(a, b, v)
			}
		}
		var inv mat.Dense
		if err := inv.Inverse(m); err == nil {
			c.invCov = &inv
			return nil
		} else if attempt >= 6 {
			return fmt.Errorf("pooled covariance is singular: %w", err)
		}
		ridge *= 100
	}
}

// Predict implements Classifier.
func (c *LDA) Predict(x []float64) int {
	if c.constant {
		return c.class
	}
	p := len(x)
	xv := mat.NewVecDense(p, append([]float64(nil), x...))

	best := c.classes[0]
	bestScore := math.Inf(-1)
	var tmp mat.VecDense
	for k, cls := range c.classes {
		mu := mat.NewVecDense(p, append([]float64(nil), c.means[k]...))
		tmp.MulVec(c.invCov, mu)
		score := mat.Dot(xv, &tmp) - 0.5*mat.Dot(mu, &tmp) + c.logPriors[k]
		if score > bestScore {
			best, bestScore = cls, score
		}
	}
	return best
}
