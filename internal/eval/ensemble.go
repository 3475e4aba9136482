// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eval

import (
	"fmt"
	"math"
	"math/rand"
)

// Bagging is a bootstrap-aggregated ensemble of CART trees. Plain bagging
// lets every tree see all features; the random forest constructor limits
// each split to a random √p feature subset instead.
type Bagging struct {
	Trees int

	name        string
	seed        int64
	sqrtFeature bool
	models      []*Tree
}

// NewBagging returns a bagging ensemble of full-feature trees.
func NewBagging(trees int, seed int64) *Bagging {
	if trees < 1 {
		trees = 10
	}
	return &Bagging{Trees: trees, name: "bagging", seed: seed}
}

// NewRandomForest returns a random forest: bagged trees that consider a
// random √p feature subset at every split.
func NewRandomForest(trees int, seed int64) *Bagging {
	if trees < 1 {
		trees = 100
	}
	return &Bagging{Trees: trees, name: "random forest", seed: seed, sqrtFeature: true}
}

// Name implements Classifier.
func (c *Bagging) Name() string { return c.name }

// Fit implements Classifier. Each tree trains on a bootstrap resample of
// the training rows drawn from a seeded source, so fits are reproducible.
func (c *Bagging) Fit(X [][]float64, y []int) error {
	if len(X) == 0 {
		return fmt.Errorf("no training rows")
	}
	n := len(X)
	p := len(X[0])

	maxFeatures := 0
	if c.sqrtFeature {
		maxFeatures = int(math.Sqrt(float64(p)))
		if maxFeatures < 1 {
			maxFeatures = 1
		}
	}

	rng := rand.New(rand.NewSource(c.seed))
	c.models = make([]*Tree, 0, c.Trees)
	for i := 0; i < c.Trees; i++ {
		sampleX := make([][]float64, n)
		sampleY := make([]int, n)
		for i := range sampleX {
			r := rng.Intn(n)
			sampleX[i] = X[r]
			sampleY[i] = y[r]
		}
		tree := NewTree(TreeOptions{
			MaxFeatures: maxFeatures,
			Rand:        rand.New(rand.NewSource(rng.Int63())),
		})
		if err := tree.Fit(sampleX, sampleY); err != nil {
			return fmt.Errorf("fitting ensemble member: %w", err)
		}
		c.models = append(c.models, tree)
	}
	return nil
}

// Predict implements Classifier. Majority vote over the ensemble.
func (c *Bagging) Predict(x []float64) int {
	votes := make([]int, 0, len(c.models))
	for _, m := range c.models {
		votes = append(votes, m.Predict(x))
	}
	return majorityClass(votes)
}
