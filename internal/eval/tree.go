// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eval

import (
	"fmt"
	"math/rand"
	"sort"
)

// TreeOptions configures a CART decision tree.
type TreeOptions struct {
	// MaxDepth bounds tree depth (default 10).
	MaxDepth int

	// MinLeaf is the minimum row count in a leaf (default 1).
	MinLeaf int

	// MaxFeatures limits how many features are considered per split.
	// Zero considers all of them; the random forest sets √p.
	MaxFeatures int

	// Rand supplies the feature subsampling source. Required only when
	// MaxFeatures is set.
	Rand *rand.Rand
}

// Tree is a CART decision tree using Gini impurity and midpoint
// thresholds between distinct sorted feature values.
type Tree struct {
	opts TreeOptions
	root *treeNode
}

type treeNode struct {
	leaf      bool
	class     int
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
}

// NewTree returns a CART decision tree.
func NewTree(opts TreeOptions) *Tree {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = 10
	}
	if opts.MinLeaf <= 0 {
		opts.MinLeaf = 1
	}
	return &Tree{opts: opts}
}

// Name implements Classifier.
func (t *Tree) Name() string { return "decision tree" }

// Fit implements Classifier.
func (t *Tree) Fit(X [][]float64, y []int) error {
	if len(X) == 0 {
		return fmt.Errorf("no training rows")
	}
	idx := make([]int, len(X))
	for i := range idx {
		idx[i] = i
	}
	t.root = t.grow(X, y, idx, 0)
	return nil
}

// Predict implements Classifier.
func (t *Tree) Predict(x []float64) int {
	node := t.root
	for !node.leaf {
		if x[node.feature] <= node.threshold {
			node = node.left
		} else {
			node = node.right
		}
	}
	return node.class
}

func (t *Tree) grow(X [][]float64, y []int, idx []int, depth int) *treeNode {
	labels := make([]int, len(idx))
	for i, r := range idx {
		labels[i] = y[r]
	}
	if depth >= t.opts.MaxDepth || len(idx) < 2*t.opts.MinLeaf || gini(labels) == 0 {
		return &treeNode{leaf: true, class: majorityClass(labels)}
	}

	feature, threshold, ok := t.bestSplit(X, y, idx)
	if !ok {
		return &treeNode{leaf: true, class: majorityClass(labels)}
	}

	var left, right []int
	for _, r := range idx {
		if X[r][feature] <= threshold {
			left = append(left, r)
		} else {
			right = append(right, r)
		}
	}
	if len(left) < t.opts.MinLeaf || len(right) < t.opts.MinLeaf {
		return &treeNode{leaf: true, class: majorityClass(labels)}
	}

	return &treeNode{
		feature:   feature,
		threshold: threshold,
		left:      t.grow(X, y, left, depth+1),
		right:     t.grow(X, y, right, depth+1),
	}
}

// bestSplit scans candidate features for the threshold with the largest
// Gini impurity reduction.
func (t *Tree) bestSplit(X [][]float64, y []int, idx []int) (feature int, threshold float64, ok bool) {
	p := len(X[idx[0]])
	features := make([]int, p)
	for j := range features {
		features[j] = j
	}
	if t.opts.MaxFeatures > 0 && t.opts.MaxFeatures < p && t.opts.Rand != nil {
		perm := t.opts.Rand.Perm(p)
		features = perm[:t.opts.MaxFeatures]
		sort.Ints(features)
	}

	n := len(idx)
	parentLabels := make([]int, n)
	for i, r := range idx {
		parentLabels[i] = y[r]
	}
	parentGini := gini(parentLabels)

	bestGain := 0.0
	order := make([]int, n)
	for _, f := range features {
		copy(order, idx)
		sort.SliceStable(order, func(a, b int) bool {
			return X[order[a]][f] < X[order[b]][f]
		})

		// Incremental left/right class counts over the sorted order.
		var l0, l1 int
		r0, r1 := classCounts(y, order)
		for i := 0; i < n-1; i++ {
			if y[order[i]] == 1 {
				l1++
				r1--
			} else {
				l0++
				r0--
			}
			v, next := X[order[i]][f], X[order[i+1]][f]
			if v == next {
				continue
			}
			nl, nr := float64(i+1), float64(n-i-1)
			weighted := (nl*giniCounts(l0, l1) + nr*giniCounts(r0, r1)) / float64(n)
			if gain := parentGini - weighted; gain > bestGain {
				bestGain = gain
				feature = f
				threshold = (v + next) / 2
				ok = true
			}
		}
	}
	return feature, threshold, ok
}

func classCounts(y []int, idx []int) (zeros, ones int) {
	for _, r := range idx {
		if y[r] == 1 {
			ones++
		} else {
			zeros++
		}
	}
	return zeros, ones
}

func gini(labels []int) float64 {
	var zeros, ones int
	for _, v := range labels {
		if v == 1 {
			ones++
		} else {
			zeros++
		}
	}
	return giniCounts(zeros, ones)
}

func giniCounts(zeros, ones int) float64 {
	n := float64(zeros + ones)
	if n == 0 {
		return 0
	}
	p0 := float64(zeros) / n
	p1 := float64(ones) / n
	return 1 - p0*p0 - p1*p1
}
