// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package neural trains a small fixed-topology feed-forward classifier:
// one ReLU hidden layer, dropout during training, and a softmax output
// over {real, fake}. Training is full-batch Adam on sparse categorical
// cross-entropy for a fixed number of epochs — no early stopping, no
// validation split, no checkpointing.
package neural

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/pdiddy/fakenews-lab/pkg/types"
)

// Adam hyperparameters.
const (
	beta1   = 0.9
	beta2   = 0.999
	epsilon = 1e-8
)

// Network is a two-layer feed-forward classifier.
type Network struct {
	cfg types.NetworkConfig
	rng *rand.Rand

	inputs int
	// Layer parameters: w1 is hidden×inputs, w2 is classes×hidden.
	w1, w2 [][]float64
	b1, b2 []float64

	// Feature standardization fitted from the training set.
	mean, scale []float64

	// Adam moment estimates, one pair per parameter tensor.
	mW1, vW1, mW2, vW2 [][]float64
	mB1, vB1, mB2, vB2 []float64
	step               int
}

const outputClasses = 2

// New constructs a network from the config, applying the canonical
// defaults for unset fields: 1024 hidden units, 0.2 dropout, 400 epochs,
// learning rate 0.001.
func New(cfg types.NetworkConfig) *Network {
	if cfg.HiddenUnits <= 0 {
		cfg.HiddenUnits = 1024
	}
	if cfg.DropoutRate < 0 || cfg.DropoutRate >= 1 {
		cfg.DropoutRate = 0.2
	}
	if cfg.Epochs <= 0 {
		cfg.Epochs = 400
	}
	if cfg.LearningRate <= 0 {
		cfg.LearningRate = 0.001
	}
	if cfg.Seed == 0 {
		cfg.Seed = 1
	}
	return &Network{cfg: cfg, rng: rand.New(rand.NewSource(cfg.Seed))}
}

// Train fits the network on the full training set for the configured
// number of epochs. Every epoch is one full-batch gradient step.
func (n *Network) Train(X [][]float64, y []int) error {
	if len(X) == 0 {
		return fmt.Errorf("no training rows")
	}
	if len(X) != len(y) {
		return fmt.Errorf("%d rows but %d labels", len(X), len(y))
	}
	for _, label := range y {
		if label < 0 || label >= outputClasses {
			return fmt.Errorf("label %d outside [0, %d)", label, outputClasses)
		}
	}

	n.inputs = len(X[0])
	n.fitScaler(X)
	Xs := make([][]float64, len(X))
	for i, row := range X {
		Xs[i] = n.standardize(row)
	}

	n.initParameters()

	for epoch := 0; epoch < n.cfg.Epochs; epoch++ {
		n.trainEpoch(Xs, y)
	}
	return nil
}

// Evaluate returns classification accuracy on a held-out set. Dropout is
// inactive outside training.
func (n *Network) Evaluate(X [][]float64, y []int) float64 {
	if len(X) == 0 {
		return 0
	}
	correct := 0
	for i, row := range X {
		if n.Predict(row) == y[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(X))
}

// Predict returns the argmax class for one input row.
func (n *Network) Predict(x []float64) int {
	probs := n.Probabilities(x)
	best := 0
	for c := 1; c < len(probs); c++ {
		if probs[c] > probs[best] {
			best = c
		}
	}
	return best
}

// Probabilities returns the softmax distribution over classes for one row.
func (n *Network) Probabilities(x []float64) []float64 {
	xs := n.standardize(x)
	hidden := make([]float64, n.cfg.HiddenUnits)
	for h := range hidden {
		z := n.b1[h]
		for j, v := range xs {
			z += n.w1[h][j] * v
		}
		if z > 0 {
			hidden[h] = z
		}
	}
	logits := make([]float64, outputClasses)
	for c := range logits {
		z := n.b2[c]
		for h, v := range hidden {
			z += n.w2[c][h] * v
		}
		logits[c] = z
	}
	return softmax(logits)
}

// trainEpoch runs one full-batch forward/backward pass with a fresh
// dropout mask and applies the Adam update.
func (n *Network) trainEpoch(Xs [][]float64, y []int) {
	batch := len(Xs)
	hiddenUnits := n.cfg.HiddenUnits
	keep := 1 - n.cfg.DropoutRate

	// Inverted dropout: surviving activations are scaled by 1/keep so
	// inference needs no rescaling.
	mask := make([]float64, hiddenUnits)
	for h := range mask {
		if n.rng.Float64() < keep {
			mask[h] = 1 / keep
		}
	}

	gW1 := zeroMatrix(hiddenUnits, n.inputs)
	gB1 := make([]float64, hiddenUnits)
	gW2 := zeroMatrix(outputClasses, hiddenUnits)
	gB2 := make([]float64, outputClasses)

	hidden := make([]float64, hiddenUnits)
	dropped := make([]float64, hiddenUnits)
	logits := make([]float64, outputClasses)

	for i, row := range Xs {
		for h := 0; h < hiddenUnits; h++ {
			z := n.b1[h]
			for j, v := range row {
				z += n.w1[h][j] * v
			}
			if z > 0 {
				hidden[h] = z
			} else {
				hidden[h] = 0
			}
			dropped[h] = hidden[h] * mask[h]
		}
		for c := 0; c < outputClasses; c++ {
			z := n.b2[c]
			for h := 0; h < hiddenUnits; h++ {
				z += n.w2[c][h] * dropped[h]
			}
			logits[c] = z
		}
		probs := softmax(logits)

		// dL/dlogits for cross-entropy with softmax.
		for c := 0; c < outputClasses; c++ {
			delta := probs[c]
			if c == y[i] {
				delta -= 1
			}
			delta /= float64(batch)
			gB2[c] += delta
			for h := 0; h < hiddenUnits; h++ {
				gW2[c][h] += delta * dropped[h]
			}
		}
		for h := 0; h < hiddenUnits; h++ {
			if hidden[h] <= 0 || mask[h] == 0 {
				continue
			}
			var back float64
			for c := 0; c < outputClasses; c++ {
				delta := probs[c]
				if c == y[i] {
					delta -= 1
				}
				back += delta / float64(batch) * n.w2[c][h]
			}
			back *= mask[h]
			gB1[h] += back
			for j, v := range row {
				gW1[h][j] += back * v
			}
		}
	}

	n.step++
	n.adamMatrix(n.w1, gW1, n.mW1, n.vW1)
	n.adamMatrix(n.w2, gW2, n.mW2, n.vW2)
	n.adamVector(n.b1, gB1, n.mB1, n.vB1)
	n.adamVector(n.b2, gB2, n.mB2, n.vB2)
}

func (n *Network) adamMatrix(w, g, m, v [][]float64) {
	for i := range w {
		n.adamRow(w[i], g[i], m[i], v[i])
	}
}

func (n *Network) adamVector(w, g, m, v []float64) {
	n.adamRow(w, g, m, v)
}

func (n *Network) adamRow(w, g, m, v []float64) {
	t := float64(n.step)
	for i := range w {
		m[i] = beta1*m[i] + (1-beta1)*g[i]
		v[i] = beta2*v[i] + (1-beta2)*g[i]*g[i]
		mHat := m[i] / (1 - math.Pow(beta1, t))
		vHat := v[i] / (1 - math.Pow(beta2, t))
		w[i] -= n.cfg.LearningRate * mHat / (math.Sqrt(vHat) + epsilon)
	}
}

// initParameters applies He initialization to the hidden layer and
// Glorot-style scaling to the output layer, and zeroes the Adam moments.
func (n *Network) initParameters() {
	hiddenUnits := n.cfg.HiddenUnits

	n.w1 = make([][]float64, hiddenUnits)
	stdW1 := math.Sqrt(2 / float64(n.inputs))
	for h := range n.w1 {
		n.w1[h] = make([]float64, n.inputs)
		for j := range n.w1[h] {
			n.w1[h][j] = n.rng.NormFloat64() * stdW1
		}
	}
	n.b1 = make([]float64, hiddenUnits)

	n.w2 = make([][]float64, outputClasses)
	stdW2 := math.Sqrt(2 / float64(hiddenUnits+outputClasses))
	for c := range n.w2 {
		n.w2[c] = make([]float64, hiddenUnits)
		for h := range n.w2[c] {
			n.w2[c][h] = n.rng.NormFloat64() * stdW2
		}
	}
	n.b2 = make([]float64, outputClasses)

	n.mW1, n.vW1 = zeroMatrix(hiddenUnits, n.inputs), zeroMatrix(hiddenUnits, n.inputs)
	n.mW2, n.vW2 = zeroMatrix(outputClasses, hiddenUnits), zeroMatrix(outputClasses, hiddenUnits)
	n.mB1, n.vB1 = make([]float64, hiddenUnits), make([]float64, hiddenUnits)
	n.mB2, n.vB2 = make([]float64, outputClasses), make([]float64, outputClasses)
	n.step = 0
}

func (n *Network) fitScaler(X [][]float64) {
	p := len(X[0])
	n.mean = make([]float64, p)
	n.scale = make([]float64, p)
	for _, row := range X {
		for j, v := range row {
			n.mean[j] += v
		}
	}
	for j := range n.mean {
		n.mean[j] /= float64(len(X))
	}
	for _, row := range X {
		for j, v := range row {
			d := v - n.mean[j]
			n.scale[j] += d * d
		}
	}
	for j := range n.scale {
		n.scale[j] = math.Sqrt(n.scale[j] / float64(len(X)))
		if n.scale[j] == 0 {
			n.scale[j] = 1
		}
	}
}

func (n *Network) standardize(x []float64) []float64 {
	out := make([]float64, len(x))
	for j, v := range x {
		out[j] = (v - n.mean[j]) / n.scale[j]
	}
	return out
}

func softmax(logits []float64) []float64 {
	max := logits[0]
	for _, v := range logits[1:] {
		if v > max {
			max = v
		}
	}
	var sum float64
	out := make([]float64, len(logits))
	for i, v := range logits {
		out[i] = math.Exp(v - max)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

func zeroMatrix(rows, cols int) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}
	return m
}
