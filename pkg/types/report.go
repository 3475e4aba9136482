// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ModelScore is the cross-validation outcome for one classical model.
type ModelScore struct {
	// Model is the panel name of the classifier (e.g. "LR", "RF").
	Model string `json:"model" yaml:"model"`

	// MeanAccuracy is the mean fold accuracy as a fraction in [0, 1].
	MeanAccuracy float64 `json:"mean_accuracy" yaml:"mean_accuracy"`

	// StdAccuracy is the population standard deviation across folds.
	StdAccuracy float64 `json:"std_accuracy" yaml:"std_accuracy"`

	// Folds is the fold count the score was measured over.
	Folds int `json:"folds" yaml:"folds"`
}

// Report holds the outcome of one evaluation run: the classical panel
// scores and, when the network stage ran, its held-out test accuracy.
type Report struct {
	// Dataset is the logical name of the split the panel was evaluated on.
	Dataset string `json:"dataset" yaml:"dataset"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at" yaml:"started_at"`

	// Scores lists one entry per panel model in panel order.
	Scores []ModelScore `json:"scores" yaml:"scores"`

	// NetworkAccuracy is the neural network's test-set accuracy as a
	// fraction in [0, 1]. Nil when the network stage did not run.
	NetworkAccuracy *float64 `json:"network_accuracy,omitempty" yaml:"network_accuracy,omitempty"`
}
