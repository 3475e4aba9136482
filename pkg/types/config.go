package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "fakenews-lab/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// DatasetConfig holds settings for the data loader.
type DatasetConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the endpoint the JSON dataset resources are served from.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// TrainResource is the logical name of the training split.
	TrainResource string `json:"train_resource" yaml:"train_resource"`

	// TestResource is the logical name of the testing split.
	TestResource string `json:"test_resource" yaml:"test_resource"`

	// MaxRetries bounds retry attempts on transient HTTP failures (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// RefineConfig holds settings for the feature-engineering pipeline.
type RefineConfig struct {
	// ReferenceTime is the fixed timestamp the creation_date column is
	// scaled against. It is pinned per dataset version so two runs of the
	// pipeline produce identical feature values regardless of when they
	// execute. Zero means the package default.
	ReferenceTime time.Time `json:"reference_time" yaml:"reference_time"`
}

// EvaluationConfig holds settings for the classical model evaluator.
type EvaluationConfig struct {
	// Folds is the cross-validation fold count (default 10). Folds are
	// contiguous and unshuffled, so evaluation is deterministic.
	Folds int `json:"folds" yaml:"folds"`

	// Models restricts the panel to the named models. Empty means the
	// full default panel.
	Models []string `json:"models,omitempty" yaml:"models,omitempty"`

	// Seed feeds the bootstrap samplers of the ensemble models.
	Seed int64 `json:"seed" yaml:"seed"`
}

// NetworkConfig describes the feed-forward network topology and training run.
type NetworkConfig struct {
	// HiddenUnits is the width of the single hidden layer (default 1024).
	HiddenUnits int `json:"hidden_units" yaml:"hidden_units"`

	// DropoutRate is the drop probability applied after the hidden layer
	// during training only (default 0.2).
	DropoutRate float64 `json:"dropout_rate" yaml:"dropout_rate"`

	// Epochs is the fixed number of full-batch training passes (default 400).
	// There is no early stopping and no validation split.
	Epochs int `json:"epochs" yaml:"epochs"`

	// LearningRate is the Adam step size (default 0.001).
	LearningRate float64 `json:"learning_rate" yaml:"learning_rate"`

	// Seed drives weight initialization and dropout masks.
	Seed int64 `json:"seed" yaml:"seed"`
}

// ResultsConfig holds settings for the optional report store.
type ResultsConfig struct {
	// DBPath is the sqlite database file for saved reports. Empty disables
	// persistence.
	DBPath string `json:"db_path" yaml:"db_path"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Dataset    DatasetConfig    `json:"dataset" yaml:"dataset"`
	Refine     RefineConfig     `json:"refine" yaml:"refine"`
	Evaluation EvaluationConfig `json:"evaluation" yaml:"evaluation"`
	Network    NetworkConfig    `json:"network" yaml:"network"`
	Results    ResultsConfig    `json:"results" yaml:"results"`
}
