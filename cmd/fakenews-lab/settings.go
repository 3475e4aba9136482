// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/fakenews-lab/pkg/types"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "fakenews-lab/0.1"
)

// addDatasetFlags registers the flags every subcommand that touches the
// remote dataset shares.
func addDatasetFlags(cmd *cobra.Command) {
	cmd.Flags().String("base-url", "", "dataset endpoint base URL")
	cmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	cmd.Flags().Int("retries", 0, "max retries on transient HTTP failures (default 3)")
}

// addRefineFlags registers the feature-engineering flags.
func addRefineFlags(cmd *cobra.Command) {
	cmd.Flags().String("reference-time", "", "RFC 3339 timestamp the creation_date column is scaled against")
}

// datasetConfig resolves dataset settings: flag, then config file, then
// built-in default.
func datasetConfig(cmd *cobra.Command) types.DatasetConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("dataset.timeout")
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}

	baseURL, _ := cmd.Flags().GetString("base-url")
	if baseURL == "" {
		baseURL = viper.GetString("dataset.base_url")
	}

	retries, _ := cmd.Flags().GetInt("retries")
	if retries == 0 {
		retries = viper.GetInt("dataset.max_retries")
	}

	return types.DatasetConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		BaseURL:       baseURL,
		TrainResource: viper.GetString("dataset.train_resource"),
		TestResource:  viper.GetString("dataset.test_resource"),
		MaxRetries:    retries,
	}
}

// refineConfig resolves the feature-engineering settings.
func refineConfig(cmd *cobra.Command) (types.RefineConfig, error) {
	raw, _ := cmd.Flags().GetString("reference-time")
	if raw == "" {
		raw = viper.GetString("refine.reference_time")
	}
	if raw == "" {
		return types.RefineConfig{}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return types.RefineConfig{}, fmt.Errorf("parsing reference time %q: %w", raw, err)
	}
	return types.RefineConfig{ReferenceTime: t}, nil
}

// newClient builds the HTTP client the loaders use.
func newClient(cfg types.DatasetConfig) *http.Client {
	return &http.Client{Timeout: cfg.Timeout}
}
