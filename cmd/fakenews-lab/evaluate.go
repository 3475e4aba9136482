// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/fakenews-lab/internal/dataset"
	"github.com/pdiddy/fakenews-lab/internal/eval"
	"github.com/pdiddy/fakenews-lab/internal/features"
	"github.com/pdiddy/fakenews-lab/pkg/types"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Cross-validate the classical model panel on the training split",
	RunE:  runEvaluate,
}

func init() {
	addDatasetFlags(evaluateCmd)
	addRefineFlags(evaluateCmd)
	evaluateCmd.Flags().Int("folds", 0, "cross-validation folds (default 10)")
	evaluateCmd.Flags().StringSlice("models", nil, "restrict the panel (e.g. LR,RF)")
	evaluateCmd.Flags().Int64("seed", 0, "seed for ensemble bootstraps")
	evaluateCmd.Flags().String("db", "", "sqlite file to append the evaluation report to")

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	refine, err := refineConfig(cmd)
	if err != nil {
		return err
	}

	cfg := datasetConfig(cmd)
	client := newClient(cfg)

	frame, labels, err := dataset.LoadTraining(cmd.Context(), client, cfg)
	if err != nil {
		return err
	}
	if err := features.Refine(frame, refine); err != nil {
		return err
	}

	folds, _ := cmd.Flags().GetInt("folds")
	models, _ := cmd.Flags().GetStringSlice("models")
	seed, _ := cmd.Flags().GetInt64("seed")

	report, err := eval.Evaluate(frame, labels, types.EvaluationConfig{
		Folds:  folds,
		Models: models,
		Seed:   seed,
	}, os.Stdout)
	if err != nil {
		return err
	}
	report.Dataset = dataset.TrainResource
	if cfg.TrainResource != "" {
		report.Dataset = cfg.TrainResource
	}

	return saveReport(cmd, report)
}
